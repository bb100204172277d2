package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeIdentifier(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"First Name", "first_name"},
		{"  Trim Me  ", "trim_me"},
		{"Price ($)", "price_"},
		{"Tél. #1", "tl_1"},
		{"2024 Budget", "col_2024_budget"},
		{"already_clean", "already_clean"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeIdentifier(tc.in), "input %q", tc.in)
	}
}

func TestSanitizeIdentifierIdempotent(t *testing.T) {
	inputs := []string{"First Name", "2024 Budget", "Price ($)", "UPPER case", "x"}
	for _, in := range inputs {
		once := SanitizeIdentifier(in)
		assert.Equal(t, once, SanitizeIdentifier(once), "input %q", in)
	}
}

func TestSanitizeHeaders(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		got := SanitizeHeaders([]string{"Name", "City", "Zip Code"})
		assert.Equal(t, []string{"name", "city", "zip_code"}, got)
	})

	t.Run("disambiguates collisions", func(t *testing.T) {
		got := SanitizeHeaders([]string{"a", "a", "a"})
		assert.Equal(t, []string{"a", "a_2", "a_3"}, got)
	})

	t.Run("distinct headers colliding after sanitization", func(t *testing.T) {
		got := SanitizeHeaders([]string{"First Name", "first name", "first_name"})
		assert.Equal(t, []string{"first_name", "first_name_2", "first_name_3"}, got)
	})

	t.Run("suffix skips names earlier headers already claimed", func(t *testing.T) {
		got := SanitizeHeaders([]string{"a_2", "a", "a"})
		assert.Equal(t, []string{"a_2", "a", "a_3"}, got)

		got = SanitizeHeaders([]string{"b", "b_2", "b", "b"})
		assert.Equal(t, []string{"b", "b_2", "b_3", "b_4"}, got)
	})

	t.Run("truncates to the identifier length limit", func(t *testing.T) {
		long := strings.Repeat("x", 80)
		got := SanitizeHeaders([]string{long, long})
		require.Len(t, got, 2)
		assert.Len(t, got[0], 63)
		assert.LessOrEqual(t, len(got[1]), 63)
		assert.NotEqual(t, got[0], got[1])
		assert.True(t, IsValidIdentifier(got[0]))
		assert.True(t, IsValidIdentifier(got[1]))
	})

	t.Run("names empty headers by position", func(t *testing.T) {
		got := SanitizeHeaders([]string{"", "b", ""})
		assert.Equal(t, []string{"column_1", "b", "column_3"}, got)
	})

	t.Run("results are unique", func(t *testing.T) {
		got := SanitizeHeaders([]string{"a", "a", "a_2", "", "column_4"})
		seen := map[string]bool{}
		for _, name := range got {
			assert.False(t, seen[name], "duplicate identifier %q in %v", name, got)
			seen[name] = true
		}
	})
}

func TestIsValidIdentifier(t *testing.T) {
	assert.True(t, IsValidIdentifier("first_name"))
	assert.True(t, IsValidIdentifier("_x"))
	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("1abc"))
	assert.False(t, IsValidIdentifier("has space"))
	assert.False(t, IsValidIdentifier("quote\"me"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "report.xlsx", SanitizeFilename("report.xlsx"))
	assert.Equal(t, "report.xlsx", SanitizeFilename("../../etc/report.xlsx"))
	assert.Equal(t, "report.xlsx", SanitizeFilename(`C:\Users\x\report.xlsx`))
	assert.Equal(t, "my report 2024.xls", SanitizeFilename("my report 2024.xls"))
	assert.Equal(t, "oddname.xlsx", SanitizeFilename("odd\x00name?.xlsx"))
}
