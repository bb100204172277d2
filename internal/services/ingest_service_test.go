package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitRow(t *testing.T) {
	t.Run("short rows are padded", func(t *testing.T) {
		assert.Equal(t, []any{"a", "b", ""}, fitRow([]string{"a", "b"}, 3))
	})

	t.Run("long rows are truncated", func(t *testing.T) {
		assert.Equal(t, []any{"a", "b"}, fitRow([]string{"a", "b", "c", "d"}, 2))
	})

	t.Run("exact rows pass through", func(t *testing.T) {
		assert.Equal(t, []any{"a", "b"}, fitRow([]string{"a", "b"}, 2))
	})

	t.Run("empty rows become all blanks", func(t *testing.T) {
		assert.Equal(t, []any{"", ""}, fitRow(nil, 2))
	})
}

func TestIntersectColumns(t *testing.T) {
	actual := []string{"name", "city", "zip"}

	assert.Equal(t, []string{"city", "name"}, intersectColumns([]string{"city", "name"}, actual))
	assert.Equal(t, []string{"city"}, intersectColumns([]string{"city", "ghost"}, actual))
	assert.Empty(t, intersectColumns([]string{"ghost"}, actual))
	assert.Equal(t, []string{"name"}, intersectColumns([]string{"name", "name"}, actual))
}

func TestSplitColumnList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitColumnList("a,b"))
	assert.Equal(t, []string{"a", "b"}, SplitColumnList(" a , b "))
	assert.Equal(t, []string{"a"}, SplitColumnList("a,,"))
	assert.Empty(t, SplitColumnList(""))
}
