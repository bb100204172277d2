package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(ContentTypeXLSX))
	assert.True(t, Supported(ContentTypeXLS))
	assert.False(t, Supported("text/csv"))
	assert.False(t, Supported(""))
}

func TestDecodeXLSX(t *testing.T) {
	data := buildXLSX(t, [][]string{
		{"Name", "City"},
		{"Anna", "Paris"},
		{"Ben", "Berlin"},
	})

	grid, err := Decode(data, ContentTypeXLSX)
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"Name", "City"}, grid[0])
	assert.Equal(t, []string{"Anna", "Paris"}, grid[1])
	assert.Equal(t, []string{"Ben", "Berlin"}, grid[2])
}

func TestDecodeXLSXRaggedRows(t *testing.T) {
	data := buildXLSX(t, [][]string{
		{"a", "b", "c"},
		{"1"},
	})

	grid, err := Decode(data, ContentTypeXLSX)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"a", "b", "c"}, grid[0])
	// The short row keeps its on-sheet arity; normalization is the caller's job.
	assert.Equal(t, []string{"1"}, grid[1])
}

func TestDecodeUnsupportedContentType(t *testing.T) {
	_, err := Decode([]byte("whatever"), "text/plain")
	assert.ErrorContains(t, err, "unsupported content type")
}

func TestDecodeCorruptXLSX(t *testing.T) {
	_, err := Decode([]byte("not a zip archive"), ContentTypeXLSX)
	assert.Error(t, err)
}

func TestDecodeCorruptXLS(t *testing.T) {
	_, err := Decode([]byte("not an ole2 file"), ContentTypeXLS)
	assert.Error(t, err)
}
