package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Declared content types of the two recognized spreadsheet formats.
const (
	ContentTypeXLS  = "application/vnd.ms-excel"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const maxSheetRows = 1 << 20

func Supported(contentType string) bool {
	return contentType == ContentTypeXLS || contentType == ContentTypeXLSX
}

// Decode reads the first sheet of a spreadsheet into a row-major grid of
// literal cell values. Rows keep their on-sheet arity; callers normalize
// ragged rows against the header.
func Decode(data []byte, contentType string) ([][]string, error) {
	switch contentType {
	case ContentTypeXLSX:
		return decodeXLSX(data)
	case ContentTypeXLS:
		return decodeXLS(data)
	default:
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
}

func decodeXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("no sheets found in XLSX file")
	}

	iter, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open rows iterator for sheet %s: %w", sheets[0], err)
	}
	defer iter.Close()

	var grid [][]string
	for iter.Next() {
		row, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row in sheet %s: %w", sheets[0], err)
		}
		// Skip leading empty rows so the first materialized row is the header.
		if len(grid) == 0 && len(row) == 0 {
			continue
		}
		grid = append(grid, row)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("error iterating sheet %s: %w", sheets[0], err)
	}

	return grid, nil
}

func decodeXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open XLS file: %w", err)
	}

	rows := wb.ReadAllCells(maxSheetRows)
	var grid [][]string
	for _, row := range rows {
		if len(grid) == 0 && len(row) == 0 {
			continue
		}
		grid = append(grid, row)
	}
	return grid, nil
}
