// internal/tabular/xlsx.go
package tabular

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX decodes the first sheet of a workbook. The first row is the
// header; a workbook with no sheets or no rows is an empty table, not an
// error.
func ReadXLSX(data []byte, name string) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewFormatError(name, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{Name: name}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, NewFormatError(name, err.Error())
	}
	if len(rows) == 0 {
		return &Table{Name: name}, nil
	}

	return &Table{Name: name, Headers: rows[0], Rows: rows[1:]}, nil
}

// WriteXLSX encodes headers and rows as a single-sheet workbook with plain
// text cells. Group outputs are re-opened by humans in spreadsheet tools,
// so no styling is applied.
func WriteXLSX(headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
