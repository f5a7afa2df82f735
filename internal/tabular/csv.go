// internal/tabular/csv.go
package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadCSV decodes a CSV export. Some CRMs ship UTF-8 with a BOM, others
// ship Latin-1; invalid UTF-8 input is re-decoded as ISO 8859-1 before
// parsing so accented headers like "Teléfono" survive.
func ReadCSV(data []byte, name string) (*Table, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, NewFormatError(name, "undecodable text encoding")
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return &Table{Name: name}, nil
	}
	if err != nil {
		return nil, NewFormatError(name, err.Error())
	}

	t := &Table{Name: name, Headers: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewFormatError(name, err.Error())
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteCSV encodes headers and rows as CSV bytes.
func WriteCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
