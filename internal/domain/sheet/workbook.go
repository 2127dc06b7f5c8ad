package sheet

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"
)

var ErrEmptyWorkbook = errors.New("workbook has no readable sheet")

// ReadWorkbook parses the first sheet of an xlsx workbook into rows keyed by
// the header row. Short rows are padded implicitly: cells beyond the row's
// length are simply absent from the map.
func ReadWorkbook(r io.Reader) ([]Row, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	headers := rows[0]
	out := make([]Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(raw) {
				continue
			}
			row[header] = raw[i]
		}
		out = append(out, row)
	}
	return out, nil
}
