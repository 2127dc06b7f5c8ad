package shared

import (
	"errors"
	"net/http"

	"fleethr/internal/domain/sheet"
)

var ErrMissingFile = errors.New("missing upload file")

// ReadSheetUpload pulls the "file" part out of a multipart form and parses
// it as a workbook. maxBytes bounds the in-memory form size.
func ReadSheetUpload(r *http.Request, maxBytes int64) ([]sheet.Row, error) {
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, ErrMissingFile
	}
	defer file.Close()
	return sheet.ReadWorkbook(file)
}
