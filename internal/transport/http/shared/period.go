package shared

import (
	"errors"
	"net/http"
	"strconv"
)

var ErrInvalidPeriod = errors.New("month and year query parameters are required")

// ParsePeriod reads month and year from the query string.
func ParsePeriod(r *http.Request) (int, int, error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ErrInvalidPeriod
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1000 || year > 9999 {
		return 0, 0, ErrInvalidPeriod
	}
	return month, year, nil
}
