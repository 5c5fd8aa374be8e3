// Package params parses the month/year query parameters shared by the
// listing and summary endpoints, so bounds and messages cannot drift
// between handlers.
package params

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

// Month parses the optional "month" query parameter. Nil means absent;
// values outside 1-12 are rejected.
func Month(r *http.Request) (*time.Month, error) {
	s := r.URL.Query().Get("month")
	if s == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return nil, errors.New("month must be an integer between 1 and 12")
	}

	m := time.Month(n)

	return &m, nil
}

// Year parses the optional "year" query parameter. Nil means absent;
// values outside 1970-3000 are rejected.
func Year(r *http.Request) (*int, error) {
	s := r.URL.Query().Get("year")
	if s == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1970 || n > 3000 {
		return nil, errors.New("year must be an integer between 1970 and 3000")
	}

	return &n, nil
}
