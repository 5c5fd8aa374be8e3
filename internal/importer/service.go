package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/jmcortinhal/centavo/internal/encoding"
	"github.com/jmcortinhal/centavo/internal/transaction"
)

// Service parses CSV uploads into transaction create params. The expected
// format is a header row naming at least "date", "amount", "type" and
// "category" (any order, case-insensitive), with an optional "note"
// column. Dates are accepted as 2006-01-02 or RFC 3339.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// colIndex maps lower-cased header names to their column position.
type colIndex map[string]int

func (s *Service) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var params []transaction.CreateParams

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		if blankRow(row) {
			continue
		}

		p, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		params = append(params, p)
	}

	return params, nil
}

func headerIndex(header []string) (colIndex, error) {
	cols := make(colIndex)

	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			cols[name] = i
		}
	}

	for _, required := range []string{"date", "amount", "type", "category"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing %q column in header", required)
		}
	}

	return cols, nil
}

func parseRow(cols colIndex, row []string) (transaction.CreateParams, error) {
	date, err := parseDate(cellValue(row, cols["date"]))
	if err != nil {
		return transaction.CreateParams{}, err
	}

	amount, err := strconv.ParseFloat(cellValue(row, cols["amount"]), 64)
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("invalid amount: %w", err)
	}

	var note string
	if idx, ok := cols["note"]; ok {
		note = cellValue(row, idx)
	}

	return transaction.CreateParams{
		Amount:   amount,
		Type:     transaction.Type(cellValue(row, cols["type"])),
		Category: cellValue(row, cols["category"]),
		Note:     note,
		Date:     &date,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
