package legacycsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/tranqh/moneypot/internal/encoding"
	"github.com/tranqh/moneypot/internal/transaction"
)

const (
	colDate        = "date"
	colCategory    = "category"
	colAmount      = "amount"
	colType        = "type"
	colRole        = "role"
	colDescription = "description"
	colExpiryDate  = "expiry_date"
	colIsRecurring = "is_recurring"
	colCycle       = "cycle"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// Importer reads CSV ledger exports from the old desktop tool. Files carry a
// header row (id, date, category, amount, type, role, description,
// expiry_date, is_recurring, cycle) and are usually UTF-8 with a BOM. The id
// column is ignored; imported rows get fresh ids on create.
type Importer struct{}

func New() *Importer {
	return &Importer{}
}

// colIndex maps column names to their index in the header row.
type colIndex map[string]int

// cell returns the trimmed value of a named column, or "" when the column is
// missing from the header or the row is short.
func (c colIndex) cell(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func (i *Importer) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols := make(colIndex)

	for i, cell := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for _, required := range []string{colDate, colAmount, colType} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q in header", required)
		}
	}

	return parseRows(cols, rows[1:])
}

func parseRows(cols colIndex, rows [][]string) ([]transaction.CreateParams, error) {
	var txs []transaction.CreateParams

	for i, row := range rows {
		rowNum := i + 2 // 1-based, skipping header

		date, ok := parseDate(cols.cell(row, colDate))
		if !ok {
			// Footer or blank line.
			continue
		}

		amount, err := strconv.ParseFloat(cols.cell(row, colAmount), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount: %w", rowNum, err)
		}

		txType := transaction.Type(strings.ToLower(cols.cell(row, colType)))
		if txType != transaction.TypeIncome && txType != transaction.TypeExpense {
			return nil, fmt.Errorf("row %d: unknown type %q", rowNum, txType)
		}

		params := transaction.CreateParams{
			Date:        date,
			Category:    cols.cell(row, colCategory),
			Amount:      amount,
			Type:        txType,
			Role:        cols.cell(row, colRole),
			Description: cols.cell(row, colDescription),
			IsRecurring: parseBool(cols.cell(row, colIsRecurring)),
			Cycle:       cols.cell(row, colCycle),
		}

		if expiry, ok := parseDate(cols.cell(row, colExpiryDate)); ok {
			params.ExpiryDate = &expiry
		}

		txs = append(txs, params)
	}

	return txs, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" || s == "None" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}

	return false
}
