package importer

import (
	"io"

	"github.com/tranqh/moneypot/internal/transaction"
)

type Format string

const (
	FormatLegacyCSV Format = "legacy-csv"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
