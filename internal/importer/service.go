package importer

import (
	"fmt"
	"io"

	"github.com/tranqh/moneypot/internal/importer/legacycsv"
	"github.com/tranqh/moneypot/internal/transaction"
)

type Service struct {
	legacyImporter Importer
}

func NewService() *Service {
	return &Service{
		legacyImporter: legacycsv.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	var importer Importer

	switch format {
	case FormatLegacyCSV:
		importer = s.legacyImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}
