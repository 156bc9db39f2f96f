package service

import (
	"path/filepath"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// CountryService answers lookups against the country table.
type CountryService struct {
	table    *entities.CountryTable
	flagsDir string
}

func NewCountryService(table *entities.CountryTable, flagsDir string) *CountryService {
	return &CountryService{table: table, flagsDir: flagsDir}
}

// Name returns the display name of a country.
func (s *CountryService) Name(code entities.CountryCode) (string, error) {
	return s.table.Name(code)
}

// FlagPath returns the flag image path for a country: <flags_dir>/<code>.png.
func (s *CountryService) FlagPath(code entities.CountryCode) string {
	return filepath.Join(s.flagsDir, code.FlagFile())
}
