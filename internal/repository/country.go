package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// LoadCountryTable reads a JSON object of country code -> display name
// and validates it into a country table.
func LoadCountryTable(path string) (*entities.CountryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read countries file: %w", err)
	}

	return ParseCountryTable(data)
}

// ParseCountryTable decodes country table JSON.
func ParseCountryTable(data []byte) (*entities.CountryTable, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal countries JSON: %w", err)
	}

	table, err := entities.NewCountryTable(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid country table: %w", err)
	}

	return table, nil
}
