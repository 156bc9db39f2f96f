// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MinCountries is the smallest table that can fill a round with distinct options.
const MinCountries = OptionsPerRound

var (
	ErrNotEnoughCountries = errors.New("country table needs at least 4 entries")
	ErrEmptyCountryCode   = errors.New("empty country code")
	ErrEmptyCountryName   = errors.New("empty country name")
	ErrDuplicateCountry   = errors.New("duplicate country code")
	ErrUnknownCountry     = errors.New("unknown country code")
)

// CountryCode is a short country identifier such as "DE" or "GB-SCT".
type CountryCode string

// Normalize returns the code trimmed and upper-cased.
func (c CountryCode) Normalize() CountryCode {
	return CountryCode(strings.ToUpper(strings.TrimSpace(string(c))))
}

// FlagFile returns the flag image file name for the code, e.g. "de.png".
func (c CountryCode) FlagFile() string {
	return strings.ToLower(string(c)) + ".png"
}

// CountryTable is a read-only mapping from country code to display name.
// It is built once at startup and shared by all sessions.
type CountryTable struct {
	names map[CountryCode]string
	codes []CountryCode // sorted, the sampling universe
}

// NewCountryTable validates raw code -> name pairs and builds a table.
// Codes are normalized; a table smaller than MinCountries is rejected.
func NewCountryTable(raw map[string]string) (*CountryTable, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &CountryTable{
		names: make(map[CountryCode]string, len(raw)),
		codes: make([]CountryCode, 0, len(raw)),
	}

	for _, k := range keys {
		code := CountryCode(k).Normalize()
		if code == "" {
			return nil, ErrEmptyCountryCode
		}

		name := strings.TrimSpace(raw[k])
		if name == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCountryName, code)
		}

		if _, ok := t.names[code]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCountry, code)
		}

		t.names[code] = name
		t.codes = append(t.codes, code)
	}

	if len(t.codes) < MinCountries {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughCountries, len(t.codes))
	}

	sort.Slice(t.codes, func(i, j int) bool { return t.codes[i] < t.codes[j] })

	return t, nil
}

// Len returns the number of countries in the table.
func (t *CountryTable) Len() int {
	return len(t.codes)
}

// Codes returns a copy of the table's codes in sorted order.
func (t *CountryTable) Codes() []CountryCode {
	out := make([]CountryCode, len(t.codes))
	copy(out, t.codes)
	return out
}

// Name returns the display name for a code.
func (t *CountryTable) Name(code CountryCode) (string, error) {
	name, ok := t.names[code.Normalize()]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCountry, code)
	}
	return name, nil
}
