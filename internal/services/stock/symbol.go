package stock

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidSymbol is returned for a blank symbol or one carrying control characters
var ErrInvalidSymbol = errors.New("invalid symbol")

// NormalizeSymbol trims and upper-cases raw. Any printable symbol is accepted;
// unknown tickers still resolve to the default base price downstream.
// The normalized symbol is returned even on error so callers can echo it.
func NormalizeSymbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" {
		return "", fmt.Errorf("%w: symbol is required", ErrInvalidSymbol)
	}
	if strings.IndexFunc(symbol, unicode.IsControl) >= 0 {
		return symbol, fmt.Errorf("%w: control characters are not allowed", ErrInvalidSymbol)
	}
	return symbol, nil
}
