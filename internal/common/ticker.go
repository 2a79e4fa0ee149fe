// Package common provides shared utilities across the application.
package common

import (
	"strings"
)

// NormalizeTicker canonicalizes a ticker symbol for lookups.
// Surrounding whitespace is stripped and the symbol is uppercased,
// so "  aapl " and "AAPL" address the same holding.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// NormalizeTickers canonicalizes a list of ticker symbols, dropping
// entries that normalize to empty.
func NormalizeTickers(tickers []string) []string {
	result := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if normalized := NormalizeTicker(t); normalized != "" {
			result = append(result, normalized)
		}
	}
	return result
}
