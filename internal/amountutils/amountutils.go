// Package amountutils normalizes spreadsheet money cells into the plain
// decimal strings the bank import format accepts.
package amountutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"paylist/internal/parsererror"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// HasMarker reports whether the value carries the currency marker at either
// end. Commas are removed before checking, mirroring how the source sheets
// group digits ("1,234.56 PLN").
func HasMarker(raw, marker string) bool {
	v := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	return strings.HasPrefix(v, marker) || strings.HasSuffix(v, marker)
}

// Normalize strips the currency marker from a raw amount cell and resolves
// the decimal separator. The marker must appear at the beginning or the end
// of the trimmed value; anything else is a FormatError. The result is a
// plain decimal string such as "1234.56", with no rounding and no numeric
// validation beyond separator handling.
func Normalize(raw, marker string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	var amountStr string
	switch {
	case strings.HasPrefix(trimmed, marker):
		amountStr = strings.TrimSpace(trimmed[len(marker):])
	case strings.HasSuffix(trimmed, marker):
		amountStr = strings.TrimSpace(trimmed[:len(trimmed)-len(marker)])
	default:
		return "", &parsererror.FormatError{
			Field:  "Amount",
			Value:  raw,
			Reason: fmt.Sprintf("currency marker %q not found", marker),
		}
	}

	return resolveSeparators(amountStr), nil
}

// NormalizeLenient behaves like Normalize but treats the currency marker as
// optional: stripped when present at either end, ignored otherwise. The
// business-trip sheets tag amounts inconsistently, so their pipeline uses
// this variant.
func NormalizeLenient(raw, marker string) string {
	trimmed := strings.TrimSpace(raw)
	if normalized, err := Normalize(trimmed, marker); err == nil {
		return normalized
	}
	return resolveSeparators(trimmed)
}

// resolveSeparators settles the comma/period ambiguity. When both are
// present the last-occurring one is the decimal separator and the other is
// a thousands separator to drop. A lone comma is always decimal. All
// whitespace is removed afterwards.
func resolveSeparators(amountStr string) string {
	hasComma := strings.Contains(amountStr, ",")
	hasPeriod := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasPeriod:
		if strings.LastIndex(amountStr, ".") > strings.LastIndex(amountStr, ",") {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		}
	case hasComma:
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}

	return whitespaceRe.ReplaceAllString(amountStr, "")
}

// Parse converts a normalized amount string into a decimal value.
func Parse(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}
