// Package tabular reads the hand-pasted payment tables and writes the bank
// transfer list. Rows are bound to structs by column name, so the two sides
// stay independent of column order and delimiter choice.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"

	"github.com/gocarina/gocsv"

	"paylist/internal/fileutils"
	"paylist/internal/models"
)

var (
	quotedFieldRe = regexp.MustCompile(`(?s)"(.*?)"`)
	innerSpaceRe  = regexp.MustCompile(`\s+`)
)

// DelimiterFromName resolves a configured delimiter name to its rune.
// Accepts the spelled-out names used in config files as well as literal
// single-character delimiters.
func DelimiterFromName(name string) (rune, error) {
	switch strings.ToLower(name) {
	case "tab", `\t`, "\t":
		return '\t', nil
	case "semicolon", ";":
		return ';', nil
	case "comma", ",":
		return ',', nil
	}
	if runes := []rune(name); len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("unsupported delimiter %q", name)
}

// Preprocess cleans a pasted table before parsing. Sheet exports arrive
// with a BOM, quoted cells spanning several lines, stray trailing
// delimiters and decorative blank lines; none of that survives here.
// Cells are trimmed, matching how the tables look in the sheet itself.
func Preprocess(data string, delim rune) string {
	data = strings.TrimPrefix(data, "\uFEFF")

	// Quoted cells are flattened to plain text: their line breaks and
	// embedded quotes cannot appear on the transfer list anyway.
	data = quotedFieldRe.ReplaceAllStringFunc(data, func(match string) string {
		content := match[1 : len(match)-1]
		content = strings.ReplaceAll(content, `"`, "")
		return strings.TrimSpace(innerSpaceRe.ReplaceAllString(content, " "))
	})

	sep := string(delim)
	var lines []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		cells := strings.Split(line, sep)
		for i, cell := range cells {
			cells[i] = strings.TrimSpace(cell)
		}
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		if len(cells) == 0 {
			continue
		}
		lines = append(lines, strings.Join(cells, sep))
	}
	return strings.Join(lines, "\n")
}

// EnsureHeader prepends the canonical header line when the first non-empty
// line does not contain every probe column name. Single-row pastes usually
// come without their header.
func EnsureHeader(data string, delim rune, canonical []string, probes ...string) string {
	if strings.TrimSpace(data) == "" {
		return data
	}

	var firstLine string
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) != "" {
			firstLine = line
			break
		}
	}

	looksLikeHeader := len(probes) > 0
	for _, probe := range probes {
		if !strings.Contains(firstLine, probe) {
			looksLikeHeader = false
			break
		}
	}
	if looksLikeHeader {
		return data
	}

	return strings.Join(canonical, string(delim)) + "\n" + data
}

// ParseString decodes delimited text into row structs bound by column name.
// Lines may carry varying field counts; columns without a matching struct
// tag are ignored and missing columns decode as empty strings.
func ParseString[TRow any](data string, delim rune) ([]TRow, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows []TRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing delimited data: %w", err)
	}
	return rows, nil
}

// WriteTransfers renders transfer records in the bank import format: one
// line per record, no header row, fields quoted only when the delimiter
// forces it.
func WriteTransfers(records []models.TransferRecord, delim rune) (string, error) {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = delim

	if err := gocsv.MarshalCSVWithoutHeaders(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return "", fmt.Errorf("error writing transfer records: %w", err)
	}
	return buf.String(), nil
}

// WriteTransfersToFile writes the rendered transfer list to a file,
// creating parent directories as needed.
func WriteTransfersToFile(path string, records []models.TransferRecord, delim rune) error {
	out, err := WriteTransfers(records, delim)
	if err != nil {
		return err
	}

	if err := fileutils.WriteTextFile(path, out); err != nil {
		return fmt.Errorf("error writing transfer file: %w", err)
	}
	return nil
}
