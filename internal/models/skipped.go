package models

import "fmt"

// Sources a skipped row can come from.
const (
	SourceInvoices = "invoices"
	SourceTrips    = "trips"
)

// SkippedRow records why a row was dropped from the batch. Filtered rows
// (wrong status, untagged amount) are expected housekeeping; the rest are
// rows that failed normalization or validation.
type SkippedRow struct {
	Source   string `json:"source"`
	Line     int    `json:"line"`
	Reason   string `json:"reason"`
	Filtered bool   `json:"filtered"`
}

func (s SkippedRow) String() string {
	return fmt.Sprintf("%s row %d: %s", s.Source, s.Line, s.Reason)
}
