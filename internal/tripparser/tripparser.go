// Package tripparser converts pasted business-trip rows into validated
// reimbursement records. Trips always pay an employee, so there is no
// reimbursement extraction here; the trip number doubles as the title.
package tripparser

import (
	"fmt"
	"strings"

	"paylist/internal/amountutils"
	"paylist/internal/logging"
	"paylist/internal/models"
	"paylist/internal/textutils"
)

// Options carries the trip pipeline vocabulary. The trip sheets tag amounts
// inconsistently, so the currency marker is stripped when present rather
// than required. RequireAccountMatch drops trips whose account does not
// appear in the invoice batch; one legacy workflow relied on that check,
// so it stays available behind configuration and defaults to off.
type Options struct {
	CurrencyMarker      string
	AcceptedStatuses    []string
	RequireAccountMatch bool
}

// Convert runs the trip pipeline over parsed rows. invoiceAccounts holds
// the space-stripped account numbers of the invoice batch and is consulted
// only when RequireAccountMatch is set; pass nil otherwise. Row failures
// become skipped diagnostics, never an error; output order follows input
// order.
func Convert(rows []models.TripRow, opts Options, invoiceAccounts map[string]bool, log logging.Logger) ([]models.TripRecord, []models.SkippedRow) {
	records := make([]models.TripRecord, 0, len(rows))
	var skipped []models.SkippedRow

	for i, row := range rows {
		line := i + 1

		if !statusAccepted(row.Status, opts.AcceptedStatuses) {
			reason := fmt.Sprintf("status %q is not accepted", strings.TrimSpace(row.Status))
			skipped = append(skipped, filtered(line, reason))
			log.Debug("Skipping trip row",
				logging.Field{Key: logging.FieldRow, Value: line},
				logging.Field{Key: logging.FieldStatus, Value: row.Status})
			continue
		}

		name := textutils.Sanitize(row.Name)
		account := textutils.Sanitize(row.BankAccount)
		tripNumber := textutils.Sanitize(row.TripNumber)

		if opts.RequireAccountMatch && !invoiceAccounts[textutils.StripSpaces(account)] {
			reason := fmt.Sprintf("bank account %q does not match any invoice account", account)
			skipped = append(skipped, filtered(line, reason))
			log.Debug("Skipping trip row",
				logging.Field{Key: logging.FieldRow, Value: line},
				logging.Field{Key: logging.FieldReason, Value: reason})
			continue
		}

		amount := amountutils.NormalizeLenient(row.Amount, opts.CurrencyMarker)

		record, err := models.NewTripRecord(name, account, amount, tripNumber)
		if err != nil {
			skipped = append(skipped, models.SkippedRow{
				Source: models.SourceTrips,
				Line:   line,
				Reason: err.Error(),
			})
			log.WithError(err).Warn("Skipping trip row",
				logging.Field{Key: logging.FieldRow, Value: line})
			continue
		}

		records = append(records, record)
	}

	return records, skipped
}

func filtered(line int, reason string) models.SkippedRow {
	return models.SkippedRow{
		Source:   models.SourceTrips,
		Line:     line,
		Reason:   reason,
		Filtered: true,
	}
}

func statusAccepted(status string, accepted []string) bool {
	status = strings.TrimSpace(status)
	for _, s := range accepted {
		if strings.EqualFold(status, s) {
			return true
		}
	}
	return false
}
