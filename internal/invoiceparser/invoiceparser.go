// Package invoiceparser converts pasted invoice table rows into validated
// payment records ready for the bank transfer list.
package invoiceparser

import (
	"fmt"
	"strings"

	"paylist/internal/amountutils"
	"paylist/internal/logging"
	"paylist/internal/models"
	"paylist/internal/textutils"
)

// Options carries the vocabulary the pipeline filters and extracts with.
// It is passed explicitly so an alternate status set or prefix list is a
// configuration change, not a rebuild.
type Options struct {
	CurrencyMarker           string
	AcceptedStatuses         []string
	ReimbursementPrefixes    []string
	ReimbursementTitlePrefix string
}

// Convert runs the invoice pipeline over parsed rows: filter on the tagged
// amount and the status, sanitize the free-text fields, resolve
// reimbursement instructions, normalize the amount and construct the
// records. Rows that do not qualify or fail normalization become skipped
// diagnostics, never an error; output order follows input order.
func Convert(rows []models.InvoiceRow, opts Options, log logging.Logger) ([]models.InvoiceRecord, []models.SkippedRow) {
	records := make([]models.InvoiceRecord, 0, len(rows))
	var skipped []models.SkippedRow

	for i, row := range rows {
		line := i + 1

		if !amountutils.HasMarker(row.Amount, opts.CurrencyMarker) {
			reason := fmt.Sprintf("amount %q is not tagged with %s", row.Amount, opts.CurrencyMarker)
			skipped = append(skipped, filtered(line, reason))
			log.Debug("Skipping invoice row",
				logging.Field{Key: logging.FieldRow, Value: line},
				logging.Field{Key: logging.FieldReason, Value: reason})
			continue
		}

		if !statusAccepted(row.Status, opts.AcceptedStatuses) {
			reason := fmt.Sprintf("status %q is not accepted", strings.TrimSpace(row.Status))
			skipped = append(skipped, filtered(line, reason))
			log.Debug("Skipping invoice row",
				logging.Field{Key: logging.FieldRow, Value: line},
				logging.Field{Key: logging.FieldStatus, Value: row.Status})
			continue
		}

		record, err := convertRow(row, opts)
		if err != nil {
			skipped = append(skipped, models.SkippedRow{
				Source: models.SourceInvoices,
				Line:   line,
				Reason: err.Error(),
			})
			log.WithError(err).Warn("Skipping invoice row",
				logging.Field{Key: logging.FieldRow, Value: line})
			continue
		}

		records = append(records, record)
	}

	return records, skipped
}

// convertRow maps one qualifying row onto an InvoiceRecord. A reimbursement
// instruction in the account field replaces the payee and account with the
// extracted employee and digits-only account, and switches the title from
// the invoice number to the prefixed description.
func convertRow(row models.InvoiceRow, opts Options) (models.InvoiceRecord, error) {
	payee := textutils.Sanitize(row.CompanyName)
	account := textutils.Sanitize(row.BankAccount)
	description := textutils.Sanitize(row.Description)
	invoiceNumber := textutils.Sanitize(row.InvoiceNumber)

	title := invoiceNumber
	reimbursement := false
	if extracted, ok := textutils.ExtractReimbursement(account, opts.ReimbursementPrefixes); ok {
		payee = extracted.Payee
		account = extracted.Account
		title = opts.ReimbursementTitlePrefix + description
		reimbursement = true
	}

	amount, err := amountutils.Normalize(row.Amount, opts.CurrencyMarker)
	if err != nil {
		return models.InvoiceRecord{}, err
	}

	return models.NewInvoiceRecord(payee, account, amount, title, reimbursement)
}

func filtered(line int, reason string) models.SkippedRow {
	return models.SkippedRow{
		Source:   models.SourceInvoices,
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
