// Package generator sequences the invoice and business-trip pipelines into
// the final bank transfer list. It is a pure batch transform: text in,
// ordered transfer records plus skipped-row diagnostics out, with all file
// and network handling left to the callers.
package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paylist/internal/amountutils"
	"paylist/internal/config"
	"paylist/internal/invoiceparser"
	"paylist/internal/logging"
	"paylist/internal/models"
	"paylist/internal/parsererror"
	"paylist/internal/tabular"
	"paylist/internal/textutils"
	"paylist/internal/tripparser"
)

// outputFileSuffix is the naming convention of the bank import tool the
// list is handed to.
const outputFileSuffix = "_invoice.ebgz"

// Options collects everything the two pipelines and the row adapter need.
// One value is built per invocation; the generator holds no other state.
type Options struct {
	InputDelimiter  rune
	OutputDelimiter rune
	Invoices        invoiceparser.Options
	Trips           tripparser.Options
}

// OptionsFromConfig resolves the configured delimiters and vocabularies
// into pipeline options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	inputDelim, err := cfg.InputDelimiter()
	if err != nil {
		return Options{}, err
	}
	outputDelim, err := cfg.OutputDelimiter()
	if err != nil {
		return Options{}, err
	}

	return Options{
		InputDelimiter:  inputDelim,
		OutputDelimiter: outputDelim,
		Invoices: invoiceparser.Options{
			CurrencyMarker:           cfg.Transfers.CurrencyMarker,
			AcceptedStatuses:         cfg.Transfers.InvoiceStatuses,
			ReimbursementPrefixes:    cfg.Transfers.ReimbursementPrefixes,
			ReimbursementTitlePrefix: cfg.Transfers.ReimbursementTitlePrefix,
		},
		Trips: tripparser.Options{
			CurrencyMarker:      cfg.Transfers.CurrencyMarker,
			AcceptedStatuses:    cfg.Transfers.TripStatuses,
			RequireAccountMatch: cfg.Transfers.RequireTripAccountMatch,
		},
	}, nil
}

// Result is the structured outcome of one generation: the transfer records
// in their final order plus a diagnostic per dropped row, so callers can
// report drops without scraping logs.
type Result struct {
	Transfers []models.TransferRecord `json:"transfers"`
	Skipped   []models.SkippedRow     `json:"skipped"`
}

// Total sums the normalized amounts of all transfers exactly.
func (r *Result) Total() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, transfer := range r.Transfers {
		amount, err := amountutils.Parse(transfer.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid transfer amount for %q: %w", transfer.PayeeName, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}

// Generator turns pasted invoice and trip tables into a transfer list.
// Each call owns its data, so one Generator is safe to share between
// concurrent requests.
type Generator struct {
	opts Options
	log  logging.Logger
}

// New creates a Generator with the given options and logger.
func New(opts Options, log logging.Logger) *Generator {
	return &Generator{opts: opts, log: log}
}

// Generate runs both pipelines and concatenates their output, invoices
// first, each table keeping its own row order. Invoice data is mandatory;
// blank trip data means an invoice-only list. Dropped rows surface in the
// result, not as errors: only a missing invoice table or an unparseable
// one fails the call.
func (g *Generator) Generate(invoiceData, tripData string) (*Result, error) {
	if strings.TrimSpace(invoiceData) == "" {
		return nil, &parsererror.InputError{Name: "invoices", Reason: "no invoice data provided"}
	}

	invoiceRows, err := g.parseInvoiceTable(invoiceData)
	if err != nil {
		return nil, err
	}
	invoiceRecords, skipped := invoiceparser.Convert(invoiceRows, g.opts.Invoices, g.log)
	g.log.Info("Processed invoice table",
		logging.Field{Key: logging.FieldCount, Value: len(invoiceRecords)},
		logging.Field{Key: logging.FieldSkipped, Value: len(skipped)})

	transfers := make([]models.TransferRecord, 0, len(invoiceRecords))
	for _, record := range invoiceRecords {
		transfers = append(transfers, record.ToTransfer())
	}

	if strings.TrimSpace(tripData) != "" {
		tripRows, err := g.parseTripTable(tripData)
		if err != nil {
			return nil, err
		}

		var invoiceAccounts map[string]bool
		if g.opts.Trips.RequireAccountMatch {
			invoiceAccounts = accountSet(invoiceRecords)
		}

		tripRecords, tripSkipped := tripparser.Convert(tripRows, g.opts.Trips, invoiceAccounts, g.log)
		g.log.Info("Processed business-trip table",
			logging.Field{Key: logging.FieldCount, Value: len(tripRecords)},
			logging.Field{Key: logging.FieldSkipped, Value: len(tripSkipped)})

		for _, record := range tripRecords {
			transfers = append(transfers, record.ToTransfer())
		}
		skipped = append(skipped, tripSkipped...)
	}

	return &Result{Transfers: transfers, Skipped: skipped}, nil
}

func (g *Generator) parseInvoiceTable(data string) ([]models.InvoiceRow, error) {
	cleaned := tabular.Preprocess(data, g.opts.InputDelimiter)
	if cleaned == "" {
		return nil, &parsererror.InputError{Name: "invoices", Reason: "no invoice data provided"}
	}
	cleaned = tabular.EnsureHeader(cleaned, g.opts.InputDelimiter, models.InvoiceColumns, models.InvoiceHeaderProbes...)

	rows, err := tabular.ParseString[models.InvoiceRow](cleaned, g.opts.InputDelimiter)
	if err != nil {
		return nil, fmt.Errorf("error parsing invoice table: %w", err)
	}
	return rows, nil
}

func (g *Generator) parseTripTable(data string) ([]models.TripRow, error) {
	cleaned := tabular.Preprocess(data, g.opts.InputDelimiter)
	if cleaned == "" {
		return nil, nil
	}

	rows, err := tabular.ParseString[models.TripRow](cleaned, g.opts.InputDelimiter)
	if err != nil {
		return nil, fmt.Errorf("error parsing business-trip table: %w", err)
	}
	return rows, nil
}

// accountSet collects the space-stripped invoice accounts for the trip
// cross-check.
func accountSet(records []models.InvoiceRecord) map[string]bool {
	accounts := make(map[string]bool, len(records))
	for _, record := range records {
		accounts[textutils.StripSpaces(record.BankAccount)] = true
	}
	return accounts
}

// OutputFileName returns the date-stamped name the bank import expects,
// e.g. "07032024_invoice.ebgz" for March 7th 2024.
func OutputFileName(t time.Time) string {
	return t.Format("02012006") + outputFileSuffix
}
