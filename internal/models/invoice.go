package models

import (
	"strings"

	"paylist/internal/parsererror"
)

// InvoiceColumns is the canonical invoice header in sheet order. Pastes
// that arrive without a header row get this one prepended so columns still
// bind by name.
var InvoiceColumns = []string{
	"No",
	"Company name (Invoice)",
	"Company name (White list)",
	"Invoice number",
	"NIP",
	"Bank account number",
	"Amount",
	"Payment deadline",
	"Is the counterparty on the white list?",
	"Status",
	"P&S Unit",
	"Cost centre",
	"Description",
	"Regular payment",
}

// InvoiceHeaderProbes are the column names whose presence marks the first
// line of a paste as a header.
var InvoiceHeaderProbes = []string{
	"Company name (Invoice)",
	"Bank account number",
	"Amount",
	"Status",
}

// InvoiceRow is one line of the pasted invoice table, bound by column name.
// Columns the paste does not carry decode as empty strings.
type InvoiceRow struct {
	No              string `csv:"No"`
	CompanyName     string `csv:"Company name (Invoice)"`
	CompanyRegister string `csv:"Company name (White list)"`
	InvoiceNumber   string `csv:"Invoice number"`
	TaxID           string `csv:"NIP"`
	BankAccount     string `csv:"Bank account number"`
	Amount          string `csv:"Amount"`
	PaymentDeadline string `csv:"Payment deadline"`
	WhiteListed     string `csv:"Is the counterparty on the white list?"`
	Status          string `csv:"Status"`
	Unit            string `csv:"P&S Unit"`
	CostCentre      string `csv:"Cost centre"`
	Description     string `csv:"Description"`
	RegularPayment  string `csv:"Regular payment"`
}

// InvoiceRecord is a validated invoice payment: the payee, account, amount
// and transfer title that end up on the bank transfer list.
type InvoiceRecord struct {
	PayeeName     string
	BankAccount   string
	Amount        string
	Title         string
	Reimbursement bool
}

// NewInvoiceRecord builds an InvoiceRecord. Blank required fields are a
// ValidationError; the record is unusable on the transfer list without them.
func NewInvoiceRecord(payeeName, bankAccount, amount, title string, reimbursement bool) (InvoiceRecord, error) {
	record := InvoiceRecord{
		PayeeName:     payeeName,
		BankAccount:   bankAccount,
		Amount:        amount,
		Title:         title,
		Reimbursement: reimbursement,
	}
	if err := validateRequired("invoice", map[string]string{
		"payee name":   record.PayeeName,
		"bank account": record.BankAccount,
		"amount":       record.Amount,
		"title":        record.Title,
	}); err != nil {
		return InvoiceRecord{}, err
	}
	return record, nil
}

// ToTransfer maps the invoice payment onto the positional output shape.
func (r InvoiceRecord) ToTransfer() TransferRecord {
	return NewTransferRecord(r.BankAccount, r.PayeeName, r.Title, r.Amount)
}

// requiredFieldOrder keeps validation messages deterministic regardless of
// map iteration order.
var requiredFieldOrder = []string{"payee name", "employee name", "bank account", "amount", "title", "trip number"}

func validateRequired(record string, fields map[string]string) error {
	for _, name := range requiredFieldOrder {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if strings.TrimSpace(value) == "" {
			return &parsererror.ValidationError{
				Record: record,
				Reason: name + " must not be empty",
			}
		}
	}
	return nil
}
