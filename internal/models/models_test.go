package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paylist/internal/parsererror"
)

func TestNewInvoiceRecord(t *testing.T) {
	record, err := NewInvoiceRecord("ABC Company Ltd", "11 2222 3333 4444 5555 6666 7777", "123.80", "INV/2023/001", false)
	require.NoError(t, err)

	assert.Equal(t, "ABC Company Ltd", record.PayeeName)
	assert.Equal(t, "11 2222 3333 4444 5555 6666 7777", record.BankAccount)
	assert.Equal(t, "123.80", record.Amount)
	assert.Equal(t, "INV/2023/001", record.Title)
	assert.False(t, record.Reimbursement)
}

func TestNewInvoiceRecord_RequiredFields(t *testing.T) {
	tests := []struct {
		name          string
		payeeName     string
		bankAccount   string
		amount        string
		title         string
		expectedField string
	}{
		{
			name:          "MissingPayeeName",
			bankAccount:   "11 2222 3333 4444 5555 6666 7777",
			amount:        "123.80",
			title:         "INV/2023/001",
			expectedField: "payee name",
		},
		{
			name:          "MissingBankAccount",
			payeeName:     "ABC Company Ltd",
			amount:        "123.80",
			title:         "INV/2023/001",
			expectedField: "bank account",
		},
		{
			name:          "MissingAmount",
			payeeName:     "ABC Company Ltd",
			bankAccount:   "11 2222 3333 4444 5555 6666 7777",
			title:         "INV/2023/001",
			expectedField: "amount",
		},
		{
			name:          "MissingTitle",
			payeeName:     "ABC Company Ltd",
			bankAccount:   "11 2222 3333 4444 5555 6666 7777",
			amount:        "123.80",
			expectedField: "title",
		},
		{
			name:          "WhitespaceOnlyPayeeName",
			payeeName:     "   ",
			bankAccount:   "11 2222 3333 4444 5555 6666 7777",
			amount:        "123.80",
			title:         "INV/2023/001",
			expectedField: "payee name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInvoiceRecord(tt.payeeName, tt.bankAccount, tt.amount, tt.title, false)
			require.Error(t, err)

			var validationErr *parsererror.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "invoice", validationErr.Record)
			assert.Contains(t, validationErr.Reason, tt.expectedField)
		})
	}
}

func TestNewInvoiceRecord_ReportsFirstMissingField(t *testing.T) {
	_, err := NewInvoiceRecord("", "", "", "", false)
	require.Error(t, err)

	var validationErr *parsererror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "payee name must not be empty", validationErr.Reason)
}

func TestInvoiceRecord_ToTransfer(t *testing.T) {
	record, err := NewInvoiceRecord("ABC Company Ltd", "11 2222 3333 4444 5555 6666 7777", "123.80", "INV/2023/001", false)
	require.NoError(t, err)

	transfer := record.ToTransfer()

	assert.Equal(t, "", transfer.ShortName)
	assert.Equal(t, "11 2222 3333 4444 5555 6666 7777", transfer.BankAccount)
	assert.Equal(t, "ABC Company Ltd", transfer.PayeeName)
	assert.Equal(t, "", transfer.AddressLine1)
	assert.Equal(t, "", transfer.AddressLine2)
	assert.Equal(t, "", transfer.AddressLine3)
	assert.Equal(t, "", transfer.AddressLine4)
	assert.Equal(t, "INV/2023/001", transfer.Title)
	assert.Equal(t, "123.80", transfer.Amount)
}

func TestNewTripRecord(t *testing.T) {
	record, err := NewTripRecord("John Smith", "12 3456 7890 1234 5678 9012 3456", "1500.00", "TRIP/2023/001")
	require.NoError(t, err)

	assert.Equal(t, "John Smith", record.EmployeeName)
	assert.Equal(t, "12 3456 7890 1234 5678 9012 3456", record.BankAccount)
	assert.Equal(t, "1500.00", record.Amount)
	assert.Equal(t, "TRIP/2023/001", record.TripNumber)
}

func TestNewTripRecord_RequiredFields(t *testing.T) {
	tests := []struct {
		name          string
		employeeName  string
		bankAccount   string
		amount        string
		tripNumber    string
		expectedField string
	}{
		{
			name:          "MissingEmployeeName",
			bankAccount:   "12 3456 7890 1234 5678 9012 3456",
			amount:        "1500.00",
			tripNumber:    "TRIP/2023/001",
			expectedField: "employee name",
		},
		{
			name:          "MissingBankAccount",
			employeeName:  "John Smith",
			amount:        "1500.00",
			tripNumber:    "TRIP/2023/001",
			expectedField: "bank account",
		},
		{
			name:          "MissingAmount",
			employeeName:  "John Smith",
			bankAccount:   "12 3456 7890 1234 5678 9012 3456",
			tripNumber:    "TRIP/2023/001",
			expectedField: "amount",
		},
		{
			name:          "MissingTripNumber",
			employeeName:  "John Smith",
			bankAccount:   "12 3456 7890 1234 5678 9012 3456",
			amount:        "1500.00",
			expectedField: "trip number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTripRecord(tt.employeeName, tt.bankAccount, tt.amount, tt.tripNumber)
			require.Error(t, err)

			var validationErr *parsererror.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "business trip", validationErr.Record)
			assert.Contains(t, validationErr.Reason, tt.expectedField)
		})
	}
}

func TestTripRecord_ToTransfer(t *testing.T) {
	record, err := NewTripRecord("John Smith", "12 3456 7890 1234 5678 9012 3456", "1500.00", "TRIP/2023/001")
	require.NoError(t, err)

	transfer := record.ToTransfer()

	assert.Equal(t, "12 3456 7890 1234 5678 9012 3456", transfer.BankAccount)
	assert.Equal(t, "John Smith", transfer.PayeeName)
	assert.Equal(t, "TRIP/2023/001", transfer.Title)
	assert.Equal(t, "1500.00", transfer.Amount)
}

func TestSkippedRow_String(t *testing.T) {
	skipped := SkippedRow{Source: SourceInvoices, Line: 3, Reason: "status REJECTED filtered out"}
	assert.Equal(t, "invoices row 3: status REJECTED filtered out", skipped.String())
}

func TestInvoiceColumns_MatchRowTags(t *testing.T) {
	assert.Len(t, InvoiceColumns, 14)
	for _, probe := range InvoiceHeaderProbes {
		assert.Contains(t, InvoiceColumns, probe)
	}
}
