package tripparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paylist/internal/logging"
	"paylist/internal/models"
)

func defaultOptions() Options {
	return Options{
		CurrencyMarker:   "PLN",
		AcceptedStatuses: []string{"PENDING", "TO PAY"},
	}
}

func tripRow(name, account, amount, tripNumber, status string) models.TripRow {
	return models.TripRow{
		Name:        name,
		BankAccount: account,
		Amount:      amount,
		TripNumber:  tripNumber,
		Status:      status,
	}
}

func TestConvert_FiltersOnStatusOnly(t *testing.T) {
	rows := []models.TripRow{
		tripRow("John Smith", "12 3456 7890 1234 5678 9012 3456", "PLN 1500,00", "TRIP/2023/001", "PENDING"),
		tripRow("Jane Doe", "34 5678 9012 3456 7890 1234 5678", "2300,50", "TRIP/2023/002", "to pay"),
		tripRow("Rejected Person", "56 7890 1234 5678 9012 3456 7890", "PLN 100,00", "TRIP/2023/003", "DRAFT"),
	}

	records, skipped := Convert(rows, defaultOptions(), nil, &logging.MockLogger{})

	require.Len(t, records, 2)
	assert.Equal(t, "John Smith", records[0].EmployeeName)
	assert.Equal(t, "1500.00", records[0].Amount)
	assert.Equal(t, "TRIP/2023/001", records[0].TripNumber)
	// Untagged amount is fine for trips; the marker is optional here.
	assert.Equal(t, "Jane Doe", records[1].EmployeeName)
	assert.Equal(t, "2300.50", records[1].Amount)

	require.Len(t, skipped, 1)
	assert.Equal(t, models.SourceTrips, skipped[0].Source)
	assert.Equal(t, 3, skipped[0].Line)
	assert.True(t, skipped[0].Filtered)
}

func TestConvert_ApprovedVocabularyViaOptions(t *testing.T) {
	opts := defaultOptions()
	opts.AcceptedStatuses = []string{"APPROVED"}
	rows := []models.TripRow{
		tripRow("John Smith", "12 3456 7890 1234 5678 9012 3456", "PLN 450,00", "TRIP/2024/004", "APPROVED"),
		tripRow("Jane Doe", "34 5678 9012 3456 7890 1234 5678", "PLN 120,00", "TRIP/2024/005", "PENDING"),
	}

	records, skipped := Convert(rows, opts, nil, &logging.MockLogger{})

	require.Len(t, records, 1)
	assert.Equal(t, "John Smith", records[0].EmployeeName)
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].Line)
}

func TestConvert_AccountMatchFilter(t *testing.T) {
	invoiceAccounts := map[string]bool{
		"12345678901234567890123456": true,
	}
	rows := []models.TripRow{
		tripRow("John Smith", "12 3456 7890 1234 5678 9012 3456", "PLN 1500,00", "TRIP/2023/001", "PENDING"),
		tripRow("Jane Doe", "34 5678 9012 3456 7890 1234 5678", "PLN 2300,50", "TRIP/2023/002", "PENDING"),
	}

	opts := defaultOptions()
	opts.RequireAccountMatch = true
	records, skipped := Convert(rows, opts, invoiceAccounts, &logging.MockLogger{})

	require.Len(t, records, 1)
	assert.Equal(t, "John Smith", records[0].EmployeeName)
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].Line)
	assert.True(t, skipped[0].Filtered)
	assert.Contains(t, skipped[0].Reason, "does not match any invoice account")
}

func TestConvert_AccountMatchOffByDefault(t *testing.T) {
	rows := []models.TripRow{
		tripRow("Jane Doe", "34 5678 9012 3456 7890 1234 5678", "PLN 2300,50", "TRIP/2023/002", "PENDING"),
	}

	records, skipped := Convert(rows, defaultOptions(), nil, &logging.MockLogger{})

	require.Len(t, records, 1)
	assert.Empty(t, skipped)
}

func TestConvert_SanitizesAndValidates(t *testing.T) {
	log := &logging.MockLogger{}
	rows := []models.TripRow{
		tripRow("Jan\nKowalski", "12 3456 7890\n1234 5678 9012 3456", "450,00 PLN", "TRIP/2024/007\n", "PENDING"),
		tripRow("Missing Trip Number", "34 5678 9012 3456 7890 1234 5678", "PLN 80,00", "  ", "PENDING"),
	}

	records, skipped := Convert(rows, defaultOptions(), nil, log)

	require.Len(t, records, 1)
	assert.Equal(t, "Jan Kowalski", records[0].EmployeeName)
	assert.Equal(t, "12 3456 7890 1234 5678 9012 3456", records[0].BankAccount)
	assert.Equal(t, "450.00", records[0].Amount)
	assert.Equal(t, "TRIP/2024/007", records[0].TripNumber)

	require.Len(t, skipped, 1)
	assert.False(t, skipped[0].Filtered)
	assert.Contains(t, skipped[0].Reason, "trip number must not be empty")

	warned := false
	for _, entry := range log.Entries {
		if entry.Level == "WARN" {
			warned = true
		}
	}
	assert.True(t, warned)
}
