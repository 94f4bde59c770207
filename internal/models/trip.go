package models

// TripRow is one line of the pasted business-trip table.
type TripRow struct {
	Name        string `csv:"Name"`
	BankAccount string `csv:"Bank account number"`
	Amount      string `csv:"Amount"`
	TripNumber  string `csv:"Trip number"`
	Status      string `csv:"Status"`
}

// TripRecord is a validated business-trip reimbursement. The trip number
// doubles as the transfer title.
type TripRecord struct {
	EmployeeName string
	BankAccount  string
	Amount       string
	TripNumber   string
}

// NewTripRecord builds a TripRecord, rejecting blank required fields.
func NewTripRecord(employeeName, bankAccount, amount, tripNumber string) (TripRecord, error) {
	record := TripRecord{
		EmployeeName: employeeName,
		BankAccount:  bankAccount,
		Amount:       amount,
		TripNumber:   tripNumber,
	}
	if err := validateRequired("business trip", map[string]string{
		"employee name": record.EmployeeName,
		"bank account":  record.BankAccount,
		"amount":        record.Amount,
		"trip number":   record.TripNumber,
	}); err != nil {
		return TripRecord{}, err
	}
	return record, nil
}

// ToTransfer maps the trip reimbursement onto the positional output shape.
func (r TripRecord) ToTransfer() TransferRecord {
	return NewTransferRecord(r.BankAccount, r.EmployeeName, r.TripNumber, r.Amount)
}
