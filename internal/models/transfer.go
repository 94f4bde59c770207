package models

// TransferRecord is one output line of the bank transfer list. The import
// format is positional: nine fields in exactly this order, with the short
// name and the whole address block left empty.
type TransferRecord struct {
	ShortName    string `csv:"ShortName" json:"shortName"`
	BankAccount  string `csv:"BankAccount" json:"bankAccount"`
	PayeeName    string `csv:"PayeeName" json:"payeeName"`
	AddressLine1 string `csv:"AddressLine1" json:"addressLine1"`
	AddressLine2 string `csv:"AddressLine2" json:"addressLine2"`
	AddressLine3 string `csv:"AddressLine3" json:"addressLine3"`
	AddressLine4 string `csv:"AddressLine4" json:"addressLine4"`
	Title        string `csv:"Title" json:"title"`
	Amount       string `csv:"Amount" json:"amount"`
}

// NewTransferRecord fills the positional shape around the four meaningful
// fields.
func NewTransferRecord(bankAccount, payeeName, title, amount string) TransferRecord {
	return TransferRecord{
		BankAccount: bankAccount,
		PayeeName:   payeeName,
		Title:       title,
		Amount:      amount,
	}
}
