package types

import "github.com/samber/lo"

// BankAccount is a preset payment-instruction block shown in the document
// footer. Presets are static catalog data; callers may still supply fully
// custom details instead.
type BankAccount struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
}

// BankAccountPresets is the fixed catalog of agency bank accounts. The first
// entry is the default.
var BankAccountPresets = []BankAccount{
	{
		ID:   "default",
		Name: "GBP Account (Default)",
		Details: "Cartology Travel Ltd\n" +
			"Address: 17 Dorien Road, London, SW20 8EL\n" +
			"Barclays Bank\n" +
			"Sort: 20-45-45\n" +
			"Acc: 80285463\n" +
			"IBAN: GB32BUKB20454580285463\n" +
			"Swift: BUKBGB22",
	},
	{
		ID:   "usd",
		Name: "USD Account",
		Details: "Cartology Travel Ltd\n" +
			"Barclays Bank\n" +
			"Sort: 20-45-45\n" +
			"Acc: 65546399\n" +
			"IBAN: GB38BUKB20454565546399",
	},
	{
		ID:   "eur",
		Name: "EUR Account",
		Details: "Cartology Travel Ltd\n" +
			"Sort: 20-45-45\n" +
			"Acc: 56279911\n" +
			"IBAN: GB10 BUKB 20454556279911",
	},
}

// GetBankAccount returns the preset with the given ID, falling back to the
// default preset for unknown IDs.
func GetBankAccount(id string) BankAccount {
	acc, ok := lo.Find(BankAccountPresets, func(a BankAccount) bool {
		return a.ID == id
	})
	if !ok {
		return BankAccountPresets[0]
	}
	return acc
}
