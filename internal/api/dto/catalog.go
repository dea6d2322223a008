package dto

import (
	"github.com/cartology/tripquote/internal/types"
	"github.com/samber/lo"
)

// CurrencyResponse is one supported currency.
type CurrencyResponse struct {
	Code        string `json:"code"`
	Symbol      string `json:"symbol"`
	DisplayName string `json:"display_name"`
}

// CategoryResponse is one service category with its icon reference.
type CategoryResponse struct {
	Name    string `json:"name"`
	IconRef string `json:"icon_ref,omitempty"`
}

// BankAccountResponse is one preset bank account for payment instructions.
type BankAccountResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
}

// CatalogResponse lists the static reference data the quote builder needs:
// supported currencies, service categories and bank account presets.
type CatalogResponse struct {
	Currencies   []CurrencyResponse    `json:"currencies"`
	Categories   []CategoryResponse    `json:"categories"`
	BankAccounts []BankAccountResponse `json:"bank_accounts"`
}

func ToCatalogResponse() *CatalogResponse {
	return &CatalogResponse{
		Currencies: lo.Map(types.Currencies, func(c types.Currency, _ int) CurrencyResponse {
			return CurrencyResponse{
				Code:        c.Code,
				Symbol:      c.Symbol,
				DisplayName: c.DisplayName,
			}
		}),
		Categories: lo.Map(types.ServiceCategories, func(c types.ServiceCategory, _ int) CategoryResponse {
			return CategoryResponse{
				Name:    string(c),
				IconRef: c.IconRef(),
			}
		}),
		BankAccounts: lo.Map(types.BankAccountPresets, func(b types.BankAccount, _ int) BankAccountResponse {
			return BankAccountResponse{
				ID:      b.ID,
				Name:    b.Name,
				Details: b.Details,
			}
		}),
	}
}
