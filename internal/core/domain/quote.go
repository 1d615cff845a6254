package domain

import "github.com/shopspring/decimal"

// Quote is the price of the current selection. It is derived on demand and
// never stored.
type Quote struct {
	Current          decimal.Decimal `json:"current"`
	Original         decimal.Decimal `json:"original"`
	AddonCost        decimal.Decimal `json:"addon_cost"`
	Package          bool            `json:"package"`
	InstallmentCount int             `json:"installment_count"`
	PerInstallment   decimal.Decimal `json:"per_installment"`
}
