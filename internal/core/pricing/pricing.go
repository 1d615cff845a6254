// Package pricing turns a booking selection into a quote. Everything here is
// a pure function of its input and the catalog constants.
package pricing

import (
	"github.com/shopspring/decimal"

	"bairro-ads/internal/core/domain"
)

// Selection is the priced subset of a booking session.
type Selection struct {
	Placement         *domain.PlacementOption
	Period            *domain.Period
	NeighborhoodCount int
	Addon             bool
}

// ComputeQuote prices sel. It never fails: an unset placement yields a zero
// quote and an unset period prices as a single base unit.
func ComputeQuote(sel Selection) domain.Quote {
	if sel.Placement == nil {
		return domain.Quote{
			Current:          decimal.Zero,
			Original:         decimal.Zero,
			AddonCost:        decimal.Zero,
			InstallmentCount: 1,
			PerInstallment:   decimal.Zero,
		}
	}

	neighborhoods := int64(max(1, sel.NeighborhoodCount))
	periodMul := int64(1)
	if sel.Period != nil && sel.Period.Multiplier > 0 {
		periodMul = sel.Period.Multiplier
	}
	units := decimal.NewFromInt(periodMul * neighborhoods)

	addon := decimal.Zero
	if sel.Addon {
		addon = domain.CreativeAddonFee
	}

	base := sel.Placement.UnitPrice.Mul(units)
	q := domain.Quote{
		Current:          base.Add(addon).Round(2),
		Original:         sel.Placement.WasPrice.Mul(units).Add(addon).Round(2),
		AddonCost:        addon,
		InstallmentCount: 1,
	}
	q.PerInstallment = q.Current

	// The addon is billed apart from the installment plan.
	if sel.Period != nil && sel.Period.Package && sel.Period.Installments > 0 {
		q.Package = true
		q.InstallmentCount = sel.Period.Installments
		q.PerInstallment = base.Div(decimal.NewFromInt(int64(sel.Period.Installments))).Round(2)
	}
	return q
}
