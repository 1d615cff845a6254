package domain

import "github.com/shopspring/decimal"

// PlacementID identifies an on-screen surface a banner can be bought for.
type PlacementID string

const (
	PlacementHome     PlacementID = "HOME"
	PlacementCategory PlacementID = "CATEGORY"
	PlacementCombo    PlacementID = "COMBO"
)

// PlacementOption is immutable catalog data. WasPrice is the pre-discount
// reference used to display savings next to UnitPrice.
type PlacementOption struct {
	ID        PlacementID     `json:"id"`
	Label     string          `json:"label"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	WasPrice  decimal.Decimal `json:"was_price"`
}

// CreativeAddonFee is charged once per booking when the merchant opts into a
// professionally produced creative.
var CreativeAddonFee = decimal.RequireFromString("29.90")

func defaultPlacements() []PlacementOption {
	return []PlacementOption{
		{
			ID:        PlacementHome,
			Label:     "Home feed",
			UnitPrice: decimal.RequireFromString("49.90"),
			WasPrice:  decimal.RequireFromString("79.90"),
		},
		{
			ID:        PlacementCategory,
			Label:     "Category page",
			UnitPrice: decimal.RequireFromString("39.90"),
			WasPrice:  decimal.RequireFromString("59.90"),
		},
		{
			ID:        PlacementCombo,
			Label:     "Home feed + category page",
			UnitPrice: decimal.RequireFromString("79.90"),
			WasPrice:  decimal.RequireFromString("129.90"),
		},
	}
}
