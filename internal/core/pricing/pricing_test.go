package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bairro-ads/internal/core/domain"
)

func fixtures(t *testing.T) (home domain.PlacementOption, base, pkg domain.Period) {
	t.Helper()
	cat := domain.NewCatalog(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	home, ok := cat.Placement(domain.PlacementHome)
	require.True(t, ok)
	for _, p := range cat.Periods {
		switch p.Kind {
		case domain.PeriodBase:
			base = p
		case domain.PeriodPackage:
			pkg = p
		}
	}
	return home, base, pkg
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestQuoteWithoutPlacementIsZero(t *testing.T) {
	_, base, _ := fixtures(t)
	q := ComputeQuote(Selection{Period: &base, NeighborhoodCount: 0})
	assertMoney(t, "0", q.Current)
	assertMoney(t, "0", q.Original)
	assert.False(t, q.Package)
}

func TestQuoteFloorsNeighborhoodsAtOne(t *testing.T) {
	home, base, _ := fixtures(t)
	empty := ComputeQuote(Selection{Placement: &home, Period: &base})
	one := ComputeQuote(Selection{Placement: &home, Period: &base, NeighborhoodCount: 1})
	assertMoney(t, "49.90", empty.Current)
	assert.True(t, empty.Current.Equal(one.Current))
}

func TestQuoteBasePeriod(t *testing.T) {
	home, base, _ := fixtures(t)
	q := ComputeQuote(Selection{Placement: &home, Period: &base, NeighborhoodCount: 2})
	assertMoney(t, "99.80", q.Current)
	assertMoney(t, "159.80", q.Original)
	assert.False(t, q.Package)
	assert.Equal(t, 1, q.InstallmentCount)
	assertMoney(t, "99.80", q.PerInstallment)
}

func TestQuotePackagePeriod(t *testing.T) {
	home, _, pkg := fixtures(t)
	q := ComputeQuote(Selection{Placement: &home, Period: &pkg, NeighborhoodCount: 2})
	assertMoney(t, "299.40", q.Current)
	assertMoney(t, "479.40", q.Original)
	assert.True(t, q.Package)
	assert.Equal(t, 3, q.InstallmentCount)
	assertMoney(t, "99.80", q.PerInstallment)
}

func TestQuoteAddonIsFlatAndOutsideInstallments(t *testing.T) {
	home, _, pkg := fixtures(t)
	q := ComputeQuote(Selection{Placement: &home, Period: &pkg, NeighborhoodCount: 2, Addon: true})
	assertMoney(t, "329.30", q.Current)
	assertMoney(t, "509.30", q.Original)
	assertMoney(t, "29.90", q.AddonCost)
	assertMoney(t, "99.80", q.PerInstallment)

	more := ComputeQuote(Selection{Placement: &home, Period: &pkg, NeighborhoodCount: 4, Addon: true})
	assertMoney(t, "29.90", more.Current.Sub(home.UnitPrice.Mul(decimal.NewFromInt(12))))
}

func TestQuoteIncreasesWithNeighborhoods(t *testing.T) {
	home, base, pkg := fixtures(t)
	for _, period := range []domain.Period{base, pkg} {
		prev := ComputeQuote(Selection{Placement: &home, Period: &period, NeighborhoodCount: 1})
		for n := 2; n <= 8; n++ {
			q := ComputeQuote(Selection{Placement: &home, Period: &period, NeighborhoodCount: n})
			require.Truef(t, q.Current.GreaterThan(prev.Current), "%s: n=%d", period.ID, n)
			prev = q
		}
	}
}

func TestQuoteIsDeterministic(t *testing.T) {
	home, _, pkg := fixtures(t)
	sel := Selection{Placement: &home, Period: &pkg, NeighborhoodCount: 5, Addon: true}
	a, b := ComputeQuote(sel), ComputeQuote(sel)
	assert.Equal(t, a.Current.String(), b.Current.String())
	assert.Equal(t, a.Original.String(), b.Original.String())
	assert.Equal(t, a.PerInstallment.String(), b.PerInstallment.String())
	assert.Equal(t, a.InstallmentCount, b.InstallmentCount)
	assert.Equal(t, a.Package, b.Package)
}

func TestQuoteWithoutPeriodUsesSingleUnit(t *testing.T) {
	home, _, _ := fixtures(t)
	q := ComputeQuote(Selection{Placement: &home, NeighborhoodCount: 3})
	assertMoney(t, "149.70", q.Current)
	assert.False(t, q.Package)
}
