package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborhoodIDsAreSlugs(t *testing.T) {
	cat := NewCatalog(time.Now())
	ids := make(map[string]string)
	for _, n := range cat.Neighborhoods {
		ids[n.Name] = n.ID
	}
	assert.Equal(t, "jardim-america", ids["Jardim América"])
	assert.Equal(t, "santa-cecilia", ids["Santa Cecília"])
	assert.Equal(t, "centro", ids["Centro"])
}

func TestPeriodsStartNextMonth(t *testing.T) {
	cat := NewCatalog(time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC))
	require.Len(t, cat.Periods, 2)

	base, pkg := cat.Periods[0], cat.Periods[1]
	assert.Equal(t, "base-2027-01", base.ID)
	assert.Equal(t, time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC), base.EndDate)
	assert.Equal(t, 31, base.Days)
	assert.False(t, base.Package)

	assert.Equal(t, "package-2027-01", pkg.ID)
	assert.Equal(t, int64(3), pkg.Multiplier)
	assert.Equal(t, 3, pkg.Installments)
	assert.True(t, pkg.Package)
	assert.Equal(t, time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC), pkg.EndDate)
}

func TestCatalogLookups(t *testing.T) {
	cat := NewCatalog(time.Now())

	home, ok := cat.Placement(PlacementHome)
	require.True(t, ok)
	assert.Equal(t, "49.9", home.UnitPrice.String())

	_, ok = cat.Placement("sidebar")
	assert.False(t, ok)
	_, ok = cat.Template("promo-coupon")
	assert.True(t, ok)
	_, ok = cat.Neighborhood("atlantis")
	assert.False(t, ok)
}

func TestTarget(t *testing.T) {
	assert.Equal(t, "home", Target(PlacementHome, "Restaurants"))
	assert.Equal(t, "category:pet-shops", Target(PlacementCategory, "Pet Shops"))
	assert.Equal(t, "combo:padarias-e-cafes", Target(PlacementCombo, "Padarias e Cafés"))
	assert.Empty(t, Target("sidebar", "x"))
}

func TestCreativeEnvelope(t *testing.T) {
	data, err := MarshalCreative(FreeformCreative{Layout: "left", Title: "Hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"freeform","freeform":{"layout":"left","background":"","foreground":"","font_size":"","title":"Hi"}}`, string(data))

	_, err = UnmarshalCreative([]byte(`{"kind":"video"}`))
	require.ErrorIs(t, err, ErrUnknownCreativeKind)

	_, err = UnmarshalCreative([]byte(`{"kind":"template"}`))
	require.Error(t, err)

	p, err := UnmarshalCreative([]byte(`{"kind":"template","template":{"template_id":"launch-new","headline":"Hi"},"freeform":{"title":"ignored"}}`))
	require.NoError(t, err)
	assert.Equal(t, TemplateCreative{TemplateID: "launch-new", Headline: "Hi"}, p)
}

func TestBookingSlots(t *testing.T) {
	b := Booking{PeriodID: "base-2026-11", NeighborhoodIDs: []string{"centro", "moema"}}
	assert.Equal(t, []OccupancyRecord{
		{NeighborhoodID: "centro", PeriodID: "base-2026-11"},
		{NeighborhoodID: "moema", PeriodID: "base-2026-11"},
	}, b.Slots())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentPix.Valid())
	assert.True(t, PaymentCard.Valid())
	assert.False(t, PaymentMethod("boleto").Valid())
}

func TestParsePeriodID(t *testing.T) {
	cat := NewCatalog(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	for _, want := range cat.Periods {
		got, ok := ParsePeriodID(want.ID)
		require.True(t, ok, want.ID)
		assert.Equal(t, want, got)
	}

	past, ok := ParsePeriodID("package-2025-12")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), past.EndDate)

	for _, id := range []string{"", "base", "weekly-2026-11", "base-2026-13", "base-26-11"} {
		_, ok = ParsePeriodID(id)
		assert.False(t, ok, id)
	}
}

func TestPeriodOverlaps(t *testing.T) {
	nov, _ := ParsePeriodID("base-2026-11")
	dec, _ := ParsePeriodID("base-2026-12")
	pkgNov, _ := ParsePeriodID("package-2026-11")
	pkgFeb, _ := ParsePeriodID("package-2027-02")

	assert.True(t, nov.Overlaps(pkgNov))
	assert.True(t, pkgNov.Overlaps(dec))
	assert.False(t, nov.Overlaps(dec), "adjacent months only touch")
	assert.False(t, pkgNov.Overlaps(pkgFeb))
}

func TestCatalogAsOf(t *testing.T) {
	cat := NewCatalog(time.Date(2026, 10, 31, 23, 59, 0, 0, time.UTC))
	next := cat.AsOf(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "base-2026-11", cat.Periods[0].ID)
	assert.Equal(t, "base-2026-12", next.Periods[0].ID)
	assert.Equal(t, cat.Neighborhoods, next.Neighborhoods)
	_, ok := next.Period("base-2026-11")
	assert.False(t, ok)
}
