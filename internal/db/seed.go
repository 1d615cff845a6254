package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bairro-ads/internal/core/domain"
)

type seedBooking struct {
	merchant      domain.Merchant
	placement     domain.PlacementID
	period        int
	neighborhoods []string
	headline      string
}

var seedBookings = []seedBooking{
	{
		merchant:      domain.Merchant{ID: "demo-pizzaria", Name: "Pizzaria do Bairro", Category: "Restaurants"},
		placement:     domain.PlacementHome,
		period:        0,
		neighborhoods: []string{"centro", "moema"},
		headline:      "Rodízio às terças",
	},
	{
		merchant:      domain.Merchant{ID: "demo-petshop", Name: "Pet Feliz", Category: "Pets"},
		placement:     domain.PlacementCategory,
		period:        1,
		neighborhoods: []string{"pinheiros"},
		headline:      "Banho e tosa",
	},
}

// Seed inserts demo bookings so that a few slots of the catalog periods are
// already sold. Re-running it is a no-op.
func Seed(ctx context.Context, db *pgxpool.Pool, catalog domain.Catalog) error {
	for i, sb := range seedBookings {
		if sb.period >= len(catalog.Periods) {
			continue
		}
		period := catalog.Periods[sb.period]
		key := fmt.Sprintf("seed-%d-%s", i, period.ID)
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))

		creative, err := domain.MarshalCreative(domain.TemplateCreative{TemplateID: "promo-flash", Headline: sb.headline})
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO bookings
(id, merchant_id, target, placement_id, period_id, creative, active, expires_at, idempotency_key, created_at)
VALUES ($1,$2,$3,$4,$5,$6,TRUE,$7,$8,now()) ON CONFLICT DO NOTHING`,
			id, sb.merchant.ID, domain.Target(sb.placement, sb.merchant.Category), sb.placement, period.ID, creative, period.EndDate, key)
		if err != nil {
			return err
		}

		for _, n := range sb.neighborhoods {
			_, err = db.Exec(ctx, `INSERT INTO booking_slots (booking_id, neighborhood_id, period_id, starts_at, ends_at)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`, id, n, period.ID, period.StartDate, period.EndDate)
			if err != nil {
				return err
			}
		}

		details, _ := json.Marshal(domain.AuditDetails{
			MerchantName: sb.merchant.Name,
			FirstBooking: true,
			Target:       domain.Target(sb.placement, sb.merchant.Category),
		})
		_, err = db.Exec(ctx, `INSERT INTO audit_logs (actor, action, booking_id, details, created_at)
SELECT $1, $2, $3, $4, now()
WHERE NOT EXISTS (SELECT 1 FROM audit_logs WHERE booking_id = $3)`,
			"seed", domain.AuditActionCreated, id, details)
		if err != nil {
			return err
		}
	}
	return nil
}
