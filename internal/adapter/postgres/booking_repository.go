package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/port"
)

const (
	codeExclusionViolation = "23P01"
	slotOverlapConstraint  = "booking_slots_no_overlap"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BookingRepository implements port.BookingRepository on PostgreSQL.
type BookingRepository struct {
	pool DB
}

// NewBookingRepository returns a new repository instance.
func NewBookingRepository(pool DB) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// FetchOccupancy returns every sold slot whose window overlaps one of the
// given periods, including slots sold under other period ids.
func (r *BookingRepository) FetchOccupancy(ctx context.Context, periodIDs []string) ([]domain.OccupancyRecord, error) {
	if len(periodIDs) == 0 {
		return nil, nil
	}
	var from, to time.Time
	for i, id := range periodIDs {
		p, ok := domain.ParsePeriodID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", port.ErrUnknownPeriod, id)
		}
		if i == 0 || p.StartDate.Before(from) {
			from = p.StartDate
		}
		if i == 0 || p.EndDate.After(to) {
			to = p.EndDate
		}
	}

	rows, err := r.pool.Query(ctx, `
        SELECT s.neighborhood_id, s.period_id
        FROM booking_slots s
        JOIN bookings b ON b.id = s.booking_id
        WHERE b.active AND s.starts_at < $2 AND s.ends_at > $1`, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OccupancyRecord, error) {
		var rec domain.OccupancyRecord
		err := row.Scan(&rec.NeighborhoodID, &rec.PeriodID)
		return rec, err
	})
}

// CreateBookingWithAudit inserts the booking, its slots and the audit entry
// in one serializable transaction. A booking whose idempotency key already
// exists is loaded into b and reported with created == false. A slot whose
// window overlaps one sold in the meantime fails the whole transaction
// with port.ErrSlotTaken.
func (r *BookingRepository) CreateBookingWithAudit(ctx context.Context, b *domain.Booking, entry *domain.AuditLogEntry) (created bool, err error) {
	creative, err := domain.MarshalCreative(b.Creative)
	if err != nil {
		return false, err
	}
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return false, err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        INSERT INTO bookings (id, merchant_id, target, placement_id, period_id, creative, active, expires_at, idempotency_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (idempotency_key) DO NOTHING
        RETURNING created_at`,
		b.ID, b.MerchantID, b.Target, b.PlacementID, b.PeriodID, creative, b.Active, b.ExpiresAt, b.IdempotencyKey,
	).Scan(&b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// replayed publish: hand back the booking that already exists
		err = loadByIdempotencyKey(ctx, tx, b)
		return false, err
	}
	if err != nil {
		return false, err
	}

	for _, slot := range b.Slots() {
		p, ok := domain.ParsePeriodID(slot.PeriodID)
		if !ok {
			err = fmt.Errorf("%w: %q", port.ErrUnknownPeriod, slot.PeriodID)
			return false, err
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO booking_slots (booking_id, neighborhood_id, period_id, starts_at, ends_at)
            VALUES ($1,$2,$3,$4,$5)`,
			b.ID, slot.NeighborhoodID, slot.PeriodID, p.StartDate, p.EndDate)
		if err != nil {
			err = slotError(err, slot)
			return false, err
		}
	}

	entry.BookingID = b.ID
	err = tx.QueryRow(ctx, `
        INSERT INTO audit_logs (actor, action, booking_id, details, created_at)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id`,
		entry.Actor, entry.Action, entry.BookingID, details, b.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return false, err
	}
	entry.CreatedAt = b.CreatedAt
	return true, nil
}

// loadByIdempotencyKey overwrites b with the stored booking carrying
// b.IdempotencyKey, slots included.
func loadByIdempotencyKey(ctx context.Context, tx pgx.Tx, b *domain.Booking) error {
	var (
		stored    domain.Booking
		placement string
		creative  []byte
	)
	err := tx.QueryRow(ctx, `
        SELECT id, merchant_id, target, placement_id, period_id, creative, active, expires_at, idempotency_key, created_at
        FROM bookings
        WHERE idempotency_key = $1`, b.IdempotencyKey,
	).Scan(&stored.ID, &stored.MerchantID, &stored.Target, &placement, &stored.PeriodID, &creative,
		&stored.Active, &stored.ExpiresAt, &stored.IdempotencyKey, &stored.CreatedAt)
	if err != nil {
		return fmt.Errorf("load booking: %w", err)
	}
	stored.PlacementID = domain.PlacementID(placement)
	if stored.Creative, err = domain.UnmarshalCreative(creative); err != nil {
		return fmt.Errorf("decode creative: %w", err)
	}

	rows, err := tx.Query(ctx, `
        SELECT neighborhood_id FROM booking_slots
        WHERE booking_id = $1
        ORDER BY neighborhood_id`, stored.ID)
	if err != nil {
		return fmt.Errorf("load slots: %w", err)
	}
	if stored.NeighborhoodIDs, err = pgx.CollectRows(rows, pgx.RowTo[string]); err != nil {
		return fmt.Errorf("load slots: %w", err)
	}
	*b = stored
	return nil
}

// CountPriorBookings counts the bookings a merchant already owns.
func (r *BookingRepository) CountPriorBookings(ctx context.Context, merchantID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM bookings WHERE merchant_id = $1`, merchantID).Scan(&n)
	return n, err
}

// slotError maps a violation of the slot overlap constraint to
// port.ErrSlotTaken.
func slotError(err error, slot domain.OccupancyRecord) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeExclusionViolation && pgErr.ConstraintName == slotOverlapConstraint {
		return fmt.Errorf("%w: %s in %s", port.ErrSlotTaken, slot.NeighborhoodID, slot.PeriodID)
	}
	return err
}

var _ port.BookingRepository = (*BookingRepository)(nil)
