package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/inventory"
	"bairro-ads/internal/core/port"
	"bairro-ads/internal/core/workflow"
)

// Options tunes BookingUseCase. Zero values fall back to defaults.
type Options struct {
	// PaymentTimeout bounds the wait for the payment confirmation signal.
	PaymentTimeout time.Duration
	// SessionTTL is how long an idle purchase session is kept in memory.
	SessionTTL time.Duration
}

const (
	defaultPaymentTimeout = 2 * time.Minute
	defaultSessionTTL     = 24 * time.Hour
)

// BookingUseCase drives the merchant purchase flows. It keeps one workflow
// session per flow in memory and talks to persistence, payments and
// notifications through ports.
type BookingUseCase struct {
	repo     port.BookingRepository
	notifier port.Notifier
	payments port.PaymentGateway
	catalog  domain.Catalog
	logger   *slog.Logger

	paymentTimeout time.Duration
	sessionTTL     time.Duration
	now            func() time.Time

	mu       sync.Mutex
	sessions map[string]*workflow.Session
}

// NewBookingUseCase wires the use case to its outbound ports. The periods
// on sale are derived from the clock on every call, so only the static
// parts of catalog matter.
func NewBookingUseCase(
	repo port.BookingRepository,
	notifier port.Notifier,
	payments port.PaymentGateway,
	catalog domain.Catalog,
	logger *slog.Logger,
	opts Options,
) *BookingUseCase {
	if opts.PaymentTimeout <= 0 {
		opts.PaymentTimeout = defaultPaymentTimeout
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	return &BookingUseCase{
		repo:           repo,
		notifier:       notifier,
		payments:       payments,
		catalog:        catalog,
		logger:         logger,
		paymentTimeout: opts.PaymentTimeout,
		sessionTTL:     opts.SessionTTL,
		now:            time.Now,
		sessions:       make(map[string]*workflow.Session),
	}
}

// Catalog returns the catalog with the periods on sale right now.
func (u *BookingUseCase) Catalog() domain.Catalog {
	return u.catalog.AsOf(u.now())
}

// Availability fetches occupancy for the given periods and evaluates every
// catalog neighborhood against it.
func (u *BookingUseCase) Availability(ctx context.Context, periodIDs []string) ([]port.NeighborhoodAvailability, error) {
	catalog := u.Catalog()
	periods := make([]domain.Period, 0, len(periodIDs))
	for _, id := range periodIDs {
		p, ok := catalog.Period(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", port.ErrUnknownPeriod, id)
		}
		periods = append(periods, p)
	}

	occ := inventory.NewOccupancy(nil)
	if len(periodIDs) > 0 {
		records, err := u.repo.FetchOccupancy(ctx, periodIDs)
		if err != nil {
			return nil, fmt.Errorf("fetch occupancy: %w", err)
		}
		occ = inventory.NewOccupancy(records)
	}

	out := make([]port.NeighborhoodAvailability, 0, len(catalog.Neighborhoods))
	for _, n := range catalog.Neighborhoods {
		out = append(out, port.NeighborhoodAvailability{
			Neighborhood: n,
			Availability: inventory.IsNeighborhoodAvailable(occ, n.ID, periods),
		})
	}
	return out, nil
}

// StartSession opens a purchase flow for merchant.
func (u *BookingUseCase) StartSession(_ context.Context, merchant domain.Merchant) (*workflow.View, error) {
	if merchant.ID == "" {
		return nil, fmt.Errorf("%w: merchant id is required", port.ErrInvalidInput)
	}
	now := u.now()
	s := workflow.NewSession(uuid.NewString(), merchant, u.catalog.AsOf(now), uuid.NewString(), now)

	u.mu.Lock()
	u.evictExpiredLocked(now)
	u.sessions[s.ID()] = s
	u.mu.Unlock()

	u.logger.Debug("session started", slog.String("session_id", s.ID()), slog.String("merchant_id", merchant.ID))
	return view(s), nil
}

func (u *BookingUseCase) GetSession(_ context.Context, id string) (*workflow.View, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	return view(s), nil
}

// ChoosePlacement replaces the placement and refreshes occupancy.
func (u *BookingUseCase) ChoosePlacement(ctx context.Context, id string, placement domain.PlacementID) (*workflow.View, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	p, ok := u.catalog.Placement(placement)
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownPlacement, placement)
	}
	if err = s.SetPlacement(p); err != nil {
		return nil, err
	}
	return u.refreshed(ctx, s)
}

// ChoosePeriod replaces the period and refreshes occupancy so that
// previously chosen neighborhoods are re-checked against it.
func (u *BookingUseCase) ChoosePeriod(ctx context.Context, id string, periodID string) (*workflow.View, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	p, ok := u.Catalog().Period(periodID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownPeriod, periodID)
	}
	if err = s.SetPeriod(p); err != nil {
		return nil, err
	}
	return u.refreshed(ctx, s)
}

// ChooseNeighborhoods replaces the neighborhood selection.
func (u *BookingUseCase) ChooseNeighborhoods(ctx context.Context, id string, neighborhoodIDs []string) (*workflow.View, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	for _, n := range neighborhoodIDs {
		if _, ok := u.catalog.Neighborhood(n); !ok {
			return nil, fmt.Errorf("%w: %q", port.ErrUnknownNeighborhood, n)
		}
	}
	if err = s.SetNeighborhoods(neighborhoodIDs); err != nil {
		return nil, err
	}
	return u.refreshed(ctx, s)
}

// SelectAllAvailable reloads occupancy, then selects every free
// neighborhood for the chosen period.
func (u *BookingUseCase) SelectAllAvailable(ctx context.Context, id string) (*workflow.View, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	if err = u.refreshOccupancy(ctx, s); err != nil {
		return nil, err
	}
	if _, err = s.SelectAllAvailable(); err != nil {
		return nil, err
	}
	return view(s), nil
}

func (u *BookingUseCase) SetCreativeAddon(_ context.Context, id string, selected bool) (*workflow.View, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	if err = s.SetAddon(selected); err != nil {
		return nil, err
	}
	return view(s), nil
}

func (u *BookingUseCase) SetCreative(_ context.Context, id string, creative domain.CreativePayload) (*workflow.View, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	if creative == nil {
		return nil, fmt.Errorf("%w: creative is required", port.ErrInvalidInput)
	}
	if err = s.SetCreative(creative); err != nil {
		return nil, err
	}
	return view(s), nil
}

func (u *BookingUseCase) ValidateCreative(_ context.Context, id string) (*workflow.View, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	if _, err = s.Validate(); err != nil {
		return nil, err
	}
	return view(s), nil
}

// Publish runs the publish unit of work for a session: payment gate,
// booking plus audit entry, then the first-booking notification. A second
// call while one is in flight fails with workflow.ErrPublishInProgress.
//
// When a paid commit fails without a definite outcome the session keeps the
// paid draft and its idempotency key; the next call retries that commit
// without charging again.
func (u *BookingUseCase) Publish(ctx context.Context, id string, method domain.PaymentMethod) (*domain.Booking, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: payment method %q", port.ErrInvalidInput, method)
	}
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}
	draft, err := s.BeginPublish()
	if err != nil {
		return nil, err
	}
	log := u.logger.With(slog.String("session_id", id), slog.String("merchant_id", draft.Merchant.ID))

	if draft.Paid {
		log.Info("retrying paid commit", slog.String("idempotency_key", draft.IdempotencyKey))
	} else {
		if _, ok := u.Catalog().Period(draft.Period.ID); !ok {
			err = fmt.Errorf("%w: %q is no longer on sale", port.ErrUnknownPeriod, draft.Period.ID)
			_ = s.FailPublish(err)
			return nil, err
		}
		if err = u.confirmPayment(ctx, method, draft.Quote.Current); err != nil {
			_ = s.FailPublish(err)
			log.Warn("payment not confirmed", slog.Any("error", err))
			return nil, err
		}
	}

	if err = s.MarkPublishing(); err != nil {
		_ = s.FailPublish(err)
		return nil, err
	}

	// Once payment is confirmed the commit runs to completion even if the
	// caller goes away.
	booking, err := u.commit(context.WithoutCancel(ctx), draft, log)
	if err != nil {
		if errors.Is(err, port.ErrSlotTaken) {
			// rolled back, nothing stored under the key
			_ = s.FailPublish(err)
		} else {
			_ = s.SuspendPublish(err)
		}
		log.Error("publish failed", slog.Any("error", err))
		return nil, err
	}
	if err = s.CompletePublish(*booking); err != nil {
		return nil, err
	}
	log.Info("booking published", slog.String("booking_id", booking.ID), slog.String("target", booking.Target))
	return booking, nil
}

func (u *BookingUseCase) confirmPayment(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) error {
	ctx, cancel := context.WithTimeout(ctx, u.paymentTimeout)
	defer cancel()
	ok, err := u.payments.ConfirmPayment(ctx, method, amount)
	if err != nil {
		return fmt.Errorf("%w: %w", port.ErrPaymentNotConfirmed, err)
	}
	if !ok {
		return port.ErrPaymentNotConfirmed
	}
	return nil
}

// commit persists the booking and its audit entry atomically. Counting
// prior bookings and notifying are side effects whose failures are logged
// and otherwise ignored.
func (u *BookingUseCase) commit(ctx context.Context, d workflow.Draft, log *slog.Logger) (*domain.Booking, error) {
	prior, err := u.repo.CountPriorBookings(ctx, d.Merchant.ID)
	first := err == nil && prior == 0
	if err != nil {
		log.Warn("count prior bookings failed", slog.Any("error", err))
	}

	expires := d.Period.EndDate
	b := &domain.Booking{
		ID:              uuid.NewString(),
		MerchantID:      d.Merchant.ID,
		Target:          domain.Target(d.Placement.ID, d.Merchant.Category),
		PlacementID:     d.Placement.ID,
		PeriodID:        d.Period.ID,
		NeighborhoodIDs: d.Neighborhoods,
		Creative:        d.Creative,
		Active:          true,
		ExpiresAt:       &expires,
		IdempotencyKey:  d.IdempotencyKey,
	}
	entry := &domain.AuditLogEntry{
		Actor:  d.Merchant.ID,
		Action: domain.AuditActionCreated,
		Details: domain.AuditDetails{
			MerchantName: d.Merchant.Name,
			FirstBooking: first,
			Target:       b.Target,
			Creative:     domain.Envelope(d.Creative),
		},
	}

	created, err := u.repo.CreateBookingWithAudit(ctx, b, entry)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if !created {
		log.Info("publish replayed, returning existing booking", slog.String("booking_id", b.ID))
		return b, nil
	}

	if first {
		notice := domain.FirstBookingNotice{
			BookingID:    b.ID,
			MerchantID:   d.Merchant.ID,
			MerchantName: d.Merchant.Name,
			Target:       b.Target,
			PublishedAt:  b.CreatedAt,
		}
		if err = u.notifier.SendFirstBookingNotification(ctx, notice); err != nil {
			log.Warn("first booking notification failed", slog.String("booking_id", b.ID), slog.Any("error", err))
		}
	}
	return b, nil
}

// session looks up id and counts the lookup as activity.
func (u *BookingUseCase) session(id string) (*workflow.Session, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrSessionNotFound, id)
	}
	s.Touch(u.now())
	return s, nil
}

// evictExpiredLocked drops sessions idle for longer than the TTL. Sessions
// publishing or holding a paid draft are kept.
func (u *BookingUseCase) evictExpiredLocked(now time.Time) {
	for id, s := range u.sessions {
		if now.Sub(s.LastActive()) > u.sessionTTL && s.Idle() {
			delete(u.sessions, id)
		}
	}
}

func (u *BookingUseCase) refreshed(ctx context.Context, s *workflow.Session) (*workflow.View, error) {
	if err := u.refreshOccupancy(ctx, s); err != nil {
		return nil, err
	}
	return view(s), nil
}

// refreshOccupancy loads the sold slots for the session's period. The
// snapshot only informs the merchant; the repository enforces uniqueness.
func (u *BookingUseCase) refreshOccupancy(ctx context.Context, s *workflow.Session) error {
	periods := s.Periods()
	if len(periods) == 0 {
		s.SetOccupancy(nil)
		return nil
	}
	ids := make([]string, 0, len(periods))
	for _, p := range periods {
		ids = append(ids, p.ID)
	}
	records, err := u.repo.FetchOccupancy(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetch occupancy: %w", err)
	}
	s.SetOccupancy(records)
	return nil
}

func view(s *workflow.Session) *workflow.View {
	v := s.View()
	return &v
}

var _ port.BookingUseCase = (*BookingUseCase)(nil)
