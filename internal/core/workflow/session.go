package workflow

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"bairro-ads/internal/core/creative"
	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/inventory"
	"bairro-ads/internal/core/pricing"
)

var (
	ErrPublishInProgress = errors.New("publish already in progress")
	ErrSessionClosed     = errors.New("session already published")
	ErrNotReady          = errors.New("selection incomplete")
	ErrOccupancyConflict = errors.New("neighborhood already sold for the selected period")
	ErrCreativeInvalid   = errors.New("creative failed validation")
	ErrCommitPending     = errors.New("payment confirmed, booking commit pending")
)

// ValidationError carries every validation message of a rejected creative.
type ValidationError struct {
	Messages domain.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCreativeInvalid, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrCreativeInvalid }

// Gate is the first requirement the session has not met yet. Label is the
// call-to-action text for that requirement.
type Gate struct {
	Step  Step   `json:"step"`
	Label string `json:"label"`
	Ready bool   `json:"ready"`
}

const (
	LabelChoosePlacement     = "Choose a placement"
	LabelChoosePeriod        = "Choose a period"
	LabelChooseNeighborhoods = "Choose neighborhoods"
	LabelValidateCreative    = "Validate your creative"
	LabelResolveConflicts    = "Resolve neighborhood conflicts"
	LabelPublish             = "Pay and publish"
)

// Session is one merchant's purchase flow. It is safe for concurrent use;
// no method performs I/O.
type Session struct {
	mu sync.Mutex

	id             string
	merchant       domain.Merchant
	catalog        domain.Catalog
	idempotencyKey string
	createdAt      time.Time
	lastActive     time.Time

	step          Step
	placement     *domain.PlacementOption
	period        *domain.Period
	neighborhoods []string
	addon         bool
	creative      domain.CreativePayload
	validation    domain.ValidationResult
	validated     bool
	occupancy     inventory.Occupancy

	publishing bool
	inflight   Draft
	paid       *Draft
	booking    *domain.Booking
	lastErr    string
}

// NewSession starts a flow at StepSelectingPlacement. idempotencyKey is
// sent with the booking so a retried publish cannot create a duplicate.
func NewSession(id string, merchant domain.Merchant, catalog domain.Catalog, idempotencyKey string, now time.Time) *Session {
	return &Session{
		id:             id,
		merchant:       merchant,
		catalog:        catalog,
		idempotencyKey: idempotencyKey,
		createdAt:      now,
		lastActive:     now,
		step:           StepSelectingPlacement,
		occupancy:      inventory.NewOccupancy(nil),
	}
}

func (s *Session) ID() string { return s.id }

// Touch records activity at t.
func (s *Session) Touch(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.After(s.lastActive) {
		s.lastActive = t
	}
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Idle reports whether the session may be dropped: nothing is in flight and
// no paid draft waits for its commit.
func (s *Session) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.publishing && s.paid == nil
}

// SetPlacement replaces the chosen placement.
func (s *Session) SetPlacement(p domain.PlacementOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	s.placement = &p
	return s.syncLocked()
}

// SetPeriod replaces the chosen period; only one period is ever selected.
func (s *Session) SetPeriod(p domain.Period) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	s.period = &p
	return s.syncLocked()
}

// SetNeighborhoods replaces the neighborhood selection. Duplicates are
// dropped and order is kept. Sold neighborhoods are accepted and reported
// through Conflicts.
func (s *Session) SetNeighborhoods(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	s.neighborhoods = out
	return s.syncLocked()
}

// SelectAllAvailable replaces the selection with every neighborhood free
// for the selected period under the current occupancy snapshot.
func (s *Session) SelectAllAvailable() ([]domain.Neighborhood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return nil, err
	}
	avail := inventory.SelectAllAvailable(s.catalog.Neighborhoods, s.occupancy, s.periodsLocked())
	s.neighborhoods = make([]string, 0, len(avail))
	for _, n := range avail {
		s.neighborhoods = append(s.neighborhoods, n.ID)
	}
	return avail, s.syncLocked()
}

// SetAddon toggles the professionally produced creative addon.
func (s *Session) SetAddon(selected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	s.addon = selected
	return nil
}

// SetCreative replaces the creative. Any previous payload, including one of
// the other shape, is discarded and the creative must be validated again.
func (s *Session) SetCreative(c domain.CreativePayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	s.creative = c
	s.validation = nil
	s.validated = false
	return s.syncLocked()
}

// Validate runs the creative rules against the current payload and records
// the outcome.
func (s *Session) Validate() (domain.ValidationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return nil, err
	}
	res := creative.Validate(s.creative, s.catalog)
	s.validation = res
	s.validated = true
	return res, s.syncLocked()
}

// SetOccupancy swaps the occupancy snapshot used for availability and
// conflict checks.
func (s *Session) SetOccupancy(records []domain.OccupancyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.occupancy = inventory.NewOccupancy(records)
}

// Periods returns the selected periods (zero or one).
func (s *Session) Periods() []domain.Period {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.periodsLocked()
}

func (s *Session) periodsLocked() []domain.Period {
	if s.period == nil {
		return nil
	}
	return []domain.Period{*s.period}
}

// FirstIncompleteStep reports the gate the call-to-action should point at.
func (s *Session) FirstIncompleteStep() Gate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gateLocked()
}

// gateLocked checks placement, period, neighborhoods and creative in that
// order. A complete selection with sold neighborhoods is not ready.
func (s *Session) gateLocked() Gate {
	switch {
	case s.placement == nil:
		return Gate{Step: StepSelectingPlacement, Label: LabelChoosePlacement}
	case s.period == nil:
		return Gate{Step: StepSelectingPeriod, Label: LabelChoosePeriod}
	case len(s.neighborhoods) == 0:
		return Gate{Step: StepSelectingNeighborhoods, Label: LabelChooseNeighborhoods}
	case !s.validated || !s.validation.OK():
		return Gate{Step: StepAuthoringCreative, Label: LabelValidateCreative}
	case len(s.conflictsLocked()) > 0:
		return Gate{Step: StepReviewAndPay, Label: LabelResolveConflicts}
	}
	return Gate{Step: StepReviewAndPay, Label: LabelPublish, Ready: true}
}

// syncLocked walks the step toward the gate, one Transition at a time.
func (s *Session) syncLocked() error {
	target := s.gateLocked().Step
	for s.step > target {
		ev, ok := reopening(s.step, target)
		if !ok {
			return fmt.Errorf("%w: cannot reopen %s from %s", ErrIllegalTransition, target, s.step)
		}
		next, err := Transition(s.step, ev)
		if err != nil {
			return err
		}
		s.step = next
	}
	for s.step < target {
		next, err := Transition(s.step, completion[s.step])
		if err != nil {
			return err
		}
		s.step = next
	}
	return nil
}

func (s *Session) editableLocked() error {
	switch {
	case s.publishing:
		return ErrPublishInProgress
	case s.step == StepPublished:
		return ErrSessionClosed
	case s.paid != nil:
		return ErrCommitPending
	}
	return nil
}

// Conflicts lists selected neighborhoods sold for the selected period.
func (s *Session) Conflicts() []inventory.NeighborhoodConflict {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conflictsLocked()
}

func (s *Session) conflictsLocked() []inventory.NeighborhoodConflict {
	return inventory.Conflicts(s.occupancy, s.neighborhoods, s.periodsLocked())
}

// Quote prices the current selection.
func (s *Session) Quote() domain.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quoteLocked()
}

func (s *Session) quoteLocked() domain.Quote {
	return pricing.ComputeQuote(pricing.Selection{
		Placement:         s.placement,
		Period:            s.period,
		NeighborhoodCount: len(s.neighborhoods),
		Addon:             s.addon,
	})
}

// Draft is the frozen selection handed to the publish unit of work.
type Draft struct {
	SessionID      string
	Merchant       domain.Merchant
	Placement      domain.PlacementOption
	Period         domain.Period
	Neighborhoods  []string
	Creative       domain.CreativePayload
	Quote          domain.Quote
	IdempotencyKey string
	// Paid is set on a draft whose payment was already confirmed by an
	// earlier attempt.
	Paid bool
}

// BeginPublish claims the session for a single publish attempt. It fails
// while another attempt is in flight, when the selection is incomplete or
// conflicting, and when the creative no longer validates. After a commit
// with unknown outcome it hands back the paid draft unchanged. Every
// successful call must be paired with CompletePublish, FailPublish or
// SuspendPublish.
func (s *Session) BeginPublish() (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paid != nil && !s.publishing {
		s.publishing = true
		s.lastErr = ""
		s.inflight = *s.paid
		return s.inflight, nil
	}
	if err := s.editableLocked(); err != nil {
		return Draft{}, err
	}

	res := creative.Validate(s.creative, s.catalog)
	s.validation = res
	s.validated = true
	if err := s.syncLocked(); err != nil {
		return Draft{}, err
	}
	if !res.OK() {
		return Draft{}, &ValidationError{Messages: res}
	}

	gate := s.gateLocked()
	if !gate.Ready {
		if gate.Label == LabelResolveConflicts {
			return Draft{}, ErrOccupancyConflict
		}
		return Draft{}, fmt.Errorf("%w: %s", ErrNotReady, gate.Label)
	}

	s.publishing = true
	s.lastErr = ""
	s.inflight = Draft{
		SessionID:      s.id,
		Merchant:       s.merchant,
		Placement:      *s.placement,
		Period:         *s.period,
		Neighborhoods:  slices.Clone(s.neighborhoods),
		Creative:       s.creative,
		Quote:          s.quoteLocked(),
		IdempotencyKey: s.idempotencyKey,
	}
	return s.inflight, nil
}

// MarkPublishing enters StepPublishing once payment is confirmed.
func (s *Session) MarkPublishing() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := Transition(s.step, EventPublishStarted)
	if err != nil {
		return err
	}
	s.step = next
	s.inflight.Paid = true
	return nil
}

// CompletePublish records the booking and closes the session.
func (s *Session) CompletePublish(b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishing = false
	s.paid = nil
	s.inflight = Draft{}
	next, err := Transition(s.step, EventPublishSucceeded)
	if err != nil {
		return err
	}
	s.step = next
	s.booking = &b
	return nil
}

// FailPublish releases the publish claim after an attempt that certainly
// stored nothing. The selection becomes editable again. A failure while
// publishing passes through StepFailed and hands control back to
// StepReviewAndPay.
func (s *Session) FailPublish(cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paid = nil
	return s.releaseLocked(cause)
}

// SuspendPublish releases the publish claim after a paid commit whose
// outcome is unknown. The paid draft is kept and the selection stays
// frozen; only a publish retry can settle it.
func (s *Session) SuspendPublish(cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight.Paid {
		d := s.inflight
		s.paid = &d
	}
	return s.releaseLocked(cause)
}

func (s *Session) releaseLocked(cause error) error {
	s.publishing = false
	s.inflight = Draft{}
	if cause != nil {
		s.lastErr = cause.Error()
	}
	if s.step != StepPublishing {
		return nil
	}
	for _, ev := range []Event{EventPublishFailed, EventRetry} {
		next, err := Transition(s.step, ev)
		if err != nil {
			return err
		}
		s.step = next
	}
	return nil
}

// View is a point-in-time copy of a session.
type View struct {
	ID            string                           `json:"id"`
	Merchant      domain.Merchant                  `json:"merchant"`
	Step          Step                             `json:"step"`
	Gate          Gate                             `json:"gate"`
	Placement     *domain.PlacementOption          `json:"placement,omitempty"`
	Period        *domain.Period                   `json:"period,omitempty"`
	Neighborhoods []string                         `json:"neighborhoods"`
	Addon         bool                             `json:"addon"`
	Creative      *domain.CreativeEnvelope         `json:"creative,omitempty"`
	Validated     bool                             `json:"validated"`
	Validation    domain.ValidationResult          `json:"validation"`
	Conflicts     []inventory.NeighborhoodConflict `json:"conflicts"`
	Quote         domain.Quote                     `json:"quote"`
	Publishing    bool                             `json:"publishing"`
	CommitPending bool                             `json:"commit_pending"`
	BookingID     string                           `json:"booking_id,omitempty"`
	LastError     string                           `json:"last_error,omitempty"`
	CreatedAt     time.Time                        `json:"created_at"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		ID:            s.id,
		Merchant:      s.merchant,
		Step:          s.step,
		Gate:          s.gateLocked(),
		Placement:     s.placement,
		Period:        s.period,
		Neighborhoods: slices.Clone(s.neighborhoods),
		Addon:         s.addon,
		Validated:     s.validated,
		Validation:    slices.Clone(s.validation),
		Conflicts:     s.conflictsLocked(),
		Quote:         s.quoteLocked(),
		Publishing:    s.publishing,
		CommitPending: s.paid != nil,
		LastError:     s.lastErr,
		CreatedAt:     s.createdAt,
	}
	if s.creative != nil {
		env := domain.Envelope(s.creative)
		v.Creative = &env
	}
	if s.booking != nil {
		v.BookingID = s.booking.ID
	}
	if v.Neighborhoods == nil {
		v.Neighborhoods = []string{}
	}
	return v
}
