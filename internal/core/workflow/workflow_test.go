package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bairro-ads/internal/core/domain"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Session, domain.Catalog) {
	t.Helper()
	cat := domain.NewCatalog(testNow)
	merchant := domain.Merchant{ID: "m-1", Name: "Padaria Central", Category: "Bakeries"}
	return NewSession("s-1", merchant, cat, "idem-1", testNow), cat
}

func goodCreative() domain.FreeformCreative {
	return domain.FreeformCreative{
		Layout:     "left",
		Background: "#000000",
		Foreground: "#FFFFFF",
		FontSize:   "large",
		Title:      "Fresh bread",
	}
}

func readySession(t *testing.T) (*Session, domain.Catalog) {
	t.Helper()
	s, cat := newTestSession(t)
	home, _ := cat.Placement(domain.PlacementHome)
	require.NoError(t, s.SetPlacement(home))
	require.NoError(t, s.SetPeriod(cat.Periods[0]))
	require.NoError(t, s.SetNeighborhoods([]string{"centro", "moema"}))
	require.NoError(t, s.SetCreative(goodCreative()))
	res, err := s.Validate()
	require.NoError(t, err)
	require.Empty(t, res)
	return s, cat
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from Step
		ev   Event
		want Step
		err  bool
	}{
		{StepSelectingPlacement, EventPlacementChosen, StepSelectingPeriod, false},
		{StepSelectingPeriod, EventPeriodChosen, StepSelectingNeighborhoods, false},
		{StepSelectingNeighborhoods, EventNeighborhoodsChosen, StepAuthoringCreative, false},
		{StepAuthoringCreative, EventCreativeValidated, StepReviewAndPay, false},
		{StepReviewAndPay, EventCreativeChanged, StepAuthoringCreative, false},
		{StepReviewAndPay, EventNeighborhoodsCleared, StepSelectingNeighborhoods, false},
		{StepReviewAndPay, EventPublishStarted, StepPublishing, false},
		{StepPublishing, EventPublishSucceeded, StepPublished, false},
		{StepPublishing, EventPublishFailed, StepFailed, false},
		{StepFailed, EventRetry, StepReviewAndPay, false},

		{StepSelectingPlacement, EventPublishStarted, StepSelectingPlacement, true},
		{StepAuthoringCreative, EventPublishStarted, StepAuthoringCreative, true},
		{StepPublished, EventRetry, StepPublished, true},
		{StepPublishing, EventPublishStarted, StepPublishing, true},
		{StepFailed, EventPublishSucceeded, StepFailed, true},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.ev.String(), func(t *testing.T) {
			got, err := Transition(tt.from, tt.ev)
			if tt.err {
				require.ErrorIs(t, err, ErrIllegalTransition)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateOrder(t *testing.T) {
	s, cat := newTestSession(t)
	assert.Equal(t, Gate{Step: StepSelectingPlacement, Label: LabelChoosePlacement}, s.FirstIncompleteStep())

	// a period chosen first does not skip the placement gate
	require.NoError(t, s.SetPeriod(cat.Periods[1]))
	assert.Equal(t, StepSelectingPlacement, s.FirstIncompleteStep().Step)
	assert.Equal(t, StepSelectingPlacement, s.View().Step)

	home, _ := cat.Placement(domain.PlacementHome)
	require.NoError(t, s.SetPlacement(home))
	assert.Equal(t, Gate{Step: StepSelectingNeighborhoods, Label: LabelChooseNeighborhoods}, s.FirstIncompleteStep())
	assert.Equal(t, StepSelectingNeighborhoods, s.View().Step)

	require.NoError(t, s.SetNeighborhoods([]string{"pinheiros"}))
	assert.Equal(t, Gate{Step: StepAuthoringCreative, Label: LabelValidateCreative}, s.FirstIncompleteStep())

	require.NoError(t, s.SetCreative(goodCreative()))
	assert.Equal(t, StepAuthoringCreative, s.FirstIncompleteStep().Step, "unvalidated creative blocks the gate")

	_, err := s.Validate()
	require.NoError(t, err)
	assert.Equal(t, Gate{Step: StepReviewAndPay, Label: LabelPublish, Ready: true}, s.FirstIncompleteStep())
	assert.Equal(t, StepReviewAndPay, s.View().Step)
}

func TestEditsReopenEarlierSteps(t *testing.T) {
	s, _ := readySession(t)

	bad := goodCreative()
	bad.Foreground = "#111111"
	require.NoError(t, s.SetCreative(bad))
	assert.Equal(t, StepAuthoringCreative, s.View().Step)

	res, err := s.Validate()
	require.NoError(t, err)
	assert.NotEmpty(t, res)
	assert.Equal(t, StepAuthoringCreative, s.View().Step)

	require.NoError(t, s.SetCreative(goodCreative()))
	_, err = s.Validate()
	require.NoError(t, err)
	assert.Equal(t, StepReviewAndPay, s.View().Step)

	require.NoError(t, s.SetNeighborhoods(nil))
	assert.Equal(t, StepSelectingNeighborhoods, s.View().Step)
}

func TestSwitchingCreativeShapeDiscardsOther(t *testing.T) {
	s, _ := readySession(t)
	require.NoError(t, s.SetCreative(domain.TemplateCreative{TemplateID: "launch-new", Headline: "Now open"}))

	v := s.View()
	require.NotNil(t, v.Creative)
	assert.Equal(t, domain.CreativeTemplate, v.Creative.Kind)
	assert.Nil(t, v.Creative.Freeform)
	assert.False(t, v.Validated)
}

func TestPeriodChangeFlagsConflictsWithoutDeselecting(t *testing.T) {
	s, cat := readySession(t)
	pkg := cat.Periods[1]
	s.SetOccupancy([]domain.OccupancyRecord{{NeighborhoodID: "moema", PeriodID: pkg.ID}})

	require.NoError(t, s.SetPeriod(pkg))
	v := s.View()
	assert.Equal(t, []string{"centro", "moema"}, v.Neighborhoods)
	require.Len(t, v.Conflicts, 1)
	assert.Equal(t, "moema", v.Conflicts[0].NeighborhoodID)
	assert.Equal(t, Gate{Step: StepReviewAndPay, Label: LabelResolveConflicts}, v.Gate)

	_, err := s.BeginPublish()
	require.ErrorIs(t, err, ErrOccupancyConflict)

	require.NoError(t, s.SetNeighborhoods([]string{"centro"}))
	assert.True(t, s.FirstIncompleteStep().Ready)
}

func TestSelectAllAvailableUsesSnapshot(t *testing.T) {
	s, cat := newTestSession(t)
	require.NoError(t, s.SetPeriod(cat.Periods[0]))
	s.SetOccupancy([]domain.OccupancyRecord{{NeighborhoodID: "centro", PeriodID: cat.Periods[0].ID}})

	got, err := s.SelectAllAvailable()
	require.NoError(t, err)
	assert.Len(t, got, len(cat.Neighborhoods)-1)
	assert.NotContains(t, s.View().Neighborhoods, "centro")
}

func TestPublishGuard(t *testing.T) {
	s, _ := readySession(t)

	draft, err := s.BeginPublish()
	require.NoError(t, err)
	assert.Equal(t, "idem-1", draft.IdempotencyKey)
	assert.Equal(t, []string{"centro", "moema"}, draft.Neighborhoods)

	_, err = s.BeginPublish()
	require.ErrorIs(t, err, ErrPublishInProgress)
	require.ErrorIs(t, s.SetAddon(true), ErrPublishInProgress)

	require.NoError(t, s.MarkPublishing())
	assert.Equal(t, StepPublishing, s.View().Step)

	require.NoError(t, s.CompletePublish(domain.Booking{ID: "b-1"}))
	v := s.View()
	assert.Equal(t, StepPublished, v.Step)
	assert.Equal(t, "b-1", v.BookingID)
	assert.False(t, v.Publishing)

	_, err = s.BeginPublish()
	require.ErrorIs(t, err, ErrSessionClosed)
}

func TestFailedPublishReturnsToReview(t *testing.T) {
	s, _ := readySession(t)

	_, err := s.BeginPublish()
	require.NoError(t, err)
	require.NoError(t, s.MarkPublishing())
	require.NoError(t, s.FailPublish(errors.New("db down")))

	v := s.View()
	assert.Equal(t, StepReviewAndPay, v.Step)
	assert.Equal(t, "db down", v.LastError)
	assert.False(t, v.Publishing)

	_, err = s.BeginPublish()
	require.NoError(t, err, "retry starts a fresh attempt")
}

func TestFailBeforePublishingKeepsStep(t *testing.T) {
	s, _ := readySession(t)
	_, err := s.BeginPublish()
	require.NoError(t, err)
	require.NoError(t, s.FailPublish(errors.New("payment declined")))
	assert.Equal(t, StepReviewAndPay, s.View().Step)
	assert.NoError(t, s.SetAddon(true))
}

func TestBeginPublishRevalidates(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.BeginPublish()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, ErrCreativeInvalid)
	assert.Equal(t, domain.ValidationResult{"creative is required"}, verr.Messages)

	s, _ = newTestSession(t)
	require.NoError(t, s.SetCreative(goodCreative()))
	_, err = s.BeginPublish()
	require.ErrorIs(t, err, ErrNotReady)
}

func TestQuoteFollowsSelection(t *testing.T) {
	s, cat := readySession(t)
	assert.Equal(t, "99.8", s.Quote().Current.String())

	require.NoError(t, s.SetPeriod(cat.Periods[1]))
	q := s.Quote()
	assert.Equal(t, "299.4", q.Current.String())
	assert.Equal(t, 3, q.InstallmentCount)
}

func TestSuspendedCommitFreezesPaidDraft(t *testing.T) {
	s, _ := readySession(t)
	first, err := s.BeginPublish()
	require.NoError(t, err)
	require.NoError(t, s.MarkPublishing())
	require.NoError(t, s.SuspendPublish(errors.New("connection reset")))

	v := s.View()
	assert.Equal(t, StepReviewAndPay, v.Step)
	assert.True(t, v.CommitPending)
	assert.False(t, s.Idle())
	require.ErrorIs(t, s.SetNeighborhoods([]string{"pinheiros"}), ErrCommitPending)
	require.ErrorIs(t, s.SetCreative(goodCreative()), ErrCommitPending)

	retry, err := s.BeginPublish()
	require.NoError(t, err)
	assert.True(t, retry.Paid)
	assert.Equal(t, first.IdempotencyKey, retry.IdempotencyKey)
	assert.Equal(t, first.Neighborhoods, retry.Neighborhoods)

	_, err = s.BeginPublish()
	require.ErrorIs(t, err, ErrPublishInProgress)

	require.NoError(t, s.MarkPublishing())
	require.NoError(t, s.CompletePublish(domain.Booking{ID: "b-1"}))
	assert.False(t, s.View().CommitPending)
	assert.True(t, s.Idle())
}

func TestSuspendBeforePaymentKeepsNothing(t *testing.T) {
	s, _ := readySession(t)
	_, err := s.BeginPublish()
	require.NoError(t, err)
	require.NoError(t, s.SuspendPublish(errors.New("timeout")))

	assert.False(t, s.View().CommitPending)
	assert.NoError(t, s.SetAddon(true))
}

func TestFailPublishDropsPaidDraft(t *testing.T) {
	s, _ := readySession(t)
	_, err := s.BeginPublish()
	require.NoError(t, err)
	require.NoError(t, s.MarkPublishing())
	require.NoError(t, s.SuspendPublish(errors.New("connection reset")))

	retry, err := s.BeginPublish()
	require.NoError(t, err)
	require.True(t, retry.Paid)
	require.NoError(t, s.MarkPublishing())
	require.NoError(t, s.FailPublish(errors.New("slot already booked")))

	assert.False(t, s.View().CommitPending)
	require.NoError(t, s.SetNeighborhoods([]string{"centro"}))
	draft, err := s.BeginPublish()
	require.NoError(t, err)
	assert.False(t, draft.Paid)
}

func TestTouchTracksLastActivity(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, testNow, s.LastActive())

	later := testNow.Add(time.Hour)
	s.Touch(later)
	s.Touch(testNow)
	assert.Equal(t, later, s.LastActive())
}
