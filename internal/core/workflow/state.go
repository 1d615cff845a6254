// Package workflow sequences a booking purchase: selection, creative
// authoring, payment and publish. Steps only move through Transition.
package workflow

import (
	"errors"
	"fmt"
)

// Step is the position of a session in the purchase flow.
type Step int

const (
	StepSelectingPlacement Step = iota
	StepSelectingPeriod
	StepSelectingNeighborhoods
	StepAuthoringCreative
	StepReviewAndPay
	StepPublishing
	StepPublished
	StepFailed
)

var stepNames = [...]string{
	StepSelectingPlacement:     "selecting_placement",
	StepSelectingPeriod:        "selecting_period",
	StepSelectingNeighborhoods: "selecting_neighborhoods",
	StepAuthoringCreative:      "authoring_creative",
	StepReviewAndPay:           "review_and_pay",
	StepPublishing:             "publishing",
	StepPublished:              "published",
	StepFailed:                 "failed",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	for i, name := range stepNames {
		if name == string(b) {
			*s = Step(i)
			return nil
		}
	}
	return fmt.Errorf("unknown step %q", b)
}

// Event drives a Step change.
type Event int

const (
	EventPlacementChosen Event = iota
	EventPeriodChosen
	EventNeighborhoodsChosen
	EventCreativeValidated
	EventNeighborhoodsCleared
	EventCreativeChanged
	EventPublishStarted
	EventPublishSucceeded
	EventPublishFailed
	EventRetry
)

var eventNames = [...]string{
	EventPlacementChosen:      "placement_chosen",
	EventPeriodChosen:         "period_chosen",
	EventNeighborhoodsChosen:  "neighborhoods_chosen",
	EventCreativeValidated:    "creative_validated",
	EventNeighborhoodsCleared: "neighborhoods_cleared",
	EventCreativeChanged:      "creative_changed",
	EventPublishStarted:       "publish_started",
	EventPublishSucceeded:     "publish_succeeded",
	EventPublishFailed:        "publish_failed",
	EventRetry:                "retry",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(e))
	}
	return eventNames[e]
}

var ErrIllegalTransition = errors.New("illegal transition")

type edge struct {
	from Step
	ev   Event
}

var transitions = map[edge]Step{
	{StepSelectingPlacement, EventPlacementChosen}:         StepSelectingPeriod,
	{StepSelectingPeriod, EventPeriodChosen}:               StepSelectingNeighborhoods,
	{StepSelectingNeighborhoods, EventNeighborhoodsChosen}: StepAuthoringCreative,
	{StepAuthoringCreative, EventCreativeValidated}:        StepReviewAndPay,

	{StepAuthoringCreative, EventNeighborhoodsCleared}: StepSelectingNeighborhoods,
	{StepReviewAndPay, EventNeighborhoodsCleared}:      StepSelectingNeighborhoods,
	{StepReviewAndPay, EventCreativeChanged}:           StepAuthoringCreative,

	{StepReviewAndPay, EventPublishStarted}: StepPublishing,
	{StepPublishing, EventPublishSucceeded}: StepPublished,
	{StepPublishing, EventPublishFailed}:    StepFailed,
	{StepFailed, EventRetry}:                StepReviewAndPay,
}

// Transition returns the step reached from from on ev.
func Transition(from Step, ev Event) (Step, error) {
	to, ok := transitions[edge{from, ev}]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, ev, from)
	}
	return to, nil
}

// completion is the event that leaves a selection step once its
// requirement is met.
var completion = map[Step]Event{
	StepSelectingPlacement:     EventPlacementChosen,
	StepSelectingPeriod:        EventPeriodChosen,
	StepSelectingNeighborhoods: EventNeighborhoodsChosen,
	StepAuthoringCreative:      EventCreativeValidated,
}

// reopening returns the event that moves from back to the earlier step to.
func reopening(from, to Step) (Event, bool) {
	switch {
	case to == StepSelectingNeighborhoods && (from == StepAuthoringCreative || from == StepReviewAndPay):
		return EventNeighborhoodsCleared, true
	case to == StepAuthoringCreative && from == StepReviewAndPay:
		return EventCreativeChanged, true
	}
	return 0, false
}
