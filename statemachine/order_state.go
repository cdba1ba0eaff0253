package statemachine

import (
	"github.com/pkg/errors"

	"github.com/t-rethnee/restaurant-console/models"
)

// Actors that may drive a status change.
const (
	ActorChef  = "chef"
	ActorAdmin = "admin"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// validTransitions is the authoritative state machine definition. The chef
// moves an order forward one step at a time; the admin may force any
// recognized status. Forward-only progression for the chef is a documented
// strengthening over the legacy behavior, which let any recognized status
// be set regardless of the current one.
var validTransitions = []Transition{
	// Chef moves orders through the kitchen
	{From: models.StatusProcessing, To: models.StatusReady, Actor: ActorChef},
	{From: models.StatusReady, To: models.StatusDelivered, Actor: ActorChef},

	// Admin can force any recognized status
	{From: models.StatusProcessing, To: models.StatusReady, Actor: ActorAdmin},
	{From: models.StatusProcessing, To: models.StatusDelivered, Actor: ActorAdmin},
	{From: models.StatusReady, To: models.StatusProcessing, Actor: ActorAdmin},
	{From: models.StatusReady, To: models.StatusDelivered, Actor: ActorAdmin},
	{From: models.StatusDelivered, To: models.StatusProcessing, Actor: ActorAdmin},
	{From: models.StatusDelivered, To: models.StatusReady, Actor: ActorAdmin},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// IsValidStatus reports whether s is one of the three recognized statuses.
func IsValidStatus(s models.OrderStatus) bool {
	switch s {
	case models.StatusProcessing, models.StatusReady, models.StatusDelivered:
		return true
	}
	return false
}

// ParseStatus converts raw console input into a recognized status.
func ParseStatus(raw string) (models.OrderStatus, error) {
	s := models.OrderStatus(raw)
	if !IsValidStatus(s) {
		return "", &models.ValidationError{
			Field:  "status",
			Reason: "must be Processing, Ready or Delivered",
		}
	}
	return s, nil
}

// ValidTransitionsFrom returns all valid next states for an actor from a
// given state.
func ValidTransitionsFrom(status models.OrderStatus, actor string) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && t.Actor == actor && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	if !IsValidStatus(to) {
		return &models.ValidationError{
			Field:  "status",
			Reason: "must be Processing, Ready or Delivered",
		}
	}
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.Errorf("invalid transition: %s -> %s is not allowed for actor %q; valid next states are: %s",
		from, to, actor, describeValidFrom(from, actor))
}

func describeValidFrom(status models.OrderStatus, actor string) string {
	nexts := ValidTransitionsFrom(status, actor)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllTransitions returns the full state machine definition.
func AllTransitions() []Transition {
	return validTransitions
}
