package services

import "errors"

// Sentinel failures surfaced by the services. Controllers match on these with
// errors.Is; anything not wrapping one of them is an unclassified
// backing-store or network fault.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrMealNotFound        = errors.New("meal not found")
	ErrMealGone            = errors.New("meal has been deleted")
	ErrDuplicateMeal       = errors.New("meal already exists")
	ErrCombatantsFull      = errors.New("combatant list is full")
	ErrNotEnoughCombatants = errors.New("two combatants must be prepped")
	ErrRandomTimeout       = errors.New("request to random.org timed out")
	ErrRandomBadResponse   = errors.New("invalid response from random.org")
)
