package engine

import "fmt"

// ValidationError covers malformed actions: unknown type, unknown
// player, missing payload.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError covers unknown game or space ids.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// RuleViolation is a legal action rejected by the game rules:
// insufficient funds, wrong phase, wrong owner, uneven building.
type RuleViolation struct {
	Msg string
}

func (e *RuleViolation) Error() string { return e.Msg }

// StateError means an engine invariant would have been broken. It
// should not occur under valid inputs.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return e.Msg }

func validationf(format string, a ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}

func notFoundf(format string, a ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, a...)}
}

func rulef(format string, a ...interface{}) error {
	return &RuleViolation{Msg: fmt.Sprintf(format, a...)}
}

func statef(format string, a ...interface{}) error {
	return &StateError{Msg: fmt.Sprintf(format, a...)}
}
