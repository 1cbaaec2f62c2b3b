package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingPredecessor is returned when a relative phase has no predecessor record in its entity
	ErrMissingPredecessor = errors.New("missing predecessor phase")
	// ErrCyclicPhase is returned when a phase table contains a predecessor cycle
	ErrCyclicPhase = errors.New("cyclic phase dependency")
	// ErrInvalidPhaseSpec is returned for phase table entries that cannot be resolved
	ErrInvalidPhaseSpec = errors.New("invalid phase spec")
)

// MissingPredecessorError identifies the record whose predecessor chain is broken.
// Requested is the phase being resolved when the break was found; it differs
// from Phase when the chain breaks further up.
type MissingPredecessorError struct {
	Entity      string
	Phase       string
	Predecessor string
	Requested   string
}

func (e *MissingPredecessorError) Error() string {
	msg := fmt.Sprintf("entity %q phase %q: predecessor %q not found", e.Entity, e.Phase, e.Predecessor)
	if e.Requested != "" && e.Requested != e.Phase {
		msg += fmt.Sprintf(" (resolving %q)", e.Requested)
	}
	return msg
}

func (e *MissingPredecessorError) Unwrap() error {
	return ErrMissingPredecessor
}
