package payrun

import "errors"

var (
	ErrPayRunNotFound     = errors.New("pay run not found")
	ErrPayRunLineNotFound = errors.New("pay run line not found")

	// Duplicate-period conflicts. Distinct messages so the caller can tell a
	// stale draft apart from an already-processed run.
	ErrDraftRunExists    = errors.New("a draft pay run already exists for this period")
	ErrPayRunExists      = errors.New("a pay run has already been processed for this period")
	ErrPayRunPeriodTaken = errors.New("pay run period already taken")

	ErrPayRunFinalised       = errors.New("pay run is finalised and can no longer be modified")
	ErrInvalidTransition     = errors.New("pay run status can only move forward")
	ErrPayRunNotDraft        = errors.New("only draft pay runs can be deleted")
	ErrAdjustmentNeedsReason = errors.New("adjustments on an approved run require a reason")
)
