package rate

import "errors"

var (
	ErrRateEntryNotFound       = errors.New("rate history entry not found")
	ErrRateEffectiveDateExists = errors.New("a rate already exists for this employee and effective date")
	ErrRateAlreadyEffective    = errors.New("rate history entry has already taken effect and cannot be deleted")
)
