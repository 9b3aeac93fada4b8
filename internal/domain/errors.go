package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrUnknownLang    = errors.New("unknown language code")
	ErrUnknownEdition = errors.New("unknown edition code")
	ErrBadCombination = errors.New("invalid language combination")
	ErrDatasetMissing = errors.New("dataset not found")
	ErrCorruptCache   = errors.New("corrupt record cache")
)
