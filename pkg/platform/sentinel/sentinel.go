package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Adapters return these (optionally
// wrapped) so workflows can decide how to surface them.
//
//   - ErrNotFound: the backend has no such record
//   - ErrInvalidInput: a value failed local validation before any call was made
//   - ErrInvalidState: the draft is in the wrong state for the requested operation
//   - ErrUnavailable: the backend could not be reached
//   - ErrBadData: the backend answered with a payload that could not be decoded
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
	ErrBadData      = errors.New("bad data")
)
