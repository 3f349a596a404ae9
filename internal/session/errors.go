package session

import "errors"

var (
	// ErrSaveInProgress is returned by every mutating operation while a save
	// is in flight. The working copy is left untouched.
	ErrSaveInProgress = errors.New("session: save in progress")
	// ErrNotLoaded is returned when the session has no canonical copy yet.
	ErrNotLoaded       = errors.New("session: not loaded")
	ErrIndexOutOfRange = errors.New("session: index out of range")
	ErrUnknownField    = errors.New("session: unknown field")
	ErrInvalidEnum     = errors.New("session: invalid enum value")
	ErrUnknownAccount  = errors.New("session: unknown retirement account")
)
