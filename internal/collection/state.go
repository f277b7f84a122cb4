// Package collection owns the authoritative in-memory view of one remote
// entity collection. Products are remote-authoritative: every mutation is a
// remote call whose response replaces local state. Order status is
// local-authoritative: it is persisted to the override store and never
// reported upstream. The two modes are deliberately separate types.
package collection

import "errors"

// State is the lifecycle of a collection. Ready is terminal for the life
// of the process: a remote fault after that surfaces to the caller and
// leaves the last good state visible.
type State int

const (
	Uninitialized State = iota
	Loading
	Ready
)

var (
	ErrAlreadyLoaded = errors.New("already loaded")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation")
)
