package state

import (
	"errors"
	"time"
)

// ErrLoadDiscarded is returned by a load whose list was reset while the backend
// call was outstanding. The result is dropped.
var ErrLoadDiscarded = errors.New("load discarded: list was reset while loading")

// LoadState describes the outcome of the last list load.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loaded
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "failed"
	default:
		return "not_loaded"
	}
}

// LoadStatus is a snapshot of a list's load state.
type LoadStatus struct {
	State    LoadState
	Err      error
	LoadedAt time.Time
}
