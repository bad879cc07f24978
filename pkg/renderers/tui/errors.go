package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalidSelection is returned by drivers when the chosen option is
	// not one of the offered ones.
	ErrInvalidSelection = errors.New("tui: invalid selection")
)
