package recording

import "errors"

// Package errors for the recording engine.
var (
	// ErrNoEvaluation is returned by Last when nothing was evaluated yet.
	ErrNoEvaluation = errors.New("recording: no evaluation recorded")
)
