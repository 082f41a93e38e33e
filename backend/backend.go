package backend

import "errors"

// Engine names.
const (
	// EngineNative is the NGX SDK engine, available with the "ngx" build
	// tag and cgo.
	EngineNative = "native"

	// EngineRecording is the pure Go engine that records evaluations.
	EngineRecording = "recording"
)

// Common backend errors.
var (
	// ErrEngineNotAvailable is returned when no usable engine is registered
	// under the requested name.
	ErrEngineNotAvailable = errors.New("backend: engine not available")
)
