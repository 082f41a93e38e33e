package ngx

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrInvalidResource is returned when a mandatory resource binding is null.
	ErrInvalidResource = errors.New("ngx: invalid resource")

	// ErrUnsupportedFeature is returned when the engine or the platform
	// does not support the requested feature.
	ErrUnsupportedFeature = errors.New("ngx: feature not supported")

	// ErrDeviceError is returned for device or platform level failures.
	ErrDeviceError = errors.New("ngx: device error")

	// ErrOutOfMemory is returned when the engine runs out of GPU memory.
	ErrOutOfMemory = errors.New("ngx: out of GPU memory")

	// ErrUnsupportedQuality is returned when the optimal settings query
	// yields an empty render resolution for the requested quality preset.
	ErrUnsupportedQuality = errors.New("ngx: quality preset not supported")

	// ErrFeatureMismatch is returned when a typed feature wrapper is built
	// over a feature of a different kind.
	ErrFeatureMismatch = errors.New("ngx: feature kind mismatch")

	// ErrNilEngine is returned when a System is created without an engine.
	ErrNilEngine = errors.New("ngx: nil engine")

	// ErrNilDescriptor is returned when a nil descriptor is marshalled.
	ErrNilDescriptor = errors.New("ngx: nil descriptor")

	// ErrReleased is returned when a released feature is used.
	ErrReleased = errors.New("ngx: feature released")
)

// ResourceError reports a mandatory binding that was not supplied.
// It matches [ErrInvalidResource] with errors.Is.
type ResourceError struct {
	// Field is the descriptor field name, e.g. "color".
	Field string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("ngx: invalid resource: mandatory binding %q is null", e.Field)
}

// Unwrap returns ErrInvalidResource.
func (e *ResourceError) Unwrap() error { return ErrInvalidResource }

// EngineError wraps a failing result code returned by the engine.
// The code is kept verbatim; Is maps well-known codes onto the package
// sentinels so callers can classify failures with errors.Is.
type EngineError struct {
	// Op is the engine entry point that failed.
	Op string
	// Code is the raw result code.
	Code ResultCode
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("ngx: %s failed: %s", e.Op, e.Code)
}

// Is reports whether target is the sentinel matching e.Code.
func (e *EngineError) Is(target error) bool {
	switch e.Code {
	case FailFeatureNotSupported:
		return target == ErrUnsupportedFeature
	case FailPlatformError:
		return target == ErrDeviceError
	case FailOutOfGPUMemory:
		return target == ErrOutOfMemory
	}
	return false
}

// DriverUpdateError is returned by capability checks when the installed
// driver is too old for a feature.
type DriverUpdateError struct {
	Feature FeatureKind
	Major   uint32
	Minor   uint32
}

func (e *DriverUpdateError) Error() string {
	return fmt.Sprintf("ngx: %s requires a driver update to version %d.%d or newer", e.Feature, e.Major, e.Minor)
}

// Unwrap returns ErrUnsupportedFeature.
func (e *DriverUpdateError) Unwrap() error { return ErrUnsupportedFeature }

// resultError converts a result code into an error. Successful codes
// yield nil.
func resultError(op string, code ResultCode) error {
	if code.Succeeded() {
		return nil
	}
	return &EngineError{Op: op, Code: code}
}
