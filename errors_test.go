package ngx

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestResultCodeSucceeded(t *testing.T) {
	tests := []struct {
		code ResultCode
		want bool
	}{
		{Success, true},
		{ResultCode(0), true},
		{Fail, false},
		{FailOutOfGPUMemory, false},
		{FailNotImplemented, false},
		{ResultCode(0xBAD000FF), false},
	}
	for _, tt := range tests {
		if got := tt.code.Succeeded(); got != tt.want {
			t.Errorf("%v.Succeeded() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestResultCodeString(t *testing.T) {
	tests := []struct {
		code ResultCode
		want string
	}{
		{Success, "Success"},
		{FailFeatureNotSupported, "FeatureNotSupported"},
		{FailDenied, "Denied"},
		{ResultCode(0xBAD00099), "ResultCode(0xbad00099)"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ResultCode(%#x).String() = %q, want %q", uint32(tt.code), got, tt.want)
		}
	}
}

func TestEngineErrorIs(t *testing.T) {
	tests := []struct {
		code   ResultCode
		target error
	}{
		{FailFeatureNotSupported, ErrUnsupportedFeature},
		{FailPlatformError, ErrDeviceError},
		{FailOutOfGPUMemory, ErrOutOfMemory},
	}
	for _, tt := range tests {
		err := fmt.Errorf("wrapped: %w", resultError("EvaluateFeature", tt.code))
		if !errors.Is(err, tt.target) {
			t.Errorf("errors.Is(%v, %v) = false", err, tt.target)
		}
		var ee *EngineError
		if !errors.As(err, &ee) || ee.Code != tt.code {
			t.Errorf("errors.As() code = %v, want %v", ee, tt.code)
		}
	}

	err := resultError("CreateFeature", FailInvalidParameter)
	for _, target := range []error{ErrUnsupportedFeature, ErrDeviceError, ErrOutOfMemory, ErrInvalidResource} {
		if errors.Is(err, target) {
			t.Errorf("errors.Is(%v, %v) = true", err, target)
		}
	}
	if want := "ngx: CreateFeature failed: InvalidParameter"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestResultErrorSuccess(t *testing.T) {
	if err := resultError("Init", Success); err != nil {
		t.Errorf("resultError(Success) = %v, want nil", err)
	}
}

func TestDriverUpdateError(t *testing.T) {
	err := error(&DriverUpdateError{Feature: FeatureRayReconstruction, Major: 537, Minor: 58})
	if !errors.Is(err, ErrUnsupportedFeature) {
		t.Error("DriverUpdateError does not match ErrUnsupportedFeature")
	}
	if !strings.Contains(err.Error(), "RayReconstruction") || !strings.Contains(err.Error(), "537.58") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestResourceErrorMessage(t *testing.T) {
	err := &ResourceError{Field: "output"}
	if want := `ngx: invalid resource: mandatory binding "output" is null`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestOptFloat32(t *testing.T) {
	tests := []struct {
		name  string
		o     OptFloat32
		isSet bool
		or    float32
	}{
		{"zero value", OptFloat32{}, false, 1},
		{"explicit zero", Float(0), false, 1},
		{"half", Float(0.5), true, 0.5},
		{"negative", Float(-2), true, -2},
	}
	for _, tt := range tests {
		if got := tt.o.IsSet(); got != tt.isSet {
			t.Errorf("%s: IsSet() = %v, want %v", tt.name, got, tt.isSet)
		}
		if got := tt.o.Or(1); got != tt.or {
			t.Errorf("%s: Or(1) = %v, want %v", tt.name, got, tt.or)
		}
	}
}
