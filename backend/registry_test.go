package backend_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/ngx"
	"github.com/gogpu/ngx/backend"
	_ "github.com/gogpu/ngx/backend/native"
	"github.com/gogpu/ngx/backend/recording"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	// The recording engine is registered from init.
	if !backend.IsRegistered(backend.EngineRecording) {
		t.Error("recording engine should be auto-registered")
	}

	e := backend.Get(backend.EngineRecording)
	if e == nil {
		t.Fatal("Get(recording) returned nil")
	}
	if e.Name() != backend.EngineRecording {
		t.Errorf("Get(recording).Name() = %q, want %q", e.Name(), backend.EngineRecording)
	}
}

func TestRegistryGetReturnsNewInstance(t *testing.T) {
	a := backend.Get(backend.EngineRecording)
	b := backend.Get(backend.EngineRecording)
	if a == b {
		t.Error("Get() should return a fresh engine per call")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if e := backend.Get("nonexistent"); e != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := backend.Available()
	if !slices.Contains(available, backend.EngineRecording) {
		t.Errorf("Available() = %v, should include %q", available, backend.EngineRecording)
	}
	if !slices.Contains(available, backend.EngineNative) {
		t.Errorf("Available() = %v, should include %q", available, backend.EngineNative)
	}
	if !slices.IsSorted(available) {
		t.Errorf("Available() = %v, want sorted", available)
	}
}

func TestRegistryDefault(t *testing.T) {
	e := backend.Default()
	if e == nil {
		t.Fatal("Default() returned nil")
	}
	// Without the ngx build tag the native factory returns nil.
	if e.Name() != backend.EngineRecording && e.Name() != backend.EngineNative {
		t.Errorf("Default().Name() = %q", e.Name())
	}
}

func TestRegistryDefaultSkipsNilFactories(t *testing.T) {
	backend.Register("aaa-compiled-out", func() ngx.Engine { return nil })
	defer backend.Unregister("aaa-compiled-out")

	if backend.Default() == nil {
		t.Fatal("Default() returned nil")
	}
	if e := backend.Get("aaa-compiled-out"); e != nil {
		t.Errorf("Get(aaa-compiled-out) = %v, want nil", e)
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if e := backend.MustDefault(); e == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryUnregister(t *testing.T) {
	backend.Register("test-engine", func() ngx.Engine { return recording.New() })

	if !backend.IsRegistered("test-engine") {
		t.Error("test-engine should be registered")
	}

	backend.Unregister("test-engine")

	if backend.IsRegistered("test-engine") {
		t.Error("test-engine should not be registered after Unregister")
	}
}

func TestOpen(t *testing.T) {
	sys, err := backend.Open(backend.EngineRecording, ngx.DefaultConfig())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() {
		if err := sys.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()

	if sys.Engine().Name() != backend.EngineRecording {
		t.Errorf("Engine().Name() = %q, want %q", sys.Engine().Name(), backend.EngineRecording)
	}
	if err := ngx.SupportsSuperSampling(sys.Capabilities()); err != nil {
		t.Errorf("SupportsSuperSampling() error = %v", err)
	}
}

func TestOpenDefault(t *testing.T) {
	sys, err := backend.Open("", ngx.DefaultConfig(), ngx.WithEngineVersion("1.2.3"))
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}
	defer sys.Close()

	if got := sys.Config().EngineVersion; got != "1.2.3" {
		t.Errorf("Config().EngineVersion = %q, want %q", got, "1.2.3")
	}
}

func TestOpenUnavailable(t *testing.T) {
	_, err := backend.Open("nonexistent", ngx.DefaultConfig())
	if !errors.Is(err, backend.ErrEngineNotAvailable) {
		t.Errorf("Open(nonexistent) error = %v, want ErrEngineNotAvailable", err)
	}
}
