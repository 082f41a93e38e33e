package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/ngx"
)

// EngineFactory creates a new engine instance. A factory may return nil
// when the engine was compiled out.
type EngineFactory func() ngx.Engine

var (
	registryMu sync.RWMutex
	engines    = make(map[string]EngineFactory)
	// enginePriority is the selection order of Default.
	enginePriority = []string{EngineNative, EngineRecording}
)

// Register registers an engine factory under name, replacing any previous
// factory. Engine packages call it from init.
func Register(name string, factory EngineFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	engines[name] = factory
}

// Unregister removes an engine from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(engines, name)
}

// Available returns the registered engine names in sorted order. Names
// whose factory returns nil are included.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether an engine is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := engines[name]
	return ok
}

// Get returns a new instance of the named engine, or nil if it is not
// registered or compiled out.
func Get(name string) ngx.Engine {
	registryMu.RLock()
	factory, ok := engines[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the first usable engine in priority order (native, then
// recording), falling back to any other registered engine. It returns nil
// when nothing is usable.
func Default() ngx.Engine {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range enginePriority {
		if factory, ok := engines[name]; ok {
			if e := factory(); e != nil {
				return e
			}
		}
	}

	others := make([]string, 0, len(engines))
	for name := range engines {
		if !slices.Contains(enginePriority, name) {
			others = append(others, name)
		}
	}
	slices.Sort(others)
	for _, name := range others {
		if e := engines[name](); e != nil {
			return e
		}
	}
	return nil
}

// MustDefault returns the default engine or panics.
func MustDefault() ngx.Engine {
	e := Default()
	if e == nil {
		panic("backend: no engine available")
	}
	return e
}

// Open creates a System on the named engine. An empty name selects the
// default engine.
func Open(name string, cfg ngx.Config, opts ...ngx.SystemOption) (*ngx.System, error) {
	var e ngx.Engine
	if name == "" {
		e = Default()
	} else {
		e = Get(name)
	}
	if e == nil {
		if name == "" {
			return nil, ErrEngineNotAvailable
		}
		return nil, fmt.Errorf("%w: %s", ErrEngineNotAvailable, name)
	}
	ngx.Logger().Debug("backend: opening engine", "engine", e.Name())
	return ngx.NewSystem(e, cfg, opts...)
}
