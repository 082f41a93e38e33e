// Package backend is the registry of ngx engines.
//
// Engine packages register a factory from init. Importing an engine
// package for its side effect makes it selectable:
//
//	import (
//		"github.com/gogpu/ngx/backend"
//		_ "github.com/gogpu/ngx/backend/native"
//		_ "github.com/gogpu/ngx/backend/recording"
//	)
//
// # Engine Selection
//
// Default returns the best usable engine. The native engine wins when the
// binary was built with the "ngx" tag and cgo; otherwise the recording
// engine is used:
//
//	sys, err := backend.Open("", cfg, ngx.WithVulkan(inst, phys, dev))
//
// Request a specific engine by name with Get or Open:
//
//	e := backend.Get(backend.EngineRecording)
package backend
