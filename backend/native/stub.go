// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(ngx && cgo)

package native

import (
	"github.com/gogpu/ngx"
	"github.com/gogpu/ngx/backend"
)

// init registers a nil-returning factory when the ngx tag or cgo is
// missing, so backend.Get(backend.EngineNative) returns nil gracefully.
func init() {
	backend.Register(backend.EngineNative, func() ngx.Engine {
		return nil
	})
}
