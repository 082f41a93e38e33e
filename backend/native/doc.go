// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native provides the ngx engine backed by the NVIDIA NGX SDK.
//
// The engine copies each ngx.ParameterStore into an NGX parameter block,
// turning resource bindings into NVSDK_NGX_Resource_VK image views, and
// calls the NGX Vulkan entry points. Handles are passed to the SDK as the
// raw Vulkan handle values.
//
// # Build Tags
//
// This package requires the "ngx" build tag and cgo:
//
//	CGO_CFLAGS="-I$DLSS_SDK/include" CGO_LDFLAGS="-L$DLSS_SDK/lib/Linux_x86_64" \
//		go build -tags ngx ./...
//
// Without the tag a stub is compiled whose factory returns nil, and
// backend.Default falls back to the recording engine.
//
//	import _ "github.com/gogpu/ngx/backend/native"
//
// # Requirements
//
//   - The NGX SDK headers and libnvsdk_ngx
//   - A Vulkan loader
//   - An NVIDIA RTX GPU and driver; the DLSS runtime libraries are looked
//     up next to the executable and in the application data path
package native
