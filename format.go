// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ngx

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Format is a VkFormat value.
type Format int32

// Vulkan formats commonly bound to an evaluation.
const (
	FormatUndefined              Format = 0
	FormatR8Unorm                Format = 9
	FormatR8G8B8A8Unorm          Format = 37
	FormatR8G8B8A8Srgb           Format = 43
	FormatB8G8R8A8Unorm          Format = 44
	FormatB8G8R8A8Srgb           Format = 50
	FormatA2B10G10R10UnormPack32 Format = 64
	FormatR16Sfloat              Format = 76
	FormatR16G16Sfloat           Format = 83
	FormatR16G16B16A16Sfloat     Format = 97
	FormatR32Sfloat              Format = 100
	FormatR32G32Sfloat           Format = 103
	FormatR32G32B32A32Sfloat     Format = 109
	FormatB10G11R11UfloatPack32  Format = 122
	FormatD32Sfloat              Format = 126
	FormatD24UnormS8Uint         Format = 129
	FormatD32SfloatS8Uint        Format = 130
)

// IsDepth reports whether f has a depth component.
func (f Format) IsDepth() bool {
	switch f {
	case FormatD32Sfloat, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	}
	return false
}

// HasStencil reports whether f has a stencil component.
func (f Format) HasStencil() bool {
	return f == FormatD24UnormS8Uint || f == FormatD32SfloatS8Uint
}

// AspectFlags is a VkImageAspectFlags bitmask.
type AspectFlags uint32

// Image aspects.
const (
	AspectColor   AspectFlags = 1 << 0
	AspectDepth   AspectFlags = 1 << 1
	AspectStencil AspectFlags = 1 << 2
)

// ErrUnmappedFormat is returned when a gputypes format has no Vulkan
// counterpart usable by the engine.
var ErrUnmappedFormat = errors.New("ngx: texture format has no Vulkan equivalent")

var gpuFormats = map[gputypes.TextureFormat]Format{
	gputypes.TextureFormatR8Unorm:             FormatR8Unorm,
	gputypes.TextureFormatRGBA8Unorm:          FormatR8G8B8A8Unorm,
	gputypes.TextureFormatBGRA8Unorm:          FormatB8G8R8A8Unorm,
	gputypes.TextureFormatRGBA16Float:         FormatR16G16B16A16Sfloat,
	gputypes.TextureFormatR32Float:            FormatR32Sfloat,
	gputypes.TextureFormatRGBA32Float:         FormatR32G32B32A32Sfloat,
	gputypes.TextureFormatDepth32Float:        FormatD32Sfloat,
	gputypes.TextureFormatDepth24PlusStencil8: FormatD24UnormS8Uint,
}

// FormatFromGPU maps a gogpu texture format onto the Vulkan format the
// engine expects.
func FormatFromGPU(f gputypes.TextureFormat) (Format, error) {
	if vf, ok := gpuFormats[f]; ok {
		return vf, nil
	}
	return FormatUndefined, fmt.Errorf("%w: %v", ErrUnmappedFormat, f)
}

// AspectFromGPU returns the aspect mask for a view of format f.
// TextureAspectAll selects every aspect the format has; DepthOnly selects
// the depth aspect of depth formats.
func AspectFromGPU(a gputypes.TextureAspect, f Format) AspectFlags {
	if !f.IsDepth() {
		return AspectColor
	}
	if a == gputypes.TextureAspectDepthOnly {
		return AspectDepth
	}
	if f.HasStencil() {
		return AspectDepth | AspectStencil
	}
	return AspectDepth
}

// SurfaceOutputFormat returns the Vulkan format of the surface exposed by a
// gogpu device provider. Applications presenting the upscaled image
// directly use it for the output binding.
func SurfaceOutputFormat(p gpucontext.DeviceProvider) (Format, error) {
	if p == nil {
		return FormatUndefined, errors.New("ngx: nil device provider")
	}
	return FormatFromGPU(p.SurfaceFormat())
}
