// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkres

import (
	"slices"
	"testing"
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/ngx"
)

func TestNullHandles(t *testing.T) {
	if got := ImageView(nil); got != ngx.NullImageView {
		t.Errorf("ImageView(null) = %#x, want %#x", got, ngx.NullImageView)
	}
	if got := Image(nil); got != ngx.NullImage {
		t.Errorf("Image(null) = %#x, want %#x", got, ngx.NullImage)
	}
	if got := CommandBuffer(nil); got != 0 {
		t.Errorf("CommandBuffer(nil) = %#x, want 0", got)
	}
	if got := Device(nil); got != ngx.NullDevice {
		t.Errorf("Device(nil) = %#x, want %#x", got, ngx.NullDevice)
	}
}

func TestHandleValues(t *testing.T) {
	const addr = 0x7f00_1000
	p := unsafe.Pointer(uintptr(addr))

	tests := []struct {
		name string
		got  uint64
	}{
		{"ImageView", uint64(ImageView(vk.ImageView(p)))},
		{"Image", uint64(Image(vk.Image(p)))},
		{"CommandBuffer", uint64(CommandBuffer(vk.CommandBuffer(p)))},
		{"Device", uint64(Device(vk.Device(p)))},
		{"Instance", uint64(Instance(vk.Instance(p)))},
		{"PhysicalDevice", uint64(PhysicalDevice(vk.PhysicalDevice(p)))},
	}
	for _, tt := range tests {
		if tt.got != addr {
			t.Errorf("%s() = %#x, want %#x", tt.name, tt.got, addr)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   vk.Format
		want ngx.Format
	}{
		{vk.FormatR16g16b16a16Sfloat, ngx.FormatR16G16B16A16Sfloat},
		{vk.FormatR8g8b8a8Unorm, ngx.FormatR8G8B8A8Unorm},
		{vk.FormatD32Sfloat, ngx.FormatD32Sfloat},
		{vk.FormatR16g16Sfloat, ngx.FormatR16G16Sfloat},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	r := Range(vk.ImageSubresourceRange{
		AspectMask:     vk.ImageAspectFlags(vk.ImageAspectDepthBit),
		BaseMipLevel:   2,
		LevelCount:     3,
		BaseArrayLayer: 1,
		LayerCount:     4,
	})
	want := ngx.SubresourceRange{AspectMask: ngx.AspectDepth, BaseMipLevel: 2, LevelCount: 3, BaseArrayLayer: 1, LayerCount: 4}
	if r != want {
		t.Errorf("Range() = %+v, want %+v", r, want)
	}

	if got := Range(ColorRange()); got.AspectMask != ngx.AspectColor || got.LevelCount != 1 || got.LayerCount != 1 {
		t.Errorf("Range(ColorRange()) = %+v", got)
	}
}

func TestBinding(t *testing.T) {
	b := Binding(nil, nil, ColorRange(), vk.FormatR16g16b16a16Sfloat,
		vk.Extent2D{Width: 1920, Height: 1080}, true)

	if b.Format != ngx.FormatR16G16B16A16Sfloat {
		t.Errorf("Format = %d, want %d", b.Format, ngx.FormatR16G16B16A16Sfloat)
	}
	if b.Extent() != (ngx.Extent2D{Width: 1920, Height: 1080}) {
		t.Errorf("Extent() = %+v", b.Extent())
	}
	if !b.ReadWrite {
		t.Error("ReadWrite = false, want true")
	}
	// A null view is an absent binding.
	if b.Present() {
		t.Error("Present() = true for a null view")
	}
}

func TestExtent(t *testing.T) {
	if got := Extent(vk.Extent2D{Width: 3, Height: 4}); got != (ngx.Extent2D{Width: 3, Height: 4}) {
		t.Errorf("Extent() = %+v", got)
	}
}

func TestWithDevice(t *testing.T) {
	cfg := ngx.DefaultConfig()
	WithDevice(nil, nil, nil)(&cfg)
	if cfg.Device != ngx.NullDevice || cfg.Instance != 0 {
		t.Errorf("WithDevice(nil...) = %+v", cfg)
	}
}

func TestSafeStrings(t *testing.T) {
	got := SafeStrings([]string{"VK_NVX_binary_import", "VK_KHR_push_descriptor\x00"})
	want := []string{"VK_NVX_binary_import\x00", "VK_KHR_push_descriptor\x00"}
	if !slices.Equal(got, want) {
		t.Errorf("SafeStrings() = %q, want %q", got, want)
	}
}

func TestMissing(t *testing.T) {
	available := []string{"VK_KHR_swapchain\x00", "VK_NVX_binary_import\x00"}
	required := []string{"VK_NVX_binary_import", "VK_NVX_image_view_handle"}

	got := Missing(available, required)
	if !slices.Equal(got, []string{"VK_NVX_image_view_handle"}) {
		t.Errorf("Missing() = %q", got)
	}
	if got := Missing(available, nil); got != nil {
		t.Errorf("Missing(nil) = %q, want nil", got)
	}
}
