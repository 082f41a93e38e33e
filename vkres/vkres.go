// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vkres converts goki/vulkan handles and structures into ngx
// resource bindings.
//
//	color := vkres.Binding(view, image, rng, vk.FormatR16g16b16a16Sfloat, extent, false)
//	out := vkres.Binding(outView, outImage, rng, vk.FormatR16g16b16a16Sfloat, target, true)
//	p := ss.EvaluationParameters()
//	p.Color, p.Output = color, out
//	err := ss.Evaluate(vkres.CommandBuffer(cmd))
package vkres

import (
	"strings"
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/ngx"
)

// Vulkan handles point to incomplete cgo structs and cannot be type
// arguments.

// ImageView returns the ngx handle of v.
func ImageView(v vk.ImageView) ngx.ImageView {
	return ngx.ImageView(uintptr(unsafe.Pointer(v)))
}

// Image returns the ngx handle of i.
func Image(i vk.Image) ngx.Image {
	return ngx.Image(uintptr(unsafe.Pointer(i)))
}

// CommandBuffer returns the ngx handle of c.
func CommandBuffer(c vk.CommandBuffer) ngx.CommandBuffer {
	return ngx.CommandBuffer(uintptr(unsafe.Pointer(c)))
}

// Device returns the ngx handle of d.
func Device(d vk.Device) ngx.Device {
	return ngx.Device(uintptr(unsafe.Pointer(d)))
}

// Instance returns the ngx handle of i.
func Instance(i vk.Instance) ngx.Instance {
	return ngx.Instance(uintptr(unsafe.Pointer(i)))
}

// PhysicalDevice returns the ngx handle of p.
func PhysicalDevice(p vk.PhysicalDevice) ngx.PhysicalDevice {
	return ngx.PhysicalDevice(uintptr(unsafe.Pointer(p)))
}

// Format returns the ngx format of f. Both are VkFormat values.
func Format(f vk.Format) ngx.Format { return ngx.Format(f) }

// Range returns the ngx subresource range of r.
func Range(r vk.ImageSubresourceRange) ngx.SubresourceRange {
	return ngx.SubresourceRange{
		AspectMask:     ngx.AspectFlags(r.AspectMask),
		BaseMipLevel:   r.BaseMipLevel,
		LevelCount:     r.LevelCount,
		BaseArrayLayer: r.BaseArrayLayer,
		LayerCount:     r.LayerCount,
	}
}

// ColorRange returns the range of the first mip level and layer of a color
// image.
func ColorRange() vk.ImageSubresourceRange {
	return vk.ImageSubresourceRange{
		AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
		LevelCount: 1,
		LayerCount: 1,
	}
}

// Extent returns the ngx extent of e.
func Extent(e vk.Extent2D) ngx.Extent2D {
	return ngx.Extent2D{Width: e.Width, Height: e.Height}
}

// Binding builds a resource binding for a Vulkan image view.
func Binding(view vk.ImageView, image vk.Image, rng vk.ImageSubresourceRange, format vk.Format, extent vk.Extent2D, readWrite bool) *ngx.ResourceBinding {
	b := ngx.MakeView(ImageView(view), Image(image), Range(rng), Format(format), extent.Width, extent.Height, readWrite)
	return &b
}

// WithDevice returns the system option that binds the engine to a Vulkan
// device.
func WithDevice(instance vk.Instance, physical vk.PhysicalDevice, device vk.Device) ngx.SystemOption {
	return ngx.WithVulkan(Instance(instance), PhysicalDevice(physical), Device(device))
}

// SafeStrings returns names NUL-terminated, as the vulkan package expects
// for extension lists.
func SafeStrings(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if !strings.HasSuffix(n, "\x00") {
			n += "\x00"
		}
		out[i] = n
	}
	return out
}

// Missing returns the required extensions that are not in available.
// Names are compared without NUL terminators.
func Missing(available, required []string) []string {
	have := make(map[string]bool, len(available))
	for _, n := range available {
		have[strings.TrimRight(n, "\x00")] = true
	}
	var missing []string
	for _, n := range required {
		if n = strings.TrimRight(n, "\x00"); !have[n] {
			missing = append(missing, n)
		}
	}
	return missing
}
