// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build ngx && cgo

package native

/*
#cgo LDFLAGS: -lnvsdk_ngx -lstdc++ -ldl
#cgo linux LDFLAGS: -lvulkan
#cgo windows LDFLAGS: -lvulkan-1

#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#include <wchar.h>
#include <vulkan/vulkan.h>
#include <nvsdk_ngx_vk.h>
#include <nvsdk_ngx_helpers.h>
#include <nvsdk_ngx_helpers_vk.h>

static NVSDK_NGX_Result ngx_init(const char *project, const char *version, const char *path,
	uint64_t instance, uint64_t physical, uint64_t device) {
	size_t n = mbstowcs(NULL, path, 0);
	if (n == (size_t)-1) {
		return NVSDK_NGX_Result_FAIL_InvalidParameter;
	}
	wchar_t *wpath = calloc(n + 1, sizeof(wchar_t));
	mbstowcs(wpath, path, n + 1);
	NVSDK_NGX_Result r = NVSDK_NGX_VULKAN_Init_with_ProjectID(project, NVSDK_NGX_ENGINE_TYPE_CUSTOM,
		version, wpath,
		(VkInstance)(uintptr_t)instance, (VkPhysicalDevice)(uintptr_t)physical, (VkDevice)(uintptr_t)device,
		NULL, NULL, NULL, NVSDK_NGX_Version_API);
	free(wpath);
	return r;
}

static NVSDK_NGX_Result ngx_shutdown(uint64_t device) {
	return NVSDK_NGX_VULKAN_Shutdown1((VkDevice)(uintptr_t)device);
}

static NVSDK_NGX_Result ngx_create(uint64_t device, uint64_t cmd, uint32_t feature,
	NVSDK_NGX_Parameter *params, NVSDK_NGX_Handle **out) {
	return NVSDK_NGX_VULKAN_CreateFeature1((VkDevice)(uintptr_t)device, (VkCommandBuffer)(uintptr_t)cmd,
		(NVSDK_NGX_Feature)feature, params, out);
}

static NVSDK_NGX_Result ngx_evaluate(uint64_t cmd, NVSDK_NGX_Handle *h, NVSDK_NGX_Parameter *params) {
	return NVSDK_NGX_VULKAN_EvaluateFeature_C((VkCommandBuffer)(uintptr_t)cmd, h, params, NULL);
}

static NVSDK_NGX_Result ngx_scratch(uint32_t feature, NVSDK_NGX_Parameter *params, size_t *size) {
	return NVSDK_NGX_VULKAN_GetScratchBufferSize((NVSDK_NGX_Feature)feature, params, size);
}

static NVSDK_NGX_Result ngx_optimal(NVSDK_NGX_Parameter *params, unsigned int w, unsigned int h, int q,
	unsigned int *ow, unsigned int *oh, unsigned int *maxw, unsigned int *maxh,
	unsigned int *minw, unsigned int *minh, float *sharpness) {
	return NGX_DLSS_GET_OPTIMAL_SETTINGS(params, w, h, (NVSDK_NGX_PerfQuality_Value)q,
		ow, oh, maxw, maxh, minw, minh, sharpness);
}

static NVSDK_NGX_Resource_VK *ngx_image_view(uint64_t view, uint64_t image,
	uint32_t aspect, uint32_t baseMip, uint32_t levels, uint32_t baseLayer, uint32_t layers,
	int32_t format, uint32_t width, uint32_t height, int readWrite) {
	NVSDK_NGX_Resource_VK *r = malloc(sizeof(*r));
	VkImageSubresourceRange rng = {aspect, baseMip, levels, baseLayer, layers};
	*r = NVSDK_NGX_Create_ImageView_Resource_VK((VkImageView)(uintptr_t)view, (VkImage)(uintptr_t)image,
		rng, (VkFormat)format, width, height, readWrite != 0);
	return r;
}

static float *ngx_matrix(const float *m) {
	float *c = malloc(16 * sizeof(float));
	memcpy(c, m, 16 * sizeof(float));
	return c;
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/gogpu/ngx"
	"github.com/gogpu/ngx/backend"
)

func init() {
	backend.Register(backend.EngineNative, func() ngx.Engine {
		return New()
	})
}

type feature struct {
	kind   ngx.FeatureKind
	handle *C.NVSDK_NGX_Handle
}

// Engine drives the NGX runtime through its Vulkan entry points.
type Engine struct {
	mu       sync.Mutex
	caps     *C.NVSDK_NGX_Parameter
	features map[ngx.FeatureHandle]feature
	next     ngx.FeatureHandle
}

// New returns an engine. Init must be called before any other method.
func New() *Engine {
	return &Engine{features: make(map[ngx.FeatureHandle]feature), next: 1}
}

// Name returns backend.EngineNative.
func (e *Engine) Name() string { return backend.EngineNative }

// Init initialises the runtime for the Vulkan device in info.
func (e *Engine) Init(info ngx.InitInfo) ngx.ResultCode {
	project := C.CString(info.ProjectID.String())
	defer C.free(unsafe.Pointer(project))
	version := C.CString(info.EngineVersion)
	defer C.free(unsafe.Pointer(version))
	path := C.CString(info.AppDataPath)
	defer C.free(unsafe.Pointer(path))

	code := result(C.ngx_init(project, version, path,
		C.uint64_t(info.Instance), C.uint64_t(info.PhysicalDevice), C.uint64_t(info.Device)))
	ngx.Logger().Debug("native: init", "result", code)
	return code
}

// Shutdown releases every feature and shuts the runtime down.
func (e *Engine) Shutdown(device ngx.Device) ngx.ResultCode {
	e.mu.Lock()
	defer e.mu.Unlock()
	for h, f := range e.features {
		if code := result(C.NVSDK_NGX_VULKAN_ReleaseFeature(f.handle)); !code.Succeeded() {
			ngx.Logger().Warn("native: release on shutdown", "handle", uint64(h), "result", code)
		}
	}
	clear(e.features)
	e.caps = nil
	return result(C.ngx_shutdown(C.uint64_t(device)))
}

// RequiredExtensions asks the runtime for its Vulkan extensions.
func (e *Engine) RequiredExtensions() (instance, device []string, code ngx.ResultCode) {
	var ic, dc C.uint
	var ie, de **C.char
	code = result(C.NVSDK_NGX_VULKAN_RequiredExtensions(&ic, &ie, &dc, &de))
	if !code.Succeeded() {
		return nil, nil, code
	}
	return goStrings(ie, ic), goStrings(de, dc), code
}

func goStrings(p **C.char, n C.uint) []string {
	if p == nil || n == 0 {
		return nil
	}
	out := make([]string, 0, n)
	for _, s := range unsafe.Slice(p, int(n)) {
		out = append(out, C.GoString(s))
	}
	return out
}

// CapabilityParameters copies the runtime capability keys into a store.
func (e *Engine) CapabilityParameters() (*ngx.ParameterStore, ngx.ResultCode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.caps == nil {
		if code := result(C.NVSDK_NGX_VULKAN_GetCapabilityParameters(&e.caps)); !code.Succeeded() {
			return nil, code
		}
	}
	st := ngx.NewParameterStore()
	for _, kind := range ngx.CapabilityFeatures() {
		ck, _ := ngx.CapabilityKeys(kind)
		for _, k := range ck.Keys() {
			readKey(e.caps, k, st)
		}
	}
	return st, ngx.Success
}

func readKey(p *C.NVSDK_NGX_Parameter, k ngx.Key, st *ngx.ParameterStore) {
	name := C.CString(k.String())
	defer C.free(unsafe.Pointer(name))
	switch k.Kind() {
	case ngx.KindInt:
		var v C.int
		if result(C.NVSDK_NGX_Parameter_GetI(p, name, &v)).Succeeded() {
			st.SetInt(k, int32(v))
		}
	case ngx.KindUint:
		var v C.uint
		if result(C.NVSDK_NGX_Parameter_GetUI(p, name, &v)).Succeeded() {
			st.SetUint(k, uint32(v))
		}
	}
}

// CreateFeature creates a feature from the creation keys in params.
func (e *Engine) CreateFeature(device ngx.Device, cmd ngx.CommandBuffer, _, _ uint32, params *ngx.ParameterStore, create ngx.CreateParams) (ngx.FeatureHandle, ngx.ResultCode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, code := allocate()
	if !code.Succeeded() {
		return ngx.NullFeature, code
	}
	defer C.NVSDK_NGX_VULKAN_DestroyParameters(p)
	mem := fill(p, params)
	defer mem.free()

	kind := create.Feature()
	var h *C.NVSDK_NGX_Handle
	code = result(C.ngx_create(C.uint64_t(device), C.uint64_t(cmd), C.uint32_t(kind), p, &h))
	if !code.Succeeded() {
		return ngx.NullFeature, code
	}

	fh := e.next
	e.next++
	e.features[fh] = feature{kind: kind, handle: h}
	if ck, ok := ngx.CapabilityKeys(kind); ok && e.caps != nil {
		readKey(e.caps, ck.FeatureInitResult, params)
	}
	return fh, code
}

// ReleaseFeature releases a feature created by CreateFeature.
func (e *Engine) ReleaseFeature(h ngx.FeatureHandle) ngx.ResultCode {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := e.features[h]
	if !ok {
		return ngx.FailFeatureNotFound
	}
	delete(e.features, h)
	return result(C.NVSDK_NGX_VULKAN_ReleaseFeature(f.handle))
}

// OptimalSettings runs the DLSS optimal settings query.
func (e *Engine) OptimalSettings(_ *ngx.ParameterStore, width, height uint32, q ngx.QualityPreset) (ngx.OptimalSettings, ngx.ResultCode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.caps == nil {
		return ngx.OptimalSettings{}, ngx.FailNotInitialized
	}
	var ow, oh, maxw, maxh, minw, minh C.uint
	var sharpness C.float
	code := result(C.ngx_optimal(e.caps, C.uint(width), C.uint(height), C.int(q),
		&ow, &oh, &maxw, &maxh, &minw, &minh, &sharpness))
	return ngx.OptimalSettings{
		RenderWidth:      uint32(ow),
		RenderHeight:     uint32(oh),
		DynamicMaxWidth:  uint32(maxw),
		DynamicMaxHeight: uint32(maxh),
		DynamicMinWidth:  uint32(minw),
		DynamicMinHeight: uint32(minh),
		Sharpness:        float32(sharpness),
	}, code
}

// ScratchBufferSize asks the runtime for the scratch size of kind.
func (e *Engine) ScratchBufferSize(kind ngx.FeatureKind, params *ngx.ParameterStore) (uint64, ngx.ResultCode) {
	p, code := allocate()
	if !code.Succeeded() {
		return 0, code
	}
	defer C.NVSDK_NGX_VULKAN_DestroyParameters(p)
	mem := fill(p, params)
	defer mem.free()

	var size C.size_t
	code = result(C.ngx_scratch(C.uint32_t(kind), p, &size))
	return uint64(size), code
}

// EvaluateFeature copies params into a runtime parameter block and records
// the evaluation of h into cmd.
func (e *Engine) EvaluateFeature(cmd ngx.CommandBuffer, h ngx.FeatureHandle, params *ngx.ParameterStore) ngx.ResultCode {
	e.mu.Lock()
	f, ok := e.features[h]
	e.mu.Unlock()
	if !ok {
		return ngx.FailFeatureNotFound
	}

	p, code := allocate()
	if !code.Succeeded() {
		return code
	}
	defer C.NVSDK_NGX_VULKAN_DestroyParameters(p)
	mem := fill(p, params)
	defer mem.free()

	return result(C.ngx_evaluate(C.uint64_t(cmd), f.handle, p))
}

func allocate() (*C.NVSDK_NGX_Parameter, ngx.ResultCode) {
	var p *C.NVSDK_NGX_Parameter
	code := result(C.NVSDK_NGX_VULKAN_AllocateParameters(&p))
	return p, code
}

// cmem is C memory that must outlive a runtime call.
type cmem []unsafe.Pointer

func (m cmem) free() {
	for _, p := range m {
		C.free(p)
	}
}

// fill copies every entry of st into p. Resource and matrix payloads are
// copied into C memory that the caller frees after the runtime call.
func fill(p *C.NVSDK_NGX_Parameter, st *ngx.ParameterStore) cmem {
	var mem cmem
	st.Range(func(k ngx.Key, v ngx.Value) bool {
		name := C.CString(k.String())
		mem = append(mem, unsafe.Pointer(name))
		switch v.Kind() {
		case ngx.KindFloat:
			f, _ := v.Float()
			C.NVSDK_NGX_Parameter_SetF(p, name, C.float(f))
		case ngx.KindInt:
			i, _ := v.Int()
			C.NVSDK_NGX_Parameter_SetI(p, name, C.int(i))
		case ngx.KindUint:
			u, _ := v.Uint()
			C.NVSDK_NGX_Parameter_SetUI(p, name, C.uint(u))
		case ngx.KindPointer:
			ptr, _ := v.Pointer()
			c := cPointer(ptr)
			if c == nil {
				ngx.Logger().Warn("native: unsupported pointer payload", "key", k, "type", fmt.Sprintf("%T", ptr))
				return true
			}
			mem = append(mem, c)
			C.NVSDK_NGX_Parameter_SetVoidPointer(p, name, c)
		}
		return true
	})
	return mem
}

func cPointer(ptr any) unsafe.Pointer {
	switch x := ptr.(type) {
	case *ngx.ResourceBinding:
		rw := C.int(0)
		if x.ReadWrite {
			rw = 1
		}
		return unsafe.Pointer(C.ngx_image_view(C.uint64_t(x.View), C.uint64_t(x.Image),
			C.uint32_t(x.Range.AspectMask), C.uint32_t(x.Range.BaseMipLevel), C.uint32_t(x.Range.LevelCount),
			C.uint32_t(x.Range.BaseArrayLayer), C.uint32_t(x.Range.LayerCount),
			C.int32_t(x.Format), C.uint32_t(x.Width), C.uint32_t(x.Height), rw))
	case *[16]float32:
		return unsafe.Pointer(C.ngx_matrix((*C.float)(unsafe.Pointer(&x[0]))))
	}
	return nil
}

func result(r C.NVSDK_NGX_Result) ngx.ResultCode {
	return ngx.ResultCode(uint32(r))
}
