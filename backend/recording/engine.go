package recording

import (
	"sync"

	"github.com/gogpu/ngx"
	"github.com/gogpu/ngx/backend"
)

// Evaluation is one recorded EvaluateFeature call.
type Evaluation struct {
	Command ngx.CommandBuffer
	Feature ngx.FeatureHandle
	Kind    ngx.FeatureKind
	// Params is a copy of the store as the engine received it.
	Params *ngx.ParameterStore
}

type feature struct {
	kind   ngx.FeatureKind
	params *ngx.ParameterStore
}

// Engine is the recording ngx.Engine. It is safe for concurrent use so
// tests can inspect it while a frame is being recorded.
type Engine struct {
	mu sync.Mutex

	initialised bool
	info        ngx.InitInfo
	caps        *ngx.ParameterStore
	features    map[ngx.FeatureHandle]*feature
	next        ngx.FeatureHandle
	evaluations []Evaluation
	failNext    ngx.ResultCode
}

// Option configures an Engine.
type Option func(*Engine)

// WithDriverUpdate makes the capability store report that kind needs a
// driver of at least major.minor.
func WithDriverUpdate(kind ngx.FeatureKind, major, minor uint32) Option {
	return func(e *Engine) {
		k := capabilityKeysFor(kind)
		e.caps.SetInt(k.NeedsUpdatedDriver, 1)
		e.caps.SetUint(k.MinDriverMajor, major)
		e.caps.SetUint(k.MinDriverMinor, minor)
	}
}

// WithUnavailable makes the capability store report kind as unavailable.
func WithUnavailable(kind ngx.FeatureKind) Option {
	return func(e *Engine) {
		e.caps.SetInt(capabilityKeysFor(kind).Available, 0)
	}
}

// New returns an engine that supports super sampling and ray
// reconstruction.
func New(opts ...Option) *Engine {
	e := &Engine{
		caps:     defaultCapabilities(),
		features: make(map[ngx.FeatureHandle]*feature),
		next:     1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns backend.EngineRecording.
func (e *Engine) Name() string { return backend.EngineRecording }

// FailNext makes the next engine call return code instead of running.
func (e *Engine) FailNext(code ngx.ResultCode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failNext = code
}

// takeFailure returns and clears a pending failure. Callers hold mu.
func (e *Engine) takeFailure() (ngx.ResultCode, bool) {
	if e.failNext == 0 || e.failNext.Succeeded() {
		return ngx.Success, false
	}
	code := e.failNext
	e.failNext = 0
	return code, true
}

// Init records the application identity.
func (e *Engine) Init(info ngx.InitInfo) ngx.ResultCode {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code, ok := e.takeFailure(); ok {
		return code
	}
	e.info = info
	e.initialised = true
	ngx.Logger().Debug("recording: init", "project", info.ProjectID, "engineVersion", info.EngineVersion)
	return ngx.Success
}

// InitInfo returns the identity passed to Init.
func (e *Engine) InitInfo() ngx.InitInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.info
}

// Shutdown releases every feature.
func (e *Engine) Shutdown(ngx.Device) ngx.ResultCode {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code, ok := e.takeFailure(); ok {
		return code
	}
	if !e.initialised {
		return ngx.FailNotInitialized
	}
	e.initialised = false
	clear(e.features)
	return ngx.Success
}

// RequiredExtensions returns the extensions the NGX Vulkan runtime needs.
func (e *Engine) RequiredExtensions() (instance, device []string, code ngx.ResultCode) {
	instance = []string{
		"VK_KHR_get_physical_device_properties2",
		"VK_KHR_external_memory_capabilities",
	}
	device = []string{
		"VK_NVX_binary_import",
		"VK_NVX_image_view_handle",
		"VK_KHR_push_descriptor",
	}
	return instance, device, ngx.Success
}

// CapabilityParameters returns a copy of the capability store.
func (e *Engine) CapabilityParameters() (*ngx.ParameterStore, ngx.ResultCode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code, ok := e.takeFailure(); ok {
		return nil, code
	}
	if !e.initialised {
		return nil, ngx.FailNotInitialized
	}
	return e.caps.Clone(), ngx.Success
}

// CreateFeature records a feature after checking the creation keys.
func (e *Engine) CreateFeature(_ ngx.Device, _ ngx.CommandBuffer, _, _ uint32, params *ngx.ParameterStore, create ngx.CreateParams) (ngx.FeatureHandle, ngx.ResultCode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code, ok := e.takeFailure(); ok {
		return ngx.NullFeature, code
	}
	if !e.initialised {
		return ngx.NullFeature, ngx.FailNotInitialized
	}

	kind := create.Feature()
	switch kind {
	case ngx.FeatureSuperSampling, ngx.FeatureRayReconstruction:
	default:
		return ngx.NullFeature, ngx.FailFeatureNotSupported
	}
	ck := capabilityKeysFor(kind)
	if avail, _ := e.caps.Int(ck.Available); avail == 0 {
		return ngx.NullFeature, ngx.FailFeatureNotSupported
	}
	if needs, _ := e.caps.Bool(ck.NeedsUpdatedDriver); needs {
		return ngx.NullFeature, ngx.FailOutOfDate
	}
	for _, k := range []ngx.Key{ngx.KeyWidth, ngx.KeyHeight, ngx.KeyOutWidth, ngx.KeyOutHeight} {
		if v, _ := params.Uint(k); v == 0 {
			return ngx.NullFeature, ngx.FailInvalidParameter
		}
	}

	h := e.next
	e.next++
	params.SetInt(ck.FeatureInitResult, 1)
	e.features[h] = &feature{kind: kind, params: params.Clone()}
	ngx.Logger().Debug("recording: feature created", "feature", kind, "handle", uint64(h))
	return h, ngx.Success
}

// ReleaseFeature forgets a feature.
func (e *Engine) ReleaseFeature(h ngx.FeatureHandle) ngx.ResultCode {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code, ok := e.takeFailure(); ok {
		return code
	}
	if _, ok := e.features[h]; !ok {
		return ngx.FailFeatureNotFound
	}
	delete(e.features, h)
	return ngx.Success
}

// OptimalSettings answers from the DLSS scaling ratios.
func (e *Engine) OptimalSettings(_ *ngx.ParameterStore, width, height uint32, q ngx.QualityPreset) (ngx.OptimalSettings, ngx.ResultCode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code, ok := e.takeFailure(); ok {
		return ngx.OptimalSettings{}, code
	}
	return optimalSettings(width, height, q), ngx.Success
}

// ScratchBufferSize returns a size proportional to the render resolution.
func (e *Engine) ScratchBufferSize(kind ngx.FeatureKind, params *ngx.ParameterStore) (uint64, ngx.ResultCode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code, ok := e.takeFailure(); ok {
		return 0, code
	}
	w, _ := params.Uint(ngx.KeyWidth)
	h, _ := params.Uint(ngx.KeyHeight)
	perPixel := uint64(8)
	if kind == ngx.FeatureRayReconstruction {
		perPixel = 16
	}
	return uint64(w) * uint64(h) * perPixel, ngx.Success
}

// EvaluateFeature checks the inputs of h and records a snapshot of params.
func (e *Engine) EvaluateFeature(cmd ngx.CommandBuffer, h ngx.FeatureHandle, params *ngx.ParameterStore) ngx.ResultCode {
	e.mu.Lock()
	defer e.mu.Unlock()
	if code, ok := e.takeFailure(); ok {
		return code
	}
	if !e.initialised {
		return ngx.FailNotInitialized
	}
	f, ok := e.features[h]
	if !ok {
		return ngx.FailFeatureNotFound
	}
	if code := checkInputs(f.kind, params); !code.Succeeded() {
		ngx.Logger().Debug("recording: rejected evaluation", "feature", f.kind, "result", code)
		return code
	}
	e.evaluations = append(e.evaluations, Evaluation{
		Command: cmd,
		Feature: h,
		Kind:    f.kind,
		Params:  params.Clone(),
	})
	return ngx.Success
}

// checkInputs validates the resources of an evaluation the way the NGX
// runtime does.
func checkInputs(kind ngx.FeatureKind, params *ngx.ParameterStore) ngx.ResultCode {
	required := []ngx.Key{ngx.KeyColor, ngx.KeyOutput}
	if kind == ngx.FeatureRayReconstruction {
		required = append(required,
			ngx.KeyDepth, ngx.KeyMotionVectors,
			ngx.KeyDiffuseAlbedo, ngx.KeySpecularAlbedo,
			ngx.KeyGBufferNormals, ngx.KeyGBufferRoughness)
	}
	for _, k := range required {
		if _, ok := params.Binding(k); !ok {
			return ngx.FailMissingInput
		}
	}
	out, _ := params.Binding(ngx.KeyOutput)
	if !out.ReadWrite {
		return ngx.FailRWFlagMissing
	}
	return ngx.Success
}

// Evaluations returns the recorded evaluations in call order.
func (e *Engine) Evaluations() []Evaluation {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Evaluation, len(e.evaluations))
	copy(out, e.evaluations)
	return out
}

// Last returns the most recent evaluation.
func (e *Engine) Last() (Evaluation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.evaluations) == 0 {
		return Evaluation{}, ErrNoEvaluation
	}
	return e.evaluations[len(e.evaluations)-1], nil
}

// Features returns the number of live features.
func (e *Engine) Features() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.features)
}

// FeatureKind returns the kind of a live feature.
func (e *Engine) FeatureKind(h ngx.FeatureHandle) (ngx.FeatureKind, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := e.features[h]
	if !ok {
		return 0, false
	}
	return f.kind, true
}
