package ngx

import "fmt"

// Feature is a created engine feature.
type Feature struct {
	engine     Engine
	kind       FeatureKind
	handle     FeatureHandle
	params     *ParameterStore
	dispatcher *Dispatcher
	released   bool
}

// Kind returns the feature kind.
func (f *Feature) Kind() FeatureKind { return f.kind }

// Handle returns the engine handle, or NullFeature once released.
func (f *Feature) Handle() FeatureHandle {
	if f.released {
		return NullFeature
	}
	return f.handle
}

// Parameters returns the store the feature was created with. The engine
// may have written results into it.
func (f *Feature) Parameters() *ParameterStore { return f.params }

// IsInitialised reports whether the engine flagged the feature as
// initialised in its creation parameters.
func (f *Feature) IsInitialised() bool {
	return IsInitialised(f.params, f.kind)
}

// ScratchBufferSize returns the scratch memory the feature needs.
func (f *Feature) ScratchBufferSize() (uint64, error) {
	if f.released {
		return 0, ErrReleased
	}
	size, code := f.engine.ScratchBufferSize(f.kind, f.params)
	if err := resultError("ScratchBufferSize", code); err != nil {
		return 0, err
	}
	return size, nil
}

// Evaluate marshals desc and records the evaluation into cmd.
func (f *Feature) Evaluate(cmd CommandBuffer, desc Descriptor) error {
	if f.released {
		return ErrReleased
	}
	if desc != nil && desc.Feature() != f.kind {
		return fmt.Errorf("%w: %s descriptor for %s feature", ErrFeatureMismatch, desc.Feature(), f.kind)
	}
	return f.dispatcher.Dispatch(cmd, f.handle, desc)
}

// State returns the marshalling state of the last evaluation.
func (f *Feature) State() MarshalState { return f.dispatcher.State() }

// Release frees the feature. Releasing twice is a no-op.
func (f *Feature) Release() error {
	if f.released {
		return nil
	}
	f.released = true
	code := f.engine.ReleaseFeature(f.handle)
	if !code.Succeeded() {
		Logger().Warn("ngx: release feature failed", "feature", f.kind, "result", code)
	}
	return resultError("ReleaseFeature", code)
}

// SuperSamplingFeature is a super sampling feature with its evaluation
// parameters.
type SuperSamplingFeature struct {
	feature *Feature
	render  Extent2D
	target  Extent2D
	params  SuperSamplingEval
}

// NewSuperSamplingFeature wraps f, which must be a super sampling feature.
func NewSuperSamplingFeature(f *Feature, render, target Extent2D) (*SuperSamplingFeature, error) {
	if f.kind != FeatureSuperSampling {
		return nil, fmt.Errorf("%w: %s is not %s", ErrFeatureMismatch, f.kind, FeatureSuperSampling)
	}
	return &SuperSamplingFeature{feature: f, render: render, target: target}, nil
}

// Inner returns the wrapped feature.
func (s *SuperSamplingFeature) Inner() *Feature { return s.feature }

// RenderingResolution returns the input resolution.
func (s *SuperSamplingFeature) RenderingResolution() Extent2D { return s.render }

// TargetResolution returns the output resolution.
func (s *SuperSamplingFeature) TargetResolution() Extent2D { return s.target }

// EvaluationParameters returns the descriptor evaluated by Evaluate.
// Callers update it every frame.
func (s *SuperSamplingFeature) EvaluationParameters() *SuperSamplingEval { return &s.params }

// IsInitialised reports whether the engine initialised the feature.
func (s *SuperSamplingFeature) IsInitialised() bool { return s.feature.IsInitialised() }

// Evaluate records the evaluation of the current parameters into cmd.
func (s *SuperSamplingFeature) Evaluate(cmd CommandBuffer) error {
	return s.feature.Evaluate(cmd, &s.params)
}

// Release frees the feature.
func (s *SuperSamplingFeature) Release() error { return s.feature.Release() }

// RayReconstructionFeature is a ray reconstruction feature with its
// evaluation parameters.
type RayReconstructionFeature struct {
	feature *Feature
	render  Extent2D
	target  Extent2D
	params  RayReconstructionEval
}

// NewRayReconstructionFeature wraps f, which must be a ray reconstruction
// feature.
func NewRayReconstructionFeature(f *Feature, render, target Extent2D) (*RayReconstructionFeature, error) {
	if f.kind != FeatureRayReconstruction {
		return nil, fmt.Errorf("%w: %s is not %s", ErrFeatureMismatch, f.kind, FeatureRayReconstruction)
	}
	return &RayReconstructionFeature{feature: f, render: render, target: target}, nil
}

// Inner returns the wrapped feature.
func (r *RayReconstructionFeature) Inner() *Feature { return r.feature }

// RenderingResolution returns the input resolution.
func (r *RayReconstructionFeature) RenderingResolution() Extent2D { return r.render }

// TargetResolution returns the output resolution.
func (r *RayReconstructionFeature) TargetResolution() Extent2D { return r.target }

// EvaluationParameters returns the descriptor evaluated by Evaluate.
func (r *RayReconstructionFeature) EvaluationParameters() *RayReconstructionEval { return &r.params }

// IsInitialised reports whether the engine initialised the feature.
func (r *RayReconstructionFeature) IsInitialised() bool { return r.feature.IsInitialised() }

// Evaluate records the evaluation of the current parameters into cmd.
func (r *RayReconstructionFeature) Evaluate(cmd CommandBuffer) error {
	return r.feature.Evaluate(cmd, &r.params)
}

// Release frees the feature.
func (r *RayReconstructionFeature) Release() error { return r.feature.Release() }
