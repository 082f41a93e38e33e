package ngx

// CreateParams describes a feature to create. Apply writes the creation
// keys into the store handed to Engine.CreateFeature.
type CreateParams interface {
	Feature() FeatureKind
	Apply(st *ParameterStore)
}

// DenoiseMode selects the ray reconstruction denoiser.
type DenoiseMode int32

// Denoise modes.
const (
	DenoiseOff DenoiseMode = iota
	DenoiseDLUnified
)

// RoughnessMode tells whether roughness is packed into the normals alpha.
type RoughnessMode int32

// Roughness modes.
const (
	RoughnessUnpacked RoughnessMode = iota
	RoughnessPacked
)

// DepthType tells whether depth is linear or hardware depth.
type DepthType int32

// Depth types.
const (
	DepthLinear DepthType = iota
	DepthHardware
)

// SuperSamplingCreateParams creates a super sampling feature.
type SuperSamplingCreateParams struct {
	RenderWidth  uint32
	RenderHeight uint32
	TargetWidth  uint32
	TargetHeight uint32
	Quality      QualityPreset
	Flags        FeatureFlags
}

// SuperSamplingFromSettings builds creation parameters from an optimal
// settings answer, with auto exposure and low resolution motion vectors.
func SuperSamplingFromSettings(s OptimalSettings) SuperSamplingCreateParams {
	return SuperSamplingCreateParams{
		RenderWidth:  s.RenderWidth,
		RenderHeight: s.RenderHeight,
		TargetWidth:  s.TargetWidth,
		TargetHeight: s.TargetHeight,
		Quality:      s.Quality,
		Flags:        FlagAutoExposure | FlagMVLowRes,
	}
}

// Feature returns FeatureSuperSampling.
func (p SuperSamplingCreateParams) Feature() FeatureKind { return FeatureSuperSampling }

// Apply writes the creation keys.
func (p SuperSamplingCreateParams) Apply(st *ParameterStore) {
	st.SetUint(KeyWidth, p.RenderWidth)
	st.SetUint(KeyHeight, p.RenderHeight)
	st.SetUint(KeyOutWidth, p.TargetWidth)
	st.SetUint(KeyOutHeight, p.TargetHeight)
	st.SetInt(KeyPerfQualityValue, int32(p.Quality))
	st.SetInt(KeyCreateFlags, int32(p.Flags))
}

// RayReconstructionCreateParams creates a ray reconstruction feature. The
// zero values of the mode fields are the engine defaults except for
// DenoiseMode, see NewRayReconstructionCreateParams.
type RayReconstructionCreateParams struct {
	RenderWidth   uint32
	RenderHeight  uint32
	TargetWidth   uint32
	TargetHeight  uint32
	Quality       QualityPreset
	Flags         FeatureFlags
	DenoiseMode   DenoiseMode
	RoughnessMode RoughnessMode
	DepthType     DepthType
}

// NewRayReconstructionCreateParams returns parameters with the unified
// denoiser, unpacked roughness and linear depth.
func NewRayReconstructionCreateParams(renderWidth, renderHeight, targetWidth, targetHeight uint32, q QualityPreset) RayReconstructionCreateParams {
	return RayReconstructionCreateParams{
		RenderWidth:   renderWidth,
		RenderHeight:  renderHeight,
		TargetWidth:   targetWidth,
		TargetHeight:  targetHeight,
		Quality:       q,
		DenoiseMode:   DenoiseDLUnified,
		RoughnessMode: RoughnessUnpacked,
		DepthType:     DepthLinear,
	}
}

// RayReconstructionFromSettings builds creation parameters from an optimal
// settings answer.
func RayReconstructionFromSettings(s OptimalSettings) RayReconstructionCreateParams {
	return NewRayReconstructionCreateParams(s.RenderWidth, s.RenderHeight, s.TargetWidth, s.TargetHeight, s.Quality)
}

// Feature returns FeatureRayReconstruction.
func (p RayReconstructionCreateParams) Feature() FeatureKind { return FeatureRayReconstruction }

// Apply writes the creation keys.
func (p RayReconstructionCreateParams) Apply(st *ParameterStore) {
	st.SetUint(KeyWidth, p.RenderWidth)
	st.SetUint(KeyHeight, p.RenderHeight)
	st.SetUint(KeyOutWidth, p.TargetWidth)
	st.SetUint(KeyOutHeight, p.TargetHeight)
	st.SetInt(KeyPerfQualityValue, int32(p.Quality))
	st.SetInt(KeyCreateFlags, int32(p.Flags))
	st.SetInt(KeyDenoiseMode, int32(p.DenoiseMode))
	st.SetInt(KeyRoughnessMode, int32(p.RoughnessMode))
	st.SetInt(KeyUseHWDepth, int32(p.DepthType))
}

// GenericCreateParams creates a feature that takes no creation keys, such
// as frame generation.
type GenericCreateParams struct {
	Kind FeatureKind
}

// Feature returns p.Kind.
func (p GenericCreateParams) Feature() FeatureKind { return p.Kind }

// Apply writes nothing.
func (p GenericCreateParams) Apply(*ParameterStore) {}
