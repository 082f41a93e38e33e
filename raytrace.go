package ngx

// RayReconstructionEval is the per-frame request for a ray reconstruction
// (denoising super sampling) evaluation.
//
// Color, Output, Depth, MotionVectors, DiffuseAlbedo, SpecularAlbedo,
// Normals and Roughness are mandatory. Normals and Roughness travel under
// the G-buffer keys.
type RayReconstructionEval struct {
	Color          *ResourceBinding
	Output         *ResourceBinding
	Depth          *ResourceBinding
	MotionVectors  *ResourceBinding
	DiffuseAlbedo  *ResourceBinding
	SpecularAlbedo *ResourceBinding
	Normals        *ResourceBinding
	Roughness      *ResourceBinding

	TransparencyMask         *ResourceBinding
	ExposureTexture          *ResourceBinding
	BiasCurrentColorMask     *ResourceBinding
	SpecularHitDistance      *ResourceBinding
	ReflectedAlbedo          *ResourceBinding
	DisocclusionMask         *ResourceBinding
	TransparencyLayer        *ResourceBinding
	TransparencyLayerOpacity *ResourceBinding
	TransparencyLayerMvecs   *ResourceBinding
	SpecularMvec             *ResourceBinding
	MotionVectors3D          *ResourceBinding
	IsParticleMask           *ResourceBinding
	AnimatedTextureMask      *ResourceBinding
	DepthHighRes             *ResourceBinding
	PositionViewSpace        *ResourceBinding
	RayTracingHitDistance    *ResourceBinding
	MotionVectorsReflections *ResourceBinding

	// WorldToView and ViewToClip are row-major 4x4 matrices used with
	// SpecularHitDistance. Nil matrices are not passed.
	WorldToView *[16]float32
	ViewToClip  *[16]float32

	JitterOffsetX      float32
	JitterOffsetY      float32
	Reset              bool
	MVScaleX           OptFloat32
	MVScaleY           OptFloat32
	PreExposure        OptFloat32
	ExposureScale      OptFloat32
	ToneMapper         ToneMapper
	FrameTimeDeltaMsec float32

	ColorSubrectBase            Coordinates
	DepthSubrectBase            Coordinates
	MVSubrectBase               Coordinates
	TranslucencySubrectBase     Coordinates
	BiasCurrentColorSubrectBase Coordinates
	OutputSubrectBase           Coordinates
	RenderSubrectDimensions     Extent2D
}

// SetMotionVectors binds the motion vectors with an optional scale.
func (d *RayReconstructionEval) SetMotionVectors(b *ResourceBinding, scale *[2]float32) {
	d.MotionVectors = b
	if scale == nil {
		d.MVScaleX, d.MVScaleY = OptFloat32{}, OptFloat32{}
		return
	}
	d.MVScaleX, d.MVScaleY = Float(scale[0]), Float(scale[1])
}

// SetJitterOffsets sets the sub-pixel jitter applied to the projection.
func (d *RayReconstructionEval) SetJitterOffsets(x, y float32) {
	d.JitterOffsetX, d.JitterOffsetY = x, y
}

// SetRenderingDimensions places the rendered area at offset within the
// color, depth, translucency and motion vector resources and sets its
// size.
func (d *RayReconstructionEval) SetRenderingDimensions(offset, size [2]uint32) {
	base := Coordinates{X: offset[0], Y: offset[1]}
	d.ColorSubrectBase = base
	d.DepthSubrectBase = base
	d.TranslucencySubrectBase = base
	d.MVSubrectBase = base
	d.RenderSubrectDimensions = Extent2D{Width: size[0], Height: size[1]}
}

type rrEval = RayReconstructionEval

var rayReconstructionSchema = &schema[rrEval]{
	bindings: []bindingField[rrEval]{
		{"color", KeyColor, true, func(d *rrEval) *ResourceBinding { return d.Color }},
		{"output", KeyOutput, true, func(d *rrEval) *ResourceBinding { return d.Output }},
		{"depth", KeyDepth, true, func(d *rrEval) *ResourceBinding { return d.Depth }},
		{"motionVectors", KeyMotionVectors, true, func(d *rrEval) *ResourceBinding { return d.MotionVectors }},
		{"diffuseAlbedo", KeyDiffuseAlbedo, true, func(d *rrEval) *ResourceBinding { return d.DiffuseAlbedo }},
		{"specularAlbedo", KeySpecularAlbedo, true, func(d *rrEval) *ResourceBinding { return d.SpecularAlbedo }},
		{"normals", KeyGBufferNormals, true, func(d *rrEval) *ResourceBinding { return d.Normals }},
		{"roughness", KeyGBufferRoughness, true, func(d *rrEval) *ResourceBinding { return d.Roughness }},
		{"transparencyMask", KeyTransparencyMask, false, func(d *rrEval) *ResourceBinding { return d.TransparencyMask }},
		{"exposureTexture", KeyExposureTexture, false, func(d *rrEval) *ResourceBinding { return d.ExposureTexture }},
		{"biasCurrentColorMask", KeyBiasCurrentColorMask, false, func(d *rrEval) *ResourceBinding { return d.BiasCurrentColorMask }},
		{"specularHitDistance", KeySpecularHitDistance, false, func(d *rrEval) *ResourceBinding { return d.SpecularHitDistance }},
		{"reflectedAlbedo", KeyReflectedAlbedo, false, func(d *rrEval) *ResourceBinding { return d.ReflectedAlbedo }},
		{"disocclusionMask", KeyDisocclusionMask, false, func(d *rrEval) *ResourceBinding { return d.DisocclusionMask }},
		{"transparencyLayer", KeyTransparencyLayer, false, func(d *rrEval) *ResourceBinding { return d.TransparencyLayer }},
		{"transparencyLayerOpacity", KeyTransparencyLayerOpacity, false, func(d *rrEval) *ResourceBinding { return d.TransparencyLayerOpacity }},
		{"transparencyLayerMvecs", KeyTransparencyLayerMvecs, false, func(d *rrEval) *ResourceBinding { return d.TransparencyLayerMvecs }},
		{"specularMvec", KeySpecularMvec, false, func(d *rrEval) *ResourceBinding { return d.SpecularMvec }},
		{"motionVectors3D", KeyMotionVectors3D, false, func(d *rrEval) *ResourceBinding { return d.MotionVectors3D }},
		{"isParticleMask", KeyIsParticleMask, false, func(d *rrEval) *ResourceBinding { return d.IsParticleMask }},
		{"animatedTextureMask", KeyAnimatedTextureMask, false, func(d *rrEval) *ResourceBinding { return d.AnimatedTextureMask }},
		{"depthHighRes", KeyDepthHighRes, false, func(d *rrEval) *ResourceBinding { return d.DepthHighRes }},
		{"positionViewSpace", KeyPositionViewSpace, false, func(d *rrEval) *ResourceBinding { return d.PositionViewSpace }},
		{"rayTracingHitDistance", KeyRayTracingHitDistance, false, func(d *rrEval) *ResourceBinding { return d.RayTracingHitDistance }},
		{"motionVectorsReflections", KeyMotionVectorsReflection, false, func(d *rrEval) *ResourceBinding { return d.MotionVectorsReflections }},
	},
	matrices: []matrixField[rrEval]{
		{KeyWorldToViewMatrix, func(d *rrEval) *[16]float32 { return d.WorldToView }},
		{KeyViewToClipMatrix, func(d *rrEval) *[16]float32 { return d.ViewToClip }},
	},
	scalars: concat(
		[]scalarField[rrEval]{
			{KeyJitterOffsetX, func(d *rrEval) Value { return FloatValue(d.JitterOffsetX) }},
			{KeyJitterOffsetY, func(d *rrEval) Value { return FloatValue(d.JitterOffsetY) }},
			{KeyReset, func(d *rrEval) Value { return BoolValue(d.Reset) }},
			{KeyMVScaleX, func(d *rrEval) Value { return FloatValue(d.MVScaleX.Or(1)) }},
			{KeyMVScaleY, func(d *rrEval) Value { return FloatValue(d.MVScaleY.Or(1)) }},
			{KeyTonemapperType, func(d *rrEval) Value { return UintValue(uint32(d.ToneMapper)) }},
			{KeyFrameTimeDeltaMsec, func(d *rrEval) Value { return FloatValue(d.FrameTimeDeltaMsec) }},
			{KeyPreExposure, func(d *rrEval) Value { return FloatValue(d.PreExposure.Or(1)) }},
			{KeyExposureScale, func(d *rrEval) Value { return FloatValue(d.ExposureScale.Or(1)) }},
			{KeyRenderSubrectWidth, func(d *rrEval) Value { return UintValue(d.RenderSubrectDimensions.Width) }},
			{KeyRenderSubrectHeight, func(d *rrEval) Value { return UintValue(d.RenderSubrectDimensions.Height) }},
		},
		subrectFields(KeyColorSubrectBaseX, KeyColorSubrectBaseY, func(d *rrEval) Coordinates { return d.ColorSubrectBase }),
		subrectFields(KeyDepthSubrectBaseX, KeyDepthSubrectBaseY, func(d *rrEval) Coordinates { return d.DepthSubrectBase }),
		subrectFields(KeyMVSubrectBaseX, KeyMVSubrectBaseY, func(d *rrEval) Coordinates { return d.MVSubrectBase }),
		subrectFields(KeyTranslucencySubrectBaseX, KeyTranslucencySubrectBaseY, func(d *rrEval) Coordinates { return d.TranslucencySubrectBase }),
		subrectFields(KeyBiasCurrentColorSubrectBaseX, KeyBiasCurrentColorSubrectBaseY, func(d *rrEval) Coordinates { return d.BiasCurrentColorSubrectBase }),
		subrectFields(KeyOutputSubrectBaseX, KeyOutputSubrectBaseY, func(d *rrEval) Coordinates { return d.OutputSubrectBase }),
	),
}

// Feature returns FeatureRayReconstruction.
func (d *RayReconstructionEval) Feature() FeatureKind { return FeatureRayReconstruction }

func (d *RayReconstructionEval) validate() error { return rayReconstructionSchema.validate(d) }

func (d *RayReconstructionEval) populate(st *ParameterStore) { rayReconstructionSchema.populate(d, st) }
