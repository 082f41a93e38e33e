package ngx

// The field tables below drive validation and population. Each descriptor
// type has one schema; the marshaller walks it in order, so every key is
// written by exactly one field.

type bindingField[D any] struct {
	name      string
	key       Key
	mandatory bool
	get       func(*D) *ResourceBinding
}

type scalarField[D any] struct {
	key Key
	get func(*D) Value
}

type matrixField[D any] struct {
	key Key
	get func(*D) *[16]float32
}

type schema[D any] struct {
	bindings []bindingField[D]
	// gbuffer returns the auxiliary channel array, or nil when the
	// descriptor has none.
	gbuffer  func(*D) *[GBufferSlots]*ResourceBinding
	matrices []matrixField[D]
	scalars  []scalarField[D]
}

// validate checks every mandatory binding and stops at the first missing
// one. A nil descriptor pointer is ErrNilDescriptor.
func (s *schema[D]) validate(d *D) error {
	if d == nil {
		return ErrNilDescriptor
	}
	for _, f := range s.bindings {
		if err := ValidateBinding(f.name, f.get(d), f.mandatory); err != nil {
			return err
		}
	}
	return nil
}

// populate writes every present binding and every scalar of d into st.
func (s *schema[D]) populate(d *D, st *ParameterStore) {
	for _, f := range s.bindings {
		if b := f.get(d); b.Present() {
			st.SetPointer(f.key, b)
		}
	}
	if s.gbuffer != nil {
		for i, b := range s.gbuffer(d) {
			if b.Present() {
				st.SetPointer(gbufferKeys[i], b)
			}
		}
	}
	for _, f := range s.matrices {
		if m := f.get(d); m != nil {
			st.SetPointer(f.key, m)
		}
	}
	for _, f := range s.scalars {
		st.Set(f.key, f.get(d))
	}
}

// subrectFields returns the scalar fields of a subrect base.
func subrectFields[D any](kx, ky Key, get func(*D) Coordinates) []scalarField[D] {
	return []scalarField[D]{
		{kx, func(d *D) Value { return UintValue(get(d).X) }},
		{ky, func(d *D) Value { return UintValue(get(d).Y) }},
	}
}

func concat[T any](parts ...[]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

type ssEval = SuperSamplingEval

var superSamplingSchema = &schema[ssEval]{
	bindings: []bindingField[ssEval]{
		{"color", KeyColor, true, func(d *ssEval) *ResourceBinding { return d.Color }},
		{"output", KeyOutput, true, func(d *ssEval) *ResourceBinding { return d.Output }},
		{"depth", KeyDepth, false, func(d *ssEval) *ResourceBinding { return d.Depth }},
		{"motionVectors", KeyMotionVectors, false, func(d *ssEval) *ResourceBinding { return d.MotionVectors }},
		{"transparencyMask", KeyTransparencyMask, false, func(d *ssEval) *ResourceBinding { return d.TransparencyMask }},
		{"exposureTexture", KeyExposureTexture, false, func(d *ssEval) *ResourceBinding { return d.ExposureTexture }},
		{"biasCurrentColorMask", KeyBiasCurrentColorMask, false, func(d *ssEval) *ResourceBinding { return d.BiasCurrentColorMask }},
		{"motionVectors3D", KeyMotionVectors3D, false, func(d *ssEval) *ResourceBinding { return d.MotionVectors3D }},
		{"isParticleMask", KeyIsParticleMask, false, func(d *ssEval) *ResourceBinding { return d.IsParticleMask }},
		{"animatedTextureMask", KeyAnimatedTextureMask, false, func(d *ssEval) *ResourceBinding { return d.AnimatedTextureMask }},
		{"depthHighRes", KeyDepthHighRes, false, func(d *ssEval) *ResourceBinding { return d.DepthHighRes }},
		{"positionViewSpace", KeyPositionViewSpace, false, func(d *ssEval) *ResourceBinding { return d.PositionViewSpace }},
		{"rayTracingHitDistance", KeyRayTracingHitDistance, false, func(d *ssEval) *ResourceBinding { return d.RayTracingHitDistance }},
		{"motionVectorsReflections", KeyMotionVectorsReflection, false, func(d *ssEval) *ResourceBinding { return d.MotionVectorsReflections }},
	},
	gbuffer: func(d *ssEval) *[GBufferSlots]*ResourceBinding { return &d.GBuffer },
	scalars: concat(
		[]scalarField[ssEval]{
			{KeyJitterOffsetX, func(d *ssEval) Value { return FloatValue(d.JitterOffsetX) }},
			{KeyJitterOffsetY, func(d *ssEval) Value { return FloatValue(d.JitterOffsetY) }},
			{KeySharpness, func(d *ssEval) Value { return FloatValue(d.Sharpness) }},
			{KeyReset, func(d *ssEval) Value { return BoolValue(d.Reset) }},
			{KeyMVScaleX, func(d *ssEval) Value { return FloatValue(d.MVScaleX.Or(1)) }},
			{KeyMVScaleY, func(d *ssEval) Value { return FloatValue(d.MVScaleY.Or(1)) }},
			{KeyTonemapperType, func(d *ssEval) Value { return UintValue(uint32(d.ToneMapper)) }},
			{KeyFrameTimeDeltaMsec, func(d *ssEval) Value { return FloatValue(d.FrameTimeDeltaMsec) }},
			{KeyPreExposure, func(d *ssEval) Value { return FloatValue(d.PreExposure.Or(1)) }},
			{KeyExposureScale, func(d *ssEval) Value { return FloatValue(d.ExposureScale.Or(1)) }},
			{KeyIndicatorInvertX, func(d *ssEval) Value { return BoolValue(d.IndicatorInvertX) }},
			{KeyIndicatorInvertY, func(d *ssEval) Value { return BoolValue(d.IndicatorInvertY) }},
			{KeyRenderSubrectWidth, func(d *ssEval) Value { return UintValue(d.RenderSubrectDimensions.Width) }},
			{KeyRenderSubrectHeight, func(d *ssEval) Value { return UintValue(d.RenderSubrectDimensions.Height) }},
		},
		subrectFields(KeyColorSubrectBaseX, KeyColorSubrectBaseY, func(d *ssEval) Coordinates { return d.ColorSubrectBase }),
		subrectFields(KeyDepthSubrectBaseX, KeyDepthSubrectBaseY, func(d *ssEval) Coordinates { return d.DepthSubrectBase }),
		subrectFields(KeyMVSubrectBaseX, KeyMVSubrectBaseY, func(d *ssEval) Coordinates { return d.MVSubrectBase }),
		subrectFields(KeyTranslucencySubrectBaseX, KeyTranslucencySubrectBaseY, func(d *ssEval) Coordinates { return d.TranslucencySubrectBase }),
		subrectFields(KeyBiasCurrentColorSubrectBaseX, KeyBiasCurrentColorSubrectBaseY, func(d *ssEval) Coordinates { return d.BiasCurrentColorSubrectBase }),
		subrectFields(KeyOutputSubrectBaseX, KeyOutputSubrectBaseY, func(d *ssEval) Coordinates { return d.OutputSubrectBase }),
	),
}

// Feature returns FeatureSuperSampling.
func (d *SuperSamplingEval) Feature() FeatureKind { return FeatureSuperSampling }

func (d *SuperSamplingEval) validate() error { return superSamplingSchema.validate(d) }

func (d *SuperSamplingEval) populate(st *ParameterStore) { superSamplingSchema.populate(d, st) }
