package ngx

// ToneMapper selects the tone mapping operator the application applied to
// the color input.
type ToneMapper uint32

// Tone mappers.
const (
	ToneMapperString ToneMapper = iota
	ToneMapperReinhard
	ToneMapperOneOverLuma
	ToneMapperACES
)

// SuperSamplingEval is the per-frame request for a super sampling
// evaluation.
//
// Color and Output are mandatory. Every other binding is optional: a nil
// binding (or one with a null view) is simply not passed to the engine.
// The bridge reads the descriptor once per evaluation and never modifies
// it.
type SuperSamplingEval struct {
	Color  *ResourceBinding
	Output *ResourceBinding

	Depth                    *ResourceBinding
	MotionVectors            *ResourceBinding
	TransparencyMask         *ResourceBinding
	ExposureTexture          *ResourceBinding
	BiasCurrentColorMask     *ResourceBinding
	MotionVectors3D          *ResourceBinding
	IsParticleMask           *ResourceBinding
	AnimatedTextureMask      *ResourceBinding
	DepthHighRes             *ResourceBinding
	PositionViewSpace        *ResourceBinding
	RayTracingHitDistance    *ResourceBinding
	MotionVectorsReflections *ResourceBinding

	// GBuffer holds the auxiliary channels, indexed by the GBuffer*
	// constants for slots 0 to 7. Slots 8 to 15 are generic.
	GBuffer [GBufferSlots]*ResourceBinding

	JitterOffsetX float32
	JitterOffsetY float32
	Sharpness     float32
	Reset         bool
	// MVScaleX and MVScaleY scale the motion vectors into pixel space.
	// Unspecified scales resolve to 1.
	MVScaleX OptFloat32
	MVScaleY OptFloat32
	// PreExposure and ExposureScale resolve to 1 when unspecified.
	PreExposure        OptFloat32
	ExposureScale      OptFloat32
	ToneMapper         ToneMapper
	FrameTimeDeltaMsec float32
	IndicatorInvertX   bool
	IndicatorInvertY   bool

	ColorSubrectBase            Coordinates
	DepthSubrectBase            Coordinates
	MVSubrectBase               Coordinates
	TranslucencySubrectBase     Coordinates
	BiasCurrentColorSubrectBase Coordinates
	OutputSubrectBase           Coordinates
	RenderSubrectDimensions     Extent2D
}

// SetMotionVectors binds the motion vectors. A nil scale leaves both
// scales unspecified, meaning the vectors are already in pixel space.
func (d *SuperSamplingEval) SetMotionVectors(b *ResourceBinding, scale *[2]float32) {
	d.MotionVectors = b
	if scale == nil {
		d.MVScaleX, d.MVScaleY = OptFloat32{}, OptFloat32{}
		return
	}
	d.MVScaleX, d.MVScaleY = Float(scale[0]), Float(scale[1])
}

// SetJitterOffsets sets the sub-pixel jitter applied to the projection.
func (d *SuperSamplingEval) SetJitterOffsets(x, y float32) {
	d.JitterOffsetX, d.JitterOffsetY = x, y
}

// SetRenderingDimensions places the rendered area at offset within the
// color, depth, translucency and motion vector resources and sets its
// size.
func (d *SuperSamplingEval) SetRenderingDimensions(offset, size [2]uint32) {
	base := Coordinates{X: offset[0], Y: offset[1]}
	d.ColorSubrectBase = base
	d.DepthSubrectBase = base
	d.TranslucencySubrectBase = base
	d.MVSubrectBase = base
	d.RenderSubrectDimensions = Extent2D{Width: size[0], Height: size[1]}
}
