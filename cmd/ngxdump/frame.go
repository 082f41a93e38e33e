package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ngx"
)

// frame is a frame description read from a TOML or YAML file.
type frame struct {
	Feature       string    `toml:"feature" yaml:"feature"`
	Quality       string    `toml:"quality" yaml:"quality"`
	Target        extent    `toml:"target" yaml:"target"`
	Render        extent    `toml:"render" yaml:"render"`
	Jitter        []float32 `toml:"jitter" yaml:"jitter"`
	MVScale       []float32 `toml:"mv_scale" yaml:"mv_scale"`
	Sharpness     float32   `toml:"sharpness" yaml:"sharpness"`
	Reset         bool      `toml:"reset" yaml:"reset"`
	PreExposure   float32   `toml:"pre_exposure" yaml:"pre_exposure"`
	ExposureScale float32   `toml:"exposure_scale" yaml:"exposure_scale"`
	FrameTimeMsec float32   `toml:"frame_time_ms" yaml:"frame_time_ms"`
	Inputs        []input   `toml:"inputs" yaml:"inputs"`
}

type extent struct {
	Width  uint32 `toml:"width" yaml:"width"`
	Height uint32 `toml:"height" yaml:"height"`
}

// input is one image bound to the evaluation. Name is the descriptor field
// in lower camel case, or "gbuffer.N" for a G-buffer slot.
type input struct {
	Name      string `toml:"name" yaml:"name"`
	View      uint64 `toml:"view" yaml:"view"`
	Image     uint64 `toml:"image" yaml:"image"`
	Format    int32  `toml:"format" yaml:"format"`
	Width     uint32 `toml:"width" yaml:"width"`
	Height    uint32 `toml:"height" yaml:"height"`
	ReadWrite bool   `toml:"read_write" yaml:"read_write"`
}

func loadFrame(path string) (*frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f frame
	if err := ngx.DecodeFile(path, data, &f); err != nil {
		return nil, fmt.Errorf("frame %s: %w", path, err)
	}
	if f.Feature == "" {
		f.Feature = ngx.FeatureSuperSampling.String()
	}
	if f.Quality == "" {
		f.Quality = ngx.QualityBalanced.String()
	}
	return &f, nil
}

func (in input) binding() *ngx.ResourceBinding {
	format := ngx.Format(in.Format)
	b := ngx.MakeView(ngx.ImageView(in.View), ngx.Image(in.Image),
		ngx.FullRange(format, gputypes.TextureAspectDepthOnly), format, in.Width, in.Height, in.ReadWrite)
	return &b
}

func pair(v []float32) (x, y float32, ok bool) {
	if len(v) != 2 {
		return 0, 0, false
	}
	return v[0], v[1], true
}

func superSamplingSlots(d *ngx.SuperSamplingEval) map[string]**ngx.ResourceBinding {
	return map[string]**ngx.ResourceBinding{
		"color":                    &d.Color,
		"output":                   &d.Output,
		"depth":                    &d.Depth,
		"motionVectors":            &d.MotionVectors,
		"transparencyMask":         &d.TransparencyMask,
		"exposureTexture":          &d.ExposureTexture,
		"biasCurrentColorMask":     &d.BiasCurrentColorMask,
		"motionVectors3D":          &d.MotionVectors3D,
		"isParticleMask":           &d.IsParticleMask,
		"animatedTextureMask":      &d.AnimatedTextureMask,
		"depthHighRes":             &d.DepthHighRes,
		"positionViewSpace":        &d.PositionViewSpace,
		"rayTracingHitDistance":    &d.RayTracingHitDistance,
		"motionVectorsReflections": &d.MotionVectorsReflections,
	}
}

func rayReconstructionSlots(d *ngx.RayReconstructionEval) map[string]**ngx.ResourceBinding {
	return map[string]**ngx.ResourceBinding{
		"color":                    &d.Color,
		"output":                   &d.Output,
		"depth":                    &d.Depth,
		"motionVectors":            &d.MotionVectors,
		"diffuseAlbedo":            &d.DiffuseAlbedo,
		"specularAlbedo":           &d.SpecularAlbedo,
		"normals":                  &d.Normals,
		"roughness":                &d.Roughness,
		"transparencyMask":         &d.TransparencyMask,
		"exposureTexture":          &d.ExposureTexture,
		"biasCurrentColorMask":     &d.BiasCurrentColorMask,
		"specularHitDistance":      &d.SpecularHitDistance,
		"reflectedAlbedo":          &d.ReflectedAlbedo,
		"disocclusionMask":         &d.DisocclusionMask,
		"transparencyLayer":        &d.TransparencyLayer,
		"transparencyLayerOpacity": &d.TransparencyLayerOpacity,
		"transparencyLayerMvecs":   &d.TransparencyLayerMvecs,
		"specularMvec":             &d.SpecularMvec,
		"motionVectors3D":          &d.MotionVectors3D,
		"isParticleMask":           &d.IsParticleMask,
		"animatedTextureMask":      &d.AnimatedTextureMask,
		"depthHighRes":             &d.DepthHighRes,
		"positionViewSpace":        &d.PositionViewSpace,
		"rayTracingHitDistance":    &d.RayTracingHitDistance,
		"motionVectorsReflections": &d.MotionVectorsReflections,
	}
}

// bind assigns every input to its slot. gbuffer is nil for descriptors
// without a generic G-buffer array.
func bind(inputs []input, slots map[string]**ngx.ResourceBinding, gbuffer *[ngx.GBufferSlots]*ngx.ResourceBinding) error {
	for _, in := range inputs {
		if idx, ok := strings.CutPrefix(in.Name, "gbuffer."); ok && gbuffer != nil {
			i, err := strconv.Atoi(idx)
			if err != nil || i < 0 || i >= ngx.GBufferSlots {
				return fmt.Errorf("input %q: G-buffer slot out of range", in.Name)
			}
			gbuffer[i] = in.binding()
			continue
		}
		slot, ok := slots[in.Name]
		if !ok {
			return fmt.Errorf("input %q: unknown resource", in.Name)
		}
		*slot = in.binding()
	}
	return nil
}

func (f *frame) superSampling(d *ngx.SuperSamplingEval) error {
	if err := bind(f.Inputs, superSamplingSlots(d), &d.GBuffer); err != nil {
		return err
	}
	if x, y, ok := pair(f.Jitter); ok {
		d.SetJitterOffsets(x, y)
	}
	if x, y, ok := pair(f.MVScale); ok {
		d.MVScaleX, d.MVScaleY = ngx.Float(x), ngx.Float(y)
	}
	d.Sharpness = f.Sharpness
	d.Reset = f.Reset
	d.PreExposure = ngx.Float(f.PreExposure)
	d.ExposureScale = ngx.Float(f.ExposureScale)
	d.FrameTimeDeltaMsec = f.FrameTimeMsec
	return nil
}

func (f *frame) rayReconstruction(d *ngx.RayReconstructionEval) error {
	if err := bind(f.Inputs, rayReconstructionSlots(d), nil); err != nil {
		return err
	}
	if x, y, ok := pair(f.Jitter); ok {
		d.JitterOffsetX, d.JitterOffsetY = x, y
	}
	if x, y, ok := pair(f.MVScale); ok {
		d.MVScaleX, d.MVScaleY = ngx.Float(x), ngx.Float(y)
	}
	d.Reset = f.Reset
	d.PreExposure = ngx.Float(f.PreExposure)
	d.ExposureScale = ngx.Float(f.ExposureScale)
	d.FrameTimeDeltaMsec = f.FrameTimeMsec
	return nil
}
