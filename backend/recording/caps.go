package recording

import (
	"math"

	"github.com/gogpu/ngx"
)

// capabilityKeysFor returns the keys of kind, falling back to super
// sampling for features without capability keys.
func capabilityKeysFor(kind ngx.FeatureKind) ngx.CapabilityKeySet {
	if ck, ok := ngx.CapabilityKeys(kind); ok {
		return ck
	}
	ck, _ := ngx.CapabilityKeys(ngx.FeatureSuperSampling)
	return ck
}

func defaultCapabilities() *ngx.ParameterStore {
	caps := ngx.NewParameterStore()
	for _, kind := range ngx.CapabilityFeatures() {
		k := capabilityKeysFor(kind)
		caps.SetInt(k.Available, 1)
		caps.SetInt(k.NeedsUpdatedDriver, 0)
		caps.SetUint(k.MinDriverMajor, 0)
		caps.SetUint(k.MinDriverMinor, 0)
	}
	return caps
}

// renderScale is the per-axis render/target ratio of each preset.
var renderScale = map[ngx.QualityPreset]float64{
	ngx.QualityDLAA:             1.0,
	ngx.QualityUltraQuality:     0.77,
	ngx.QualityMaxQuality:       0.667,
	ngx.QualityBalanced:         0.58,
	ngx.QualityMaxPerf:          0.5,
	ngx.QualityUltraPerformance: 0.333,
}

const minRenderScale = 0.333

func scaled(v uint32, f float64) uint32 {
	return uint32(math.Round(float64(v) * f))
}

// optimalSettings returns zero render dimensions for unknown presets.
func optimalSettings(width, height uint32, q ngx.QualityPreset) ngx.OptimalSettings {
	f, ok := renderScale[q]
	if !ok {
		return ngx.OptimalSettings{}
	}
	return ngx.OptimalSettings{
		RenderWidth:      scaled(width, f),
		RenderHeight:     scaled(height, f),
		DynamicMaxWidth:  width,
		DynamicMaxHeight: height,
		DynamicMinWidth:  scaled(width, minRenderScale),
		DynamicMinHeight: scaled(height, minRenderScale),
	}
}
