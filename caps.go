package ngx

import "fmt"

// CapabilityKeySet names the capability store keys describing one feature.
type CapabilityKeySet struct {
	Available          Key
	NeedsUpdatedDriver Key
	MinDriverMajor     Key
	MinDriverMinor     Key
	FeatureInitResult  Key
}

// Keys returns the keys of the set in declaration order.
func (c CapabilityKeySet) Keys() []Key {
	return []Key{c.Available, c.NeedsUpdatedDriver, c.MinDriverMajor, c.MinDriverMinor, c.FeatureInitResult}
}

var featureCapabilities = map[FeatureKind]CapabilityKeySet{
	FeatureSuperSampling: {
		Available:          KeySuperSamplingAvailable,
		NeedsUpdatedDriver: KeySuperSamplingNeedsUpdatedDriver,
		MinDriverMajor:     KeySuperSamplingMinDriverMajor,
		MinDriverMinor:     KeySuperSamplingMinDriverMinor,
		FeatureInitResult:  KeySuperSamplingFeatureInitResult,
	},
	FeatureRayReconstruction: {
		Available:          KeyRayReconstructionAvailable,
		NeedsUpdatedDriver: KeyRayReconstructionNeedsUpdatedDriver,
		MinDriverMajor:     KeyRayReconstructionMinDriverMajor,
		MinDriverMinor:     KeyRayReconstructionMinDriverMinor,
		FeatureInitResult:  KeyRayReconstructionFeatureInitResult,
	},
}

// CapabilityKeys returns the capability keys of feature. ok is false for
// features without capability keys, such as frame generation.
func CapabilityKeys(feature FeatureKind) (keys CapabilityKeySet, ok bool) {
	keys, ok = featureCapabilities[feature]
	return keys, ok
}

// CapabilityFeatures returns the features that have capability keys, in
// ascending order.
func CapabilityFeatures() []FeatureKind {
	return []FeatureKind{FeatureSuperSampling, FeatureRayReconstruction}
}

// Supports checks the capability store for feature. It returns a
// *DriverUpdateError when the driver is too old and ErrUnsupportedFeature
// when the feature is unavailable or unknown.
func Supports(caps *ParameterStore, feature FeatureKind) error {
	ck, ok := CapabilityKeys(feature)
	if !ok {
		return fmt.Errorf("%w: no capability keys for %s", ErrUnsupportedFeature, feature)
	}
	if needs, _ := caps.Bool(ck.NeedsUpdatedDriver); needs {
		major, _ := caps.Uint(ck.MinDriverMajor)
		minor, _ := caps.Uint(ck.MinDriverMinor)
		return &DriverUpdateError{Feature: feature, Major: major, Minor: minor}
	}
	if avail, ok := caps.Int(ck.Available); !ok || avail == 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFeature, feature)
	}
	return nil
}

// SupportsSuperSampling reports whether super sampling can be created.
func SupportsSuperSampling(caps *ParameterStore) error {
	return Supports(caps, FeatureSuperSampling)
}

// SupportsRayReconstruction reports whether ray reconstruction can be
// created.
func SupportsRayReconstruction(caps *ParameterStore) error {
	return Supports(caps, FeatureRayReconstruction)
}

// IsInitialised reports whether the engine initialised feature
// successfully.
func IsInitialised(caps *ParameterStore, feature FeatureKind) bool {
	ck, ok := CapabilityKeys(feature)
	if !ok {
		return false
	}
	v, _ := caps.Bool(ck.FeatureInitResult)
	return v
}

// QueryOptimalSettings asks the engine for the render resolution matching
// a target resolution and quality preset. A zero render size means the
// preset is not supported and yields ErrUnsupportedQuality.
func QueryOptimalSettings(e Engine, caps *ParameterStore, targetWidth, targetHeight uint32, q QualityPreset) (OptimalSettings, error) {
	s, code := e.OptimalSettings(caps, targetWidth, targetHeight, q)
	if err := resultError("OptimalSettings", code); err != nil {
		return OptimalSettings{}, err
	}
	if s.RenderWidth == 0 || s.RenderHeight == 0 {
		return OptimalSettings{}, fmt.Errorf("%w: %s", ErrUnsupportedQuality, q)
	}
	s.TargetWidth, s.TargetHeight, s.Quality = targetWidth, targetHeight, q
	return s, nil
}
