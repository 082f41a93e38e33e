package ngx

import (
	"fmt"

	"github.com/google/uuid"
)

// FeatureKind identifies an engine feature. Values match the engine's
// feature enumeration.
type FeatureKind uint32

// Features.
const (
	FeatureSuperSampling     FeatureKind = 1
	FeatureFrameGeneration   FeatureKind = 11
	FeatureRayReconstruction FeatureKind = 13
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureSuperSampling:
		return "SuperSampling"
	case FeatureFrameGeneration:
		return "FrameGeneration"
	case FeatureRayReconstruction:
		return "RayReconstruction"
	}
	return fmt.Sprintf("FeatureKind(%d)", uint32(k))
}

// QualityPreset is the performance/quality trade-off of a super sampling
// feature.
type QualityPreset int32

// Quality presets. Values match the engine's enumeration.
const (
	QualityMaxPerf QualityPreset = iota
	QualityBalanced
	QualityMaxQuality
	QualityUltraPerformance
	QualityUltraQuality
	QualityDLAA
)

var qualityNames = [...]string{
	QualityMaxPerf:          "MaxPerf",
	QualityBalanced:         "Balanced",
	QualityMaxQuality:       "MaxQuality",
	QualityUltraPerformance: "UltraPerformance",
	QualityUltraQuality:     "UltraQuality",
	QualityDLAA:             "DLAA",
}

func (q QualityPreset) String() string {
	if q >= 0 && int(q) < len(qualityNames) {
		return qualityNames[q]
	}
	return fmt.Sprintf("QualityPreset(%d)", int32(q))
}

// ParseQualityPreset returns the preset named s, as printed by String.
func ParseQualityPreset(s string) (QualityPreset, error) {
	for i, name := range qualityNames {
		if name == s {
			return QualityPreset(i), nil
		}
	}
	return 0, fmt.Errorf("ngx: unknown quality preset %q", s)
}

// FeatureFlags are the super sampling creation flags.
type FeatureFlags int32

// Creation flags.
const (
	FlagIsHDR FeatureFlags = 1 << iota
	FlagMVLowRes
	FlagMVJittered
	FlagDepthInverted
	_
	FlagDoSharpening
	FlagAutoExposure
	FlagAlphaUpscaling
)

// InitInfo carries the application identity passed to Engine.Init.
type InitInfo struct {
	ProjectID     uuid.UUID
	EngineVersion string
	// AppDataPath is where the engine writes its logs and caches.
	AppDataPath    string
	Instance       Instance
	PhysicalDevice PhysicalDevice
	Device         Device
}

// OptimalSettings is the answer of an optimal settings query.
type OptimalSettings struct {
	RenderWidth      uint32
	RenderHeight     uint32
	TargetWidth      uint32
	TargetHeight     uint32
	Quality          QualityPreset
	DynamicMaxWidth  uint32
	DynamicMaxHeight uint32
	DynamicMinWidth  uint32
	DynamicMinHeight uint32
	Sharpness        float32
}

// RenderExtent returns the recommended render resolution.
func (s OptimalSettings) RenderExtent() Extent2D {
	return Extent2D{Width: s.RenderWidth, Height: s.RenderHeight}
}

// TargetExtent returns the output resolution the query was made for.
func (s OptimalSettings) TargetExtent() Extent2D {
	return Extent2D{Width: s.TargetWidth, Height: s.TargetHeight}
}

// Engine is the external evaluation engine. Every entry point reports a
// raw ResultCode; the package converts failing codes into errors.
//
// Implementations live in the backend sub-packages. An engine is used from
// the caller's frame-recording goroutine only.
type Engine interface {
	// Name returns the engine identifier, e.g. "native" or "recording".
	Name() string

	Init(info InitInfo) ResultCode
	Shutdown(device Device) ResultCode

	// RequiredExtensions lists the Vulkan instance and device extensions
	// the engine needs enabled.
	RequiredExtensions() (instance, device []string, code ResultCode)

	// CapabilityParameters returns a store filled with the engine's
	// capability keys.
	CapabilityParameters() (*ParameterStore, ResultCode)

	CreateFeature(device Device, cmd CommandBuffer, creationNodeMask, visibilityNodeMask uint32,
		params *ParameterStore, create CreateParams) (FeatureHandle, ResultCode)
	ReleaseFeature(h FeatureHandle) ResultCode

	OptimalSettings(params *ParameterStore, width, height uint32, q QualityPreset) (OptimalSettings, ResultCode)
	ScratchBufferSize(kind FeatureKind, params *ParameterStore) (uint64, ResultCode)

	// EvaluateFeature records the evaluation of h into cmd.
	EvaluateFeature(cmd CommandBuffer, h FeatureHandle, params *ParameterStore) ResultCode
}
