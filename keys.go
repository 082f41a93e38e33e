package ngx

import "fmt"

// Key names an entry of a ParameterStore. The set of keys is closed and
// every key has a fixed value kind, see [Key.Kind].
type Key uint16

// Evaluation keys shared by super sampling and ray reconstruction.
const (
	keyInvalid Key = iota

	KeyColor
	KeyOutput
	KeyDepth
	KeyMotionVectors
	KeyJitterOffsetX
	KeyJitterOffsetY
	KeySharpness
	KeyReset
	KeyMVScaleX
	KeyMVScaleY
	KeyTransparencyMask
	KeyExposureTexture
	KeyBiasCurrentColorMask
	KeyGBufferAlbedo
	KeyGBufferRoughness
	KeyGBufferMetallic
	KeyGBufferSpecular
	KeyGBufferSubsurface
	KeyGBufferNormals
	KeyGBufferShadingModelID
	KeyGBufferMaterialID
	KeyGBufferAttrib8
	KeyGBufferAttrib9
	KeyGBufferAttrib10
	KeyGBufferAttrib11
	KeyGBufferAttrib12
	KeyGBufferAttrib13
	KeyGBufferAttrib14
	KeyGBufferAttrib15
	KeyTonemapperType
	KeyMotionVectors3D
	KeyIsParticleMask
	KeyAnimatedTextureMask
	KeyDepthHighRes
	KeyPositionViewSpace
	KeyFrameTimeDeltaMsec
	KeyRayTracingHitDistance
	KeyMotionVectorsReflection
	KeyColorSubrectBaseX
	KeyColorSubrectBaseY
	KeyDepthSubrectBaseX
	KeyDepthSubrectBaseY
	KeyMVSubrectBaseX
	KeyMVSubrectBaseY
	KeyTranslucencySubrectBaseX
	KeyTranslucencySubrectBaseY
	KeyBiasCurrentColorSubrectBaseX
	KeyBiasCurrentColorSubrectBaseY
	KeyOutputSubrectBaseX
	KeyOutputSubrectBaseY
	KeyRenderSubrectWidth
	KeyRenderSubrectHeight
	KeyPreExposure
	KeyExposureScale
	KeyIndicatorInvertX
	KeyIndicatorInvertY

	// Ray reconstruction inputs.
	KeyDiffuseAlbedo
	KeySpecularAlbedo
	KeySpecularHitDistance
	KeyReflectedAlbedo
	KeyDisocclusionMask
	KeyTransparencyLayer
	KeyTransparencyLayerOpacity
	KeyTransparencyLayerMvecs
	KeySpecularMvec
	KeyWorldToViewMatrix
	KeyViewToClipMatrix

	// Creation.
	KeyWidth
	KeyHeight
	KeyOutWidth
	KeyOutHeight
	KeyPerfQualityValue
	KeyCreateFlags
	KeyCreationNodeMask
	KeyVisibilityNodeMask
	KeyDenoiseMode
	KeyRoughnessMode
	KeyUseHWDepth

	// Capabilities.
	KeySuperSamplingAvailable
	KeySuperSamplingNeedsUpdatedDriver
	KeySuperSamplingMinDriverMajor
	KeySuperSamplingMinDriverMinor
	KeySuperSamplingFeatureInitResult
	KeyRayReconstructionAvailable
	KeyRayReconstructionNeedsUpdatedDriver
	KeyRayReconstructionMinDriverMajor
	KeyRayReconstructionMinDriverMinor
	KeyRayReconstructionFeatureInitResult

	keyCount
)

type keyInfo struct {
	name string
	kind Kind
}

var keyInfos = [keyCount]keyInfo{
	KeyColor:                        {"Color", KindPointer},
	KeyOutput:                       {"Output", KindPointer},
	KeyDepth:                        {"Depth", KindPointer},
	KeyMotionVectors:                {"MotionVectors", KindPointer},
	KeyJitterOffsetX:                {"Jitter.Offset.X", KindFloat},
	KeyJitterOffsetY:                {"Jitter.Offset.Y", KindFloat},
	KeySharpness:                    {"Sharpness", KindFloat},
	KeyReset:                        {"Reset", KindInt},
	KeyMVScaleX:                     {"MV.Scale.X", KindFloat},
	KeyMVScaleY:                     {"MV.Scale.Y", KindFloat},
	KeyTransparencyMask:             {"TransparencyMask", KindPointer},
	KeyExposureTexture:              {"ExposureTexture", KindPointer},
	KeyBiasCurrentColorMask:         {"DLSS.Input.Bias.Current.Color.Mask", KindPointer},
	KeyGBufferAlbedo:                {"GBuffer.Albedo", KindPointer},
	KeyGBufferRoughness:             {"GBuffer.Roughness", KindPointer},
	KeyGBufferMetallic:              {"GBuffer.Metallic", KindPointer},
	KeyGBufferSpecular:              {"GBuffer.Specular", KindPointer},
	KeyGBufferSubsurface:            {"GBuffer.Subsurface", KindPointer},
	KeyGBufferNormals:               {"GBuffer.Normals", KindPointer},
	KeyGBufferShadingModelID:        {"GBuffer.ShadingModelId", KindPointer},
	KeyGBufferMaterialID:            {"GBuffer.MaterialId", KindPointer},
	KeyGBufferAttrib8:               {"GBuffer.Attrib.8", KindPointer},
	KeyGBufferAttrib9:               {"GBuffer.Attrib.9", KindPointer},
	KeyGBufferAttrib10:              {"GBuffer.Attrib.10", KindPointer},
	KeyGBufferAttrib11:              {"GBuffer.Attrib.11", KindPointer},
	KeyGBufferAttrib12:              {"GBuffer.Attrib.12", KindPointer},
	KeyGBufferAttrib13:              {"GBuffer.Attrib.13", KindPointer},
	KeyGBufferAttrib14:              {"GBuffer.Attrib.14", KindPointer},
	KeyGBufferAttrib15:              {"GBuffer.Attrib.15", KindPointer},
	KeyTonemapperType:               {"TonemapperType", KindUint},
	KeyMotionVectors3D:              {"MotionVectors3D", KindPointer},
	KeyIsParticleMask:               {"IsParticleMask", KindPointer},
	KeyAnimatedTextureMask:          {"AnimatedTextureMask", KindPointer},
	KeyDepthHighRes:                 {"DepthHighRes", KindPointer},
	KeyPositionViewSpace:            {"Position.ViewSpace", KindPointer},
	KeyFrameTimeDeltaMsec:           {"FrameTimeDeltaInMsec", KindFloat},
	KeyRayTracingHitDistance:        {"RayTracingHitDistance", KindPointer},
	KeyMotionVectorsReflection:      {"MotionVectorsReflection", KindPointer},
	KeyColorSubrectBaseX:            {"DLSS.Input.Color.Subrect.Base.X", KindUint},
	KeyColorSubrectBaseY:            {"DLSS.Input.Color.Subrect.Base.Y", KindUint},
	KeyDepthSubrectBaseX:            {"DLSS.Input.Depth.Subrect.Base.X", KindUint},
	KeyDepthSubrectBaseY:            {"DLSS.Input.Depth.Subrect.Base.Y", KindUint},
	KeyMVSubrectBaseX:               {"DLSS.Input.MV.SubrectBase.X", KindUint},
	KeyMVSubrectBaseY:               {"DLSS.Input.MV.SubrectBase.Y", KindUint},
	KeyTranslucencySubrectBaseX:     {"DLSS.Input.Translucency.SubrectBase.X", KindUint},
	KeyTranslucencySubrectBaseY:     {"DLSS.Input.Translucency.SubrectBase.Y", KindUint},
	KeyBiasCurrentColorSubrectBaseX: {"DLSS.Input.Bias.Current.Color.SubrectBase.X", KindUint},
	KeyBiasCurrentColorSubrectBaseY: {"DLSS.Input.Bias.Current.Color.SubrectBase.Y", KindUint},
	KeyOutputSubrectBaseX:           {"DLSS.Output.Subrect.Base.X", KindUint},
	KeyOutputSubrectBaseY:           {"DLSS.Output.Subrect.Base.Y", KindUint},
	KeyRenderSubrectWidth:           {"DLSS.Render.Subrect.Dimensions.Width", KindUint},
	KeyRenderSubrectHeight:          {"DLSS.Render.Subrect.Dimensions.Height", KindUint},
	KeyPreExposure:                  {"DLSS.Pre.Exposure", KindFloat},
	KeyExposureScale:                {"DLSS.Exposure.Scale", KindFloat},
	KeyIndicatorInvertX:             {"DLSS.Indicator.Invert.X.Axis", KindInt},
	KeyIndicatorInvertY:             {"DLSS.Indicator.Invert.Y.Axis", KindInt},

	KeyDiffuseAlbedo:            {"DiffuseAlbedo", KindPointer},
	KeySpecularAlbedo:           {"SpecularAlbedo", KindPointer},
	KeySpecularHitDistance:      {"SpecularHitDistance", KindPointer},
	KeyReflectedAlbedo:          {"ReflectedAlbedo", KindPointer},
	KeyDisocclusionMask:         {"DisocclusionMask", KindPointer},
	KeyTransparencyLayer:        {"TransparencyLayer", KindPointer},
	KeyTransparencyLayerOpacity: {"TransparencyLayerOpacity", KindPointer},
	KeyTransparencyLayerMvecs:   {"TransparencyLayerMvecs", KindPointer},
	KeySpecularMvec:             {"SpecularMvec", KindPointer},
	KeyWorldToViewMatrix:        {"WorldToViewMatrix", KindPointer},
	KeyViewToClipMatrix:         {"ViewToClipMatrix", KindPointer},

	KeyWidth:              {"Width", KindUint},
	KeyHeight:             {"Height", KindUint},
	KeyOutWidth:           {"OutWidth", KindUint},
	KeyOutHeight:          {"OutHeight", KindUint},
	KeyPerfQualityValue:   {"PerfQualityValue", KindInt},
	KeyCreateFlags:        {"DLSS.Feature.Create.Flags", KindInt},
	KeyCreationNodeMask:   {"CreationNodeMask", KindUint},
	KeyVisibilityNodeMask: {"VisibilityNodeMask", KindUint},
	KeyDenoiseMode:        {"DLSS.Denoise.Mode", KindInt},
	KeyRoughnessMode:      {"DLSS.Roughness.Mode", KindInt},
	KeyUseHWDepth:         {"Use.HW.Depth", KindInt},

	KeySuperSamplingAvailable:              {"SuperSampling.Available", KindInt},
	KeySuperSamplingNeedsUpdatedDriver:     {"SuperSampling.NeedsUpdatedDriver", KindInt},
	KeySuperSamplingMinDriverMajor:         {"SuperSampling.MinDriverVersionMajor", KindUint},
	KeySuperSamplingMinDriverMinor:         {"SuperSampling.MinDriverVersionMinor", KindUint},
	KeySuperSamplingFeatureInitResult:      {"SuperSampling.FeatureInitResult", KindInt},
	KeyRayReconstructionAvailable:          {"SuperSamplingDenoising.Available", KindInt},
	KeyRayReconstructionNeedsUpdatedDriver: {"SuperSamplingDenoising.NeedsUpdatedDriver", KindInt},
	KeyRayReconstructionMinDriverMajor:     {"SuperSamplingDenoising.MinDriverVersionMajor", KindUint},
	KeyRayReconstructionMinDriverMinor:     {"SuperSamplingDenoising.MinDriverVersionMinor", KindUint},
	KeyRayReconstructionFeatureInitResult:  {"SuperSamplingDenoising.FeatureInitResult", KindInt},
}

// GBufferSlots is the number of auxiliary G-buffer channels.
const GBufferSlots = 16

// G-buffer slot indices with a semantic role. Slots 8 to 15 are generic.
const (
	GBufferAlbedo = iota
	GBufferRoughness
	GBufferMetallic
	GBufferSpecular
	GBufferSubsurface
	GBufferNormals
	GBufferShadingModelID
	GBufferMaterialID
)

// gbufferKeys maps a G-buffer slot index to its key.
var gbufferKeys = [GBufferSlots]Key{
	GBufferAlbedo:         KeyGBufferAlbedo,
	GBufferRoughness:      KeyGBufferRoughness,
	GBufferMetallic:       KeyGBufferMetallic,
	GBufferSpecular:       KeyGBufferSpecular,
	GBufferSubsurface:     KeyGBufferSubsurface,
	GBufferNormals:        KeyGBufferNormals,
	GBufferShadingModelID: KeyGBufferShadingModelID,
	GBufferMaterialID:     KeyGBufferMaterialID,
	8:                     KeyGBufferAttrib8,
	9:                     KeyGBufferAttrib9,
	10:                    KeyGBufferAttrib10,
	11:                    KeyGBufferAttrib11,
	12:                    KeyGBufferAttrib12,
	13:                    KeyGBufferAttrib13,
	14:                    KeyGBufferAttrib14,
	15:                    KeyGBufferAttrib15,
}

// GBufferKey returns the key of G-buffer slot i. It panics if i is out of
// range.
func GBufferKey(i int) Key {
	return gbufferKeys[i]
}

// Valid reports whether k is a known key.
func (k Key) Valid() bool {
	return k > keyInvalid && k < keyCount
}

// Kind returns the value kind stored under k.
func (k Key) Kind() Kind {
	if !k.Valid() {
		return KindInvalid
	}
	return keyInfos[k].kind
}

// String returns the engine-side parameter name of k.
func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", uint16(k))
	}
	return keyInfos[k].name
}

// KeyByName looks a key up by its engine-side parameter name.
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := keyInvalid + 1; k < keyCount; k++ {
		m[keyInfos[k].name] = k
	}
	return m
}()
