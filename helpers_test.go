package ngx

// fakeEngine is a minimal Engine for package tests. The recording backend
// cannot be used here because it imports this package.
type fakeEngine struct {
	initInfo   InitInfo
	initCode   ResultCode
	caps       *ParameterStore
	capsCode   ResultCode
	shutdowns  int
	shutCode   ResultCode
	nextHandle FeatureHandle
	created    []CreateParams
	createCode ResultCode
	released   []FeatureHandle
	settings   OptimalSettings
	queries    int
	evaluated  []*ParameterStore
	evalCode   ResultCode
	evalCmd    CommandBuffer
	evalHandle FeatureHandle
}

func newFakeEngine() *fakeEngine {
	caps := NewParameterStore()
	caps.SetInt(KeySuperSamplingAvailable, 1)
	caps.SetInt(KeySuperSamplingNeedsUpdatedDriver, 0)
	caps.SetInt(KeyRayReconstructionAvailable, 1)
	caps.SetInt(KeyRayReconstructionNeedsUpdatedDriver, 0)
	return &fakeEngine{
		initCode:   Success,
		caps:       caps,
		capsCode:   Success,
		shutCode:   Success,
		nextHandle: 100,
		createCode: Success,
		evalCode:   Success,
		settings:   OptimalSettings{RenderWidth: 1280, RenderHeight: 720, Sharpness: 0.25},
	}
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Init(info InitInfo) ResultCode {
	e.initInfo = info
	return e.initCode
}

func (e *fakeEngine) Shutdown(Device) ResultCode {
	e.shutdowns++
	return e.shutCode
}

func (e *fakeEngine) RequiredExtensions() ([]string, []string, ResultCode) {
	return []string{"VK_KHR_get_physical_device_properties2"}, []string{"VK_NVX_binary_import"}, Success
}

func (e *fakeEngine) CapabilityParameters() (*ParameterStore, ResultCode) {
	return e.caps, e.capsCode
}

func (e *fakeEngine) CreateFeature(_ Device, _ CommandBuffer, _, _ uint32, params *ParameterStore, create CreateParams) (FeatureHandle, ResultCode) {
	if !e.createCode.Succeeded() {
		return NullFeature, e.createCode
	}
	e.created = append(e.created, create)
	e.nextHandle++
	if create.Feature() == FeatureSuperSampling {
		params.SetInt(KeySuperSamplingFeatureInitResult, 1)
	}
	return e.nextHandle, Success
}

func (e *fakeEngine) ReleaseFeature(h FeatureHandle) ResultCode {
	e.released = append(e.released, h)
	return Success
}

func (e *fakeEngine) OptimalSettings(_ *ParameterStore, _, _ uint32, _ QualityPreset) (OptimalSettings, ResultCode) {
	e.queries++
	return e.settings, Success
}

func (e *fakeEngine) ScratchBufferSize(FeatureKind, *ParameterStore) (uint64, ResultCode) {
	return 4096, Success
}

func (e *fakeEngine) EvaluateFeature(cmd CommandBuffer, h FeatureHandle, params *ParameterStore) ResultCode {
	e.evalCmd, e.evalHandle = cmd, h
	e.evaluated = append(e.evaluated, params)
	return e.evalCode
}

// testBinding returns a present binding with a distinct view handle.
func testBinding(view uint64) *ResourceBinding {
	b := MakeView(ImageView(view), Image(view+0x1000), SubresourceRange{AspectMask: AspectColor, LevelCount: 1, LayerCount: 1},
		FormatR16G16B16A16Sfloat, 1920, 1080, false)
	return &b
}

func minimalEval() *SuperSamplingEval {
	return &SuperSamplingEval{Color: testBinding(1), Output: testBinding(2)}
}

// scalarKeyCount is the number of always-present super sampling entries:
// the scalars, the render subrect size and six subrect bases.
const scalarKeyCount = 12 + 2 + 6*2

func minimalRayEval() *RayReconstructionEval {
	return &RayReconstructionEval{
		Color:          testBinding(1),
		Output:         testBinding(2),
		Depth:          testBinding(3),
		MotionVectors:  testBinding(4),
		DiffuseAlbedo:  testBinding(5),
		SpecularAlbedo: testBinding(6),
		Normals:        testBinding(7),
		Roughness:      testBinding(8),
	}
}
