package recording

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ngx"
	"github.com/gogpu/ngx/backend"
)

func binding(view uint64, readWrite bool) *ngx.ResourceBinding {
	b := ngx.MakeView(ngx.ImageView(view), ngx.Image(view+0x100),
		ngx.SubresourceRange{AspectMask: ngx.AspectColor, LevelCount: 1, LayerCount: 1},
		ngx.FormatR16G16B16A16Sfloat, 1920, 1080, readWrite)
	return &b
}

func openSystem(t *testing.T, e *Engine) *ngx.System {
	t.Helper()
	sys, err := ngx.NewSystem(e, ngx.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sys.Close() })
	return sys
}

func TestRegistered(t *testing.T) {
	assert.True(t, backend.IsRegistered(backend.EngineRecording))
	e := backend.Get(backend.EngineRecording)
	require.NotNil(t, e)
	assert.Equal(t, backend.EngineRecording, e.Name())
}

func TestNotInitialised(t *testing.T) {
	e := New()

	_, code := e.CapabilityParameters()
	assert.Equal(t, ngx.FailNotInitialized, code)
	assert.Equal(t, ngx.FailNotInitialized, e.Shutdown(ngx.NullDevice))
	assert.Equal(t, ngx.FailNotInitialized,
		e.EvaluateFeature(0, 1, ngx.NewParameterStore()))

	_, code = e.CreateFeature(ngx.NullDevice, 0, 1, 1, ngx.NewParameterStore(),
		ngx.SuperSamplingCreateParams{RenderWidth: 1, RenderHeight: 1, TargetWidth: 1, TargetHeight: 1})
	assert.Equal(t, ngx.FailNotInitialized, code)
}

func TestInitRecordsIdentity(t *testing.T) {
	e := New()
	sys := openSystem(t, e)

	assert.Equal(t, sys.ProjectID(), e.InitInfo().ProjectID.String())
	assert.Equal(t, "0.0.0", e.InitInfo().EngineVersion)
}

func TestCapabilities(t *testing.T) {
	sys := openSystem(t, New())

	assert.NoError(t, ngx.SupportsSuperSampling(sys.Capabilities()))
	assert.NoError(t, ngx.SupportsRayReconstruction(sys.Capabilities()))
}

func TestCapabilityStoreMatchesKeys(t *testing.T) {
	sys := openSystem(t, New())
	caps := sys.Capabilities()

	for _, kind := range ngx.CapabilityFeatures() {
		ck, ok := ngx.CapabilityKeys(kind)
		require.True(t, ok, "kind %s", kind)
		avail, ok := caps.Int(ck.Available)
		assert.True(t, ok, "%s not in store", ck.Available)
		assert.EqualValues(t, 1, avail)
		needs, ok := caps.Int(ck.NeedsUpdatedDriver)
		assert.True(t, ok, "%s not in store", ck.NeedsUpdatedDriver)
		assert.Zero(t, needs)
	}
}

func TestWithUnavailable(t *testing.T) {
	sys := openSystem(t, New(WithUnavailable(ngx.FeatureRayReconstruction)))

	assert.NoError(t, ngx.SupportsSuperSampling(sys.Capabilities()))
	assert.ErrorIs(t, ngx.SupportsRayReconstruction(sys.Capabilities()), ngx.ErrUnsupportedFeature)

	_, err := sys.CreateRayReconstructionFeature(0, ngx.NewRayReconstructionCreateParams(960, 540, 1920, 1080, ngx.QualityBalanced))
	assert.ErrorIs(t, err, ngx.ErrUnsupportedFeature)
}

func TestWithDriverUpdate(t *testing.T) {
	sys := openSystem(t, New(WithDriverUpdate(ngx.FeatureSuperSampling, 545, 84)))

	err := ngx.SupportsSuperSampling(sys.Capabilities())
	var due *ngx.DriverUpdateError
	require.True(t, errors.As(err, &due), "err = %v", err)
	assert.Equal(t, uint32(545), due.Major)
	assert.Equal(t, uint32(84), due.Minor)
}

func TestOptimalSettings(t *testing.T) {
	tests := []struct {
		q          ngx.QualityPreset
		wantWidth  uint32
		wantHeight uint32
	}{
		{ngx.QualityDLAA, 1920, 1080},
		{ngx.QualityUltraQuality, 1478, 832},
		{ngx.QualityMaxQuality, 1281, 720},
		{ngx.QualityBalanced, 1114, 626},
		{ngx.QualityMaxPerf, 960, 540},
		{ngx.QualityUltraPerformance, 639, 360},
	}
	sys := openSystem(t, New())
	for _, tt := range tests {
		t.Run(tt.q.String(), func(t *testing.T) {
			s, err := sys.QueryOptimalSettings(1920, 1080, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, s.RenderWidth)
			assert.Equal(t, tt.wantHeight, s.RenderHeight)
			assert.Equal(t, uint32(1920), s.DynamicMaxWidth)
			assert.Equal(t, uint32(639), s.DynamicMinWidth)
			assert.Equal(t, tt.q, s.Quality)
		})
	}
}

func TestOptimalSettingsUnknownPreset(t *testing.T) {
	sys := openSystem(t, New())
	_, err := sys.QueryOptimalSettings(1920, 1080, ngx.QualityPreset(42))
	assert.ErrorIs(t, err, ngx.ErrUnsupportedQuality)
}

func TestCreateFeature(t *testing.T) {
	e := New()
	sys := openSystem(t, e)

	ss, err := sys.CreateSuperSamplingFeature(7, ngx.SuperSamplingCreateParams{
		RenderWidth: 960, RenderHeight: 540, TargetWidth: 1920, TargetHeight: 1080,
		Quality: ngx.QualityMaxPerf,
	})
	require.NoError(t, err)
	assert.True(t, ss.IsInitialised())
	assert.Equal(t, 1, e.Features())

	kind, ok := e.FeatureKind(ss.Inner().Handle())
	require.True(t, ok)
	assert.Equal(t, ngx.FeatureSuperSampling, kind)

	size, err := ss.Inner().ScratchBufferSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(960*540*8), size)

	require.NoError(t, ss.Release())
	assert.Equal(t, 0, e.Features())
}

func TestCreateFeatureZeroDimensions(t *testing.T) {
	sys := openSystem(t, New())
	_, err := sys.CreateSuperSamplingFeature(0, ngx.SuperSamplingCreateParams{TargetWidth: 1920, TargetHeight: 1080})

	var ee *ngx.EngineError
	require.True(t, errors.As(err, &ee), "err = %v", err)
	assert.Equal(t, ngx.FailInvalidParameter, ee.Code)
}

func TestCreateFrameGeneration(t *testing.T) {
	sys := openSystem(t, New())
	_, err := sys.CreateFeature(0, ngx.GenericCreateParams{Kind: ngx.FeatureFrameGeneration})
	assert.ErrorIs(t, err, ngx.ErrUnsupportedFeature)
}

func TestReleaseUnknown(t *testing.T) {
	e := New()
	assert.Equal(t, ngx.FailFeatureNotFound, e.ReleaseFeature(99))
}

func TestEvaluateRecords(t *testing.T) {
	e := New()
	sys := openSystem(t, e)

	ss, err := sys.CreateSuperSamplingFeature(0, ngx.SuperSamplingCreateParams{
		RenderWidth: 960, RenderHeight: 540, TargetWidth: 1920, TargetHeight: 1080,
	})
	require.NoError(t, err)

	_, err = e.Last()
	assert.ErrorIs(t, err, ErrNoEvaluation)

	p := ss.EvaluationParameters()
	p.Color = binding(1, false)
	p.Output = binding(2, true)
	p.SetJitterOffsets(0.25, -0.25)
	require.NoError(t, ss.Evaluate(42))

	ev, err := e.Last()
	require.NoError(t, err)
	assert.Equal(t, ngx.CommandBuffer(42), ev.Command)
	assert.Equal(t, ngx.FeatureSuperSampling, ev.Kind)
	assert.Equal(t, ss.Inner().Handle(), ev.Feature)

	out, ok := ev.Params.Binding(ngx.KeyOutput)
	require.True(t, ok)
	assert.Equal(t, ngx.ImageView(2), out.View)
	mvx, _ := ev.Params.Float(ngx.KeyMVScaleX)
	assert.Equal(t, float32(1), mvx)
	jx, _ := ev.Params.Float(ngx.KeyJitterOffsetX)
	assert.Equal(t, float32(0.25), jx)

	require.NoError(t, ss.Evaluate(43))
	assert.Len(t, e.Evaluations(), 2)
}

func TestEvaluateOutputNotWritable(t *testing.T) {
	e := New()
	sys := openSystem(t, e)
	ss, err := sys.CreateSuperSamplingFeature(0, ngx.SuperSamplingCreateParams{
		RenderWidth: 960, RenderHeight: 540, TargetWidth: 1920, TargetHeight: 1080,
	})
	require.NoError(t, err)

	p := ss.EvaluationParameters()
	p.Color = binding(1, false)
	p.Output = binding(2, false)
	err = ss.Evaluate(0)

	var ee *ngx.EngineError
	require.True(t, errors.As(err, &ee), "err = %v", err)
	assert.Equal(t, ngx.FailRWFlagMissing, ee.Code)
	assert.Equal(t, ngx.StateFailed, ss.Inner().State())
	assert.Empty(t, e.Evaluations())
}

func TestEvaluateRayReconstruction(t *testing.T) {
	e := New()
	sys := openSystem(t, e)
	rr, err := sys.CreateRayReconstructionFeature(0, ngx.NewRayReconstructionCreateParams(960, 540, 1920, 1080, ngx.QualityMaxPerf))
	require.NoError(t, err)

	p := rr.EvaluationParameters()
	p.Color = binding(1, false)
	p.Output = binding(2, true)
	p.Depth = binding(3, false)
	p.MotionVectors = binding(4, false)
	p.DiffuseAlbedo = binding(5, false)
	p.SpecularAlbedo = binding(6, false)
	p.Normals = binding(7, false)
	p.Roughness = binding(8, false)
	require.NoError(t, rr.Evaluate(1))

	ev, err := e.Last()
	require.NoError(t, err)
	assert.Equal(t, ngx.FeatureRayReconstruction, ev.Kind)
	n, ok := ev.Params.Binding(ngx.KeyGBufferNormals)
	require.True(t, ok)
	assert.Equal(t, ngx.ImageView(7), n.View)
}

func TestEvaluateMissingInput(t *testing.T) {
	e := New()
	sys := openSystem(t, e)
	ss, err := sys.CreateSuperSamplingFeature(0, ngx.SuperSamplingCreateParams{
		RenderWidth: 960, RenderHeight: 540, TargetWidth: 1920, TargetHeight: 1080,
	})
	require.NoError(t, err)

	st := ngx.NewParameterStore()
	st.SetPointer(ngx.KeyOutput, binding(2, true))
	assert.Equal(t, ngx.FailMissingInput, e.EvaluateFeature(0, ss.Inner().Handle(), st))
}

func TestEvaluateUnknownFeature(t *testing.T) {
	e := New()
	openSystem(t, e)
	assert.Equal(t, ngx.FailFeatureNotFound, e.EvaluateFeature(0, 1234, ngx.NewParameterStore()))
}

func TestFailNext(t *testing.T) {
	e := New()
	e.FailNext(ngx.FailPlatformError)

	_, err := ngx.NewSystem(e, ngx.DefaultConfig())
	var ee *ngx.EngineError
	require.True(t, errors.As(err, &ee), "err = %v", err)
	assert.Equal(t, ngx.FailPlatformError, ee.Code)

	// The failure is consumed.
	sys, err := ngx.NewSystem(e, ngx.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, sys.Close())
}

func TestShutdownClearsFeatures(t *testing.T) {
	e := New()
	sys, err := ngx.NewSystem(e, ngx.DefaultConfig())
	require.NoError(t, err)
	_, err = sys.CreateSuperSamplingFeature(0, ngx.SuperSamplingCreateParams{
		RenderWidth: 960, RenderHeight: 540, TargetWidth: 1920, TargetHeight: 1080,
	})
	require.NoError(t, err)

	require.NoError(t, sys.Close())
	assert.Equal(t, 0, e.Features())
}

func TestConcurrentInspection(t *testing.T) {
	e := New()
	sys := openSystem(t, e)
	ss, err := sys.CreateSuperSamplingFeature(0, ngx.SuperSamplingCreateParams{
		RenderWidth: 960, RenderHeight: 540, TargetWidth: 1920, TargetHeight: 1080,
	})
	require.NoError(t, err)
	p := ss.EvaluationParameters()
	p.Color = binding(1, false)
	p.Output = binding(2, true)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 100 {
			_ = e.Evaluations()
			_ = e.Features()
		}
	}()
	for i := range 100 {
		require.NoError(t, ss.Evaluate(ngx.CommandBuffer(i)))
	}
	wg.Wait()
	assert.Len(t, e.Evaluations(), 100)
}
