package ngx

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/ngx/internal/cache"
)

// settingsCacheSize bounds the number of cached optimal settings queries.
const settingsCacheSize = 32

type settingsKey struct {
	width, height uint32
	quality       QualityPreset
}

// System is an initialised engine bound to one Vulkan device.
//
// A System is not safe for concurrent use; features are created and
// evaluated from the frame-recording goroutine.
type System struct {
	engine Engine
	cfg    Config
	info   InitInfo
	caps   *ParameterStore
	closed bool

	settings *cache.Cache[settingsKey, OptimalSettings]
}

// NewSystem initialises e with cfg and opts and loads the capability
// parameters.
func NewSystem(e Engine, cfg Config, opts ...SystemOption) (*System, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	info, err := cfg.initInfo()
	if err != nil {
		return nil, err
	}

	if err := resultError("Init", e.Init(info)); err != nil {
		return nil, err
	}
	caps, code := e.CapabilityParameters()
	if err := resultError("CapabilityParameters", code); err != nil {
		if sc := e.Shutdown(cfg.Device); !sc.Succeeded() {
			Logger().Warn("ngx: shutdown after failed init", "engine", e.Name(), "result", sc)
		}
		return nil, err
	}

	Logger().Info("ngx: system initialised",
		"engine", e.Name(),
		"project", info.ProjectID,
		"engineVersion", info.EngineVersion)
	return &System{
		engine:   e,
		cfg:      cfg,
		info:     info,
		caps:     caps,
		settings: cache.New[settingsKey, OptimalSettings](settingsCacheSize),
	}, nil
}

// Engine returns the engine the system drives.
func (s *System) Engine() Engine { return s.engine }

// Config returns the effective configuration, options applied.
func (s *System) Config() Config { return s.cfg }

// ProjectID returns the project id the engine was initialised with.
func (s *System) ProjectID() string { return s.info.ProjectID.String() }

// Capabilities returns the capability parameters loaded at creation.
func (s *System) Capabilities() *ParameterStore { return s.caps }

// RequiredExtensions returns the Vulkan instance and device extensions the
// engine needs.
func (s *System) RequiredExtensions() (instance, device []string, err error) {
	instance, device, code := s.engine.RequiredExtensions()
	if err := resultError("RequiredExtensions", code); err != nil {
		return nil, nil, err
	}
	return instance, device, nil
}

// QueryOptimalSettings returns the recommended render resolution for a
// target resolution and preset. Successful answers are cached until Close.
func (s *System) QueryOptimalSettings(targetWidth, targetHeight uint32, q QualityPreset) (OptimalSettings, error) {
	key := settingsKey{width: targetWidth, height: targetHeight, quality: q}
	return s.settings.GetOrCreate(key, func() (OptimalSettings, error) {
		return QueryOptimalSettings(s.engine, s.caps, targetWidth, targetHeight, q)
	})
}

// SettingsCacheStats returns hit and miss counts of the optimal settings cache.
func (s *System) SettingsCacheStats() cache.Stats { return s.settings.Stats() }

// CreateFeature creates the feature described by p, recording any setup
// work into cmd.
func (s *System) CreateFeature(cmd CommandBuffer, p CreateParams) (*Feature, error) {
	if s.closed {
		return nil, fmt.Errorf("ngx: create %s: system closed", p.Feature())
	}
	kind := p.Feature()
	if _, ok := CapabilityKeys(kind); ok {
		if err := Supports(s.caps, kind); err != nil {
			return nil, err
		}
	}

	params := NewParameterStore()
	params.SetUint(KeyCreationNodeMask, s.cfg.CreationNodeMask)
	params.SetUint(KeyVisibilityNodeMask, s.cfg.VisibilityNodeMask)
	p.Apply(params)

	h, code := s.engine.CreateFeature(s.cfg.Device, cmd, s.cfg.CreationNodeMask, s.cfg.VisibilityNodeMask, params, p)
	if err := resultError("CreateFeature", code); err != nil {
		return nil, fmt.Errorf("ngx: create %s: %w", kind, err)
	}
	Logger().Info("ngx: feature created", "feature", kind, "handle", uint64(h))
	return &Feature{
		engine:     s.engine,
		kind:       kind,
		handle:     h,
		params:     params,
		dispatcher: NewDispatcher(s.engine),
	}, nil
}

// CreateSuperSamplingFeature creates a super sampling feature.
func (s *System) CreateSuperSamplingFeature(cmd CommandBuffer, p SuperSamplingCreateParams) (*SuperSamplingFeature, error) {
	f, err := s.CreateFeature(cmd, p)
	if err != nil {
		return nil, err
	}
	return NewSuperSamplingFeature(f,
		Extent2D{Width: p.RenderWidth, Height: p.RenderHeight},
		Extent2D{Width: p.TargetWidth, Height: p.TargetHeight})
}

// CreateRayReconstructionFeature creates a ray reconstruction feature.
func (s *System) CreateRayReconstructionFeature(cmd CommandBuffer, p RayReconstructionCreateParams) (*RayReconstructionFeature, error) {
	f, err := s.CreateFeature(cmd, p)
	if err != nil {
		return nil, err
	}
	return NewRayReconstructionFeature(f,
		Extent2D{Width: p.RenderWidth, Height: p.RenderHeight},
		Extent2D{Width: p.TargetWidth, Height: p.TargetHeight})
}

// Close shuts the engine down. A failing shutdown is logged and returned.
// Close is idempotent.
func (s *System) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.settings.Clear()
	code := s.engine.Shutdown(s.cfg.Device)
	if !code.Succeeded() {
		Logger().Warn("ngx: shutdown failed", slog.String("engine", s.engine.Name()), slog.Any("result", code))
	}
	return resultError("Shutdown", code)
}
