package ngx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the application identity and feature defaults of a System.
// It can be loaded from a TOML or YAML file with LoadConfig; the Vulkan
// handles are set in code.
type Config struct {
	// ProjectID identifies the application to the engine. An empty id is
	// replaced with a random one when the System is created.
	ProjectID     string `toml:"project_id" yaml:"project_id"`
	EngineVersion string `toml:"engine_version" yaml:"engine_version"`
	AppDataPath   string `toml:"app_data_path" yaml:"app_data_path"`

	// Quality is the default preset name, e.g. "Balanced".
	Quality string `toml:"quality" yaml:"quality"`

	CreationNodeMask   uint32 `toml:"creation_node_mask" yaml:"creation_node_mask"`
	VisibilityNodeMask uint32 `toml:"visibility_node_mask" yaml:"visibility_node_mask"`

	Instance       Instance       `toml:"-" yaml:"-"`
	PhysicalDevice PhysicalDevice `toml:"-" yaml:"-"`
	Device         Device         `toml:"-" yaml:"-"`
}

// DefaultConfig returns a configuration for a single-GPU application.
func DefaultConfig() Config {
	return Config{
		EngineVersion:      "0.0.0",
		AppDataPath:        ".",
		Quality:            QualityBalanced.String(),
		CreationNodeMask:   1,
		VisibilityNodeMask: 1,
	}
}

// LoadConfig reads a configuration file. The format is chosen by
// extension: .toml, .yaml or .yml. Fields missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ngx: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := DecodeFile(path, data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ngx: config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DecodeFile decodes data into v using the format implied by the
// extension of name. Unknown fields are rejected.
func DecodeFile(name string, data []byte, v any) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported file extension %q", ext)
	}
}

// Validate checks the project id and quality preset.
func (c Config) Validate() error {
	if c.ProjectID != "" {
		if _, err := uuid.Parse(c.ProjectID); err != nil {
			return fmt.Errorf("ngx: project id %q: %w", c.ProjectID, err)
		}
	}
	if c.Quality != "" {
		if _, err := ParseQualityPreset(c.Quality); err != nil {
			return err
		}
	}
	return nil
}

// QualityPreset returns the configured default preset, or Balanced when
// none is set.
func (c Config) QualityPreset() (QualityPreset, error) {
	if c.Quality == "" {
		return QualityBalanced, nil
	}
	return ParseQualityPreset(c.Quality)
}

// initInfo builds the Engine.Init argument, generating a project id when
// none is configured.
func (c Config) initInfo() (InitInfo, error) {
	id := uuid.New()
	if c.ProjectID != "" {
		var err error
		if id, err = uuid.Parse(c.ProjectID); err != nil {
			return InitInfo{}, fmt.Errorf("ngx: project id %q: %w", c.ProjectID, err)
		}
	}
	return InitInfo{
		ProjectID:      id,
		EngineVersion:  c.EngineVersion,
		AppDataPath:    c.AppDataPath,
		Instance:       c.Instance,
		PhysicalDevice: c.PhysicalDevice,
		Device:         c.Device,
	}, nil
}
