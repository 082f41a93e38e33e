package ngx

import "github.com/google/uuid"

// SystemOption configures a System during creation. Options override the
// matching Config fields.
//
// Example:
//
//	sys, err := ngx.NewSystem(engine, cfg,
//	    ngx.WithNodeMasks(1, 1),
//	    ngx.WithEngineVersion("1.4.0"))
type SystemOption func(*Config)

// WithNodeMasks sets the creation and visibility node masks used for every
// feature. Single-GPU applications use 1 for both.
func WithNodeMasks(creation, visibility uint32) SystemOption {
	return func(c *Config) {
		c.CreationNodeMask = creation
		c.VisibilityNodeMask = visibility
	}
}

// WithEngineVersion sets the application engine version reported to the
// engine.
func WithEngineVersion(v string) SystemOption {
	return func(c *Config) {
		c.EngineVersion = v
	}
}

// WithProjectID sets the application project id.
func WithProjectID(id uuid.UUID) SystemOption {
	return func(c *Config) {
		c.ProjectID = id.String()
	}
}

// WithAppDataPath sets the directory the engine writes logs to.
func WithAppDataPath(path string) SystemOption {
	return func(c *Config) {
		c.AppDataPath = path
	}
}

// WithVulkan sets the Vulkan handles the engine is initialised with.
func WithVulkan(instance Instance, physical PhysicalDevice, device Device) SystemOption {
	return func(c *Config) {
		c.Instance = instance
		c.PhysicalDevice = physical
		c.Device = device
	}
}
