package ngx

import (
	"testing"

	"github.com/google/uuid"
)

func TestSystemOptions(t *testing.T) {
	id := uuid.MustParse("a0f57b54-1daf-4934-90ae-c4035c19df04")

	tests := []struct {
		name  string
		opt   SystemOption
		check func(Config) bool
	}{
		{"node masks", WithNodeMasks(4, 6), func(c Config) bool {
			return c.CreationNodeMask == 4 && c.VisibilityNodeMask == 6
		}},
		{"engine version", WithEngineVersion("3.2.1"), func(c Config) bool {
			return c.EngineVersion == "3.2.1"
		}},
		{"project id", WithProjectID(id), func(c Config) bool {
			return c.ProjectID == id.String()
		}},
		{"app data path", WithAppDataPath("/var/tmp/ngx"), func(c Config) bool {
			return c.AppDataPath == "/var/tmp/ngx"
		}},
		{"vulkan", WithVulkan(7, 8, 9), func(c Config) bool {
			return c.Instance == 7 && c.PhysicalDevice == 8 && c.Device == 9
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.opt(&c)
			if !tt.check(c) {
				t.Errorf("option not applied: %+v", c)
			}
		})
	}
}

func TestSystemOptionsOverrideConfig(t *testing.T) {
	e := newFakeEngine()
	cfg := DefaultConfig()
	cfg.EngineVersion = "1.0.0"
	cfg.AppDataPath = "/from/config"

	sys, err := NewSystem(e, cfg, WithEngineVersion("2.0.0"))
	if err != nil {
		t.Fatalf("NewSystem() error = %v", err)
	}
	if got := sys.Config().EngineVersion; got != "2.0.0" {
		t.Errorf("EngineVersion = %q, want option value", got)
	}
	if got := sys.Config().AppDataPath; got != "/from/config" {
		t.Errorf("AppDataPath = %q, want config value", got)
	}
	if e.initInfo.EngineVersion != "2.0.0" {
		t.Errorf("InitInfo.EngineVersion = %q, want 2.0.0", e.initInfo.EngineVersion)
	}
}

func TestSystemOptionsApplyInOrder(t *testing.T) {
	c := DefaultConfig()
	for _, opt := range []SystemOption{WithAppDataPath("a"), WithAppDataPath("b")} {
		opt(&c)
	}
	if c.AppDataPath != "b" {
		t.Errorf("AppDataPath = %q, want last option to win", c.AppDataPath)
	}
}
