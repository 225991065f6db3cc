package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultGap = 3
	cfg.DefaultMode = model.ModeHybrid
	cfg.Theme = "dark"
	cfg.RecentProjects = []string{"/tmp/kitchen.wallpanel", "/tmp/hall.wallpanel"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultGap != 3 {
		t.Errorf("expected DefaultGap=3, got %f", loaded.DefaultGap)
	}
	if loaded.DefaultMode != model.ModeHybrid {
		t.Errorf("expected DefaultMode=Hybrid, got %s", loaded.DefaultMode)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if len(loaded.RecentProjects) != 2 {
		t.Errorf("expected 2 recent projects, got %d", len(loaded.RecentProjects))
	}
}

func TestSaveAppConfig_ModeStoredAsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultMode = model.ModeHorizontal
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `"default_mode": "horizontal"`) {
		t.Errorf("expected mode stored by name, got:\n%s", data)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultSheetWidth != defaults.DefaultSheetWidth {
		t.Errorf("expected default sheet width %f, got %f", defaults.DefaultSheetWidth, cfg.DefaultSheetWidth)
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("expected default server address, got %q", cfg.ServerAddr)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme": "light"}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected Theme=light, got %s", cfg.Theme)
	}
	if cfg.DefaultGridStep != 10 {
		t.Errorf("expected default grid step 10, got %f", cfg.DefaultGridStep)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should never be nil")
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestSaveAppConfigCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("unexpected config file name: %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".wallpanel" {
		t.Errorf("unexpected config dir: %s", path)
	}
}
