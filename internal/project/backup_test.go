package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.PricePerSheet = 39.9
	cfg.Theme = "dark"
	presets := model.NewPresetStore()
	presets.Put(model.NewPreset("Hall", "", model.DefaultRequest()))

	if err := ExportAllData(path, cfg, presets); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != BackupVersion {
		t.Errorf("expected version %s, got %s", BackupVersion, backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.PricePerSheet != 39.9 {
		t.Errorf("expected PricePerSheet=39.9, got %f", backup.Config.PricePerSheet)
	}
	if backup.Config.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", backup.Config.Theme)
	}
	if len(backup.Presets.Presets) != 1 || backup.Presets.Presets[0].Name != "Hall" {
		t.Errorf("presets not restored: %+v", backup.Presets)
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noversion.json")
	if err := os.WriteFile(path, []byte(`{"config": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestImportAllDataNilSlices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.json")
	if err := os.WriteFile(path, []byte(`{"version": "1.0.0"}`), 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentProjects == nil || backup.Presets.Presets == nil {
		t.Error("slices should never be nil after import")
	}
	if backup.Config.ServerAddr != ":8080" {
		t.Errorf("expected default config values, got %+v", backup.Config)
	}
}
