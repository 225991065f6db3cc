package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
)

func TestSaveAndLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")

	store := model.NewPresetStore()
	store.Put(model.NewPreset("Standard door", "6 m wall with centered door", model.DefaultRequest()))

	if err := SavePresets(path, store); err != nil {
		t.Fatalf("SavePresets error: %v", err)
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets error: %v", err)
	}
	if len(loaded.Presets) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(loaded.Presets))
	}
	if loaded.Presets[0].Request != model.DefaultRequest() {
		t.Errorf("request not restored: %+v", loaded.Presets[0].Request)
	}
}

func TestLoadPresets_NotFound(t *testing.T) {
	store, err := LoadPresets(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(store.Presets) != 0 {
		t.Errorf("expected empty store, got %d presets", len(store.Presets))
	}
}

func TestSavePreset_ReplacesByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")

	first, err := SavePreset(path, "Hall", "", model.DefaultRequest())
	if err != nil {
		t.Fatalf("SavePreset error: %v", err)
	}

	req := model.DefaultRequest()
	req.Gap = 0
	second, err := SavePreset(path, " Hall ", "no joints", req)
	if err != nil {
		t.Fatalf("SavePreset error: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected ID %q to be kept, got %q", first.ID, second.ID)
	}

	found, err := FindPreset(path, "Hall")
	if err != nil {
		t.Fatalf("FindPreset error: %v", err)
	}
	if found.Request.Gap != 0 || found.Description != "no joints" {
		t.Errorf("preset not replaced: %+v", found)
	}

	store, _ := LoadPresets(path)
	if len(store.Presets) != 1 {
		t.Errorf("expected 1 preset, got %d", len(store.Presets))
	}
}

func TestSavePreset_RequiresName(t *testing.T) {
	if _, err := SavePreset(filepath.Join(t.TempDir(), "presets.json"), "  ", "", model.DefaultRequest()); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestDeletePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	if _, err := SavePreset(path, "Hall", "", model.DefaultRequest()); err != nil {
		t.Fatalf("SavePreset error: %v", err)
	}

	if err := DeletePreset(path, "Hall"); err != nil {
		t.Fatalf("DeletePreset error: %v", err)
	}
	if err := DeletePreset(path, "Hall"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("expected ErrPresetNotFound, got %v", err)
	}
	if _, err := FindPreset(path, "Hall"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("expected ErrPresetNotFound, got %v", err)
	}
}
