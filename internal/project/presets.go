package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/WallPanel/internal/model"
)

// ErrPresetNotFound is returned when a named preset does not exist.
var ErrPresetNotFound = errors.New("preset not found")

// DefaultPresetPath returns the default file path for the preset store.
// This is located at ~/.wallpanel/presets.json.
func DefaultPresetPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes the preset store to a JSON file.
func SavePresets(path string, store model.PresetStore) error {
	return writeJSON(path, store)
}

// LoadPresets reads a preset store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadPresets(path string) (model.PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewPresetStore(), nil
		}
		return model.PresetStore{}, err
	}
	var store model.PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.PresetStore{}, err
	}
	if store.Presets == nil {
		store.Presets = []model.Preset{}
	}
	return store, nil
}

// SavePreset stores req under name, replacing an existing preset of the
// same name.
func SavePreset(path, name, description string, req model.LayoutRequest) (model.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Preset{}, errors.New("preset name is required")
	}
	store, err := LoadPresets(path)
	if err != nil {
		return model.Preset{}, err
	}
	p := model.NewPreset(name, description, req)
	store.Put(p)
	if err := SavePresets(path, store); err != nil {
		return model.Preset{}, err
	}
	return *store.FindByName(name), nil
}

// FindPreset returns the preset with the given name.
func FindPreset(path, name string) (model.Preset, error) {
	store, err := LoadPresets(path)
	if err != nil {
		return model.Preset{}, err
	}
	p := store.FindByName(name)
	if p == nil {
		return model.Preset{}, ErrPresetNotFound
	}
	return *p, nil
}

// DeletePreset removes the named preset from the store at path.
func DeletePreset(path, name string) error {
	store, err := LoadPresets(path)
	if err != nil {
		return err
	}
	if !store.Remove(name) {
		return ErrPresetNotFound
	}
	return SavePresets(path, store)
}
