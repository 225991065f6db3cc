package model

import (
	"time"

	"github.com/google/uuid"
)

// Preset is a named, reusable layout request such as a standard door wall.
// It captures parameters only, never results.
type Preset struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	Request     LayoutRequest `json:"request"`
}

func NewPreset(name, description string, req LayoutRequest) Preset {
	now := time.Now().UTC().Format(time.RFC3339)
	return Preset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Request:     req,
	}
}

// ToProject creates a new Project seeded with this preset's request.
func (p Preset) ToProject(projectName string) Project {
	proj := NewProject()
	proj.Name = projectName
	proj.Request = p.Request
	return proj
}

// PresetStore holds a collection of presets.
type PresetStore struct {
	Presets []Preset `json:"presets"`
}

func NewPresetStore() PresetStore {
	return PresetStore{Presets: []Preset{}}
}

// Put adds a preset, replacing any existing preset with the same name.
func (ps *PresetStore) Put(p Preset) {
	for i := range ps.Presets {
		if ps.Presets[i].Name == p.Name {
			p.ID = ps.Presets[i].ID
			p.CreatedAt = ps.Presets[i].CreatedAt
			ps.Presets[i] = p
			return
		}
	}
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by name. Returns true if found and removed.
func (ps *PresetStore) Remove(name string) bool {
	for i, p := range ps.Presets {
		if p.Name == name {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName returns a pointer to the preset with the given name, or nil.
func (ps *PresetStore) FindByName(name string) *Preset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns preset names in store order.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}
