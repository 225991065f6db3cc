// Package ui provides the WallPanel desktop application.
//
// This file defines a compact Fyne theme and maps the configured theme
// name onto it.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// WallPanelTheme wraps the default Fyne theme with compact sizing overrides.
// When system is true the variant requested by Fyne is used as is.
type WallPanelTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewWallPanelTheme returns the theme for a configured name: "light",
// "dark" or anything else for the system default.
func NewWallPanelTheme(name string) *WallPanelTheme {
	t := &WallPanelTheme{base: theme.DefaultTheme()}
	t.SetName(name)
	return t
}

// SetName switches between light, dark and system variants.
func (t *WallPanelTheme) SetName(name string) {
	switch name {
	case "light":
		t.variant, t.system = theme.VariantLight, false
	case "dark":
		t.variant, t.system = theme.VariantDark, false
	default:
		t.system = true
	}
}

// Color delegates to the base theme with the stored variant.
func (t *WallPanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.system {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *WallPanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *WallPanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *WallPanelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
