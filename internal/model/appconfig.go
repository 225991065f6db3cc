package model

// AppConfig holds application-wide preferences and default layout settings.
type AppConfig struct {
	// Defaults applied to new requests
	DefaultWallWidth       float64    `json:"default_wall_width"`
	DefaultWallHeight      float64    `json:"default_wall_height"`
	DefaultSheetWidth      float64    `json:"default_sheet_width"`
	DefaultSheetHeight     float64    `json:"default_sheet_height"`
	DefaultGap             float64    `json:"default_gap"`
	DefaultGridStep        float64    `json:"default_grid_step"`
	DefaultMode            LayoutMode `json:"default_mode"`
	DefaultHeaderThreshold float64    `json:"default_header_threshold"`
	MergeHeaders           bool       `json:"merge_headers"`
	SidePanels             bool       `json:"side_panels"`

	// Purchase estimate
	WastePercent  float64 `json:"waste_percent"`
	PricePerSheet float64 `json:"price_per_sheet"`

	// Application preferences
	ServerAddr     string   `json:"server_addr"`
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultRequest().
func DefaultAppConfig() AppConfig {
	defaults := DefaultRequest()
	return AppConfig{
		DefaultWallWidth:       defaults.Wall.Width,
		DefaultWallHeight:      defaults.Wall.Height,
		DefaultSheetWidth:      defaults.Sheet.Width,
		DefaultSheetHeight:     defaults.Sheet.Height,
		DefaultGap:             defaults.Gap,
		DefaultGridStep:        defaults.GridStep,
		DefaultMode:            defaults.Mode,
		DefaultHeaderThreshold: defaults.HeaderThreshold,
		MergeHeaders:           defaults.MergeHeaders,
		SidePanels:             defaults.SidePanels,
		WastePercent:           10,
		PricePerSheet:          0,
		ServerAddr:             ":8080",
		RecentProjects:         []string{},
		Theme:                  "system",
	}
}

// ApplyToRequest copies the default values from AppConfig into a request.
// The door is left alone since it is specific to each wall.
func (c AppConfig) ApplyToRequest(r *LayoutRequest) {
	r.Wall = WallSpec{Width: c.DefaultWallWidth, Height: c.DefaultWallHeight}
	r.Sheet = SheetSpec{Width: c.DefaultSheetWidth, Height: c.DefaultSheetHeight}
	r.Gap = c.DefaultGap
	r.GridStep = c.DefaultGridStep
	r.Mode = c.DefaultMode
	r.HeaderThreshold = c.DefaultHeaderThreshold
	r.MergeHeaders = c.MergeHeaders
	r.SidePanels = c.SidePanels
}

// AddRecentProject moves path to the front of the recent list, keeping at
// most max entries.
func (c *AppConfig) AddRecentProject(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	c.RecentProjects = recent
}
