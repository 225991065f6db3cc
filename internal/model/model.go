package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidGeometry is returned when the wall plane is not positive in
	// both dimensions. Every other degenerate input yields an empty layout.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnknownMode is returned when a layout mode name cannot be parsed.
	ErrUnknownMode = errors.New("unknown layout mode")
)

// LayoutMode selects how the wall is tiled with sheets.
type LayoutMode int

const (
	ModeVertical   LayoutMode = iota // Columns of stacked sheets, remainder on top of each column
	ModeHorizontal                   // Rows of sheets, one remainder row on top
	ModeHybrid                       // One full-height band plus one remainder band
	ModeAuto                         // Pick the most efficient of the above
)

// CandidateModes lists the concrete modes in evaluation order. The order
// breaks efficiency ties.
var CandidateModes = []LayoutMode{ModeVertical, ModeHorizontal, ModeHybrid}

func (m LayoutMode) String() string {
	switch m {
	case ModeVertical:
		return "Vertical"
	case ModeHorizontal:
		return "Horizontal"
	case ModeHybrid:
		return "Hybrid"
	case ModeAuto:
		return "Auto"
	default:
		return fmt.Sprintf("LayoutMode(%d)", int(m))
	}
}

// ParseLayoutMode accepts a mode name in any case.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return ModeVertical, nil
	case "horizontal", "h":
		return ModeHorizontal, nil
	case "hybrid":
		return ModeHybrid, nil
	case "auto", "optimize", "":
		return ModeAuto, nil
	}
	return ModeAuto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m LayoutMode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

func (m *LayoutMode) UnmarshalText(text []byte) error {
	parsed, err := ParseLayoutMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// WallSpec is the rectangular wall plane, origin at the bottom-left corner.
type WallSpec struct {
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// Area returns the wall area in square mm.
func (w WallSpec) Area() float64 {
	return w.Width * w.Height
}

// DoorSpec is a floor-anchored opening in the wall.
type DoorSpec struct {
	Width  float64 `json:"width"`    // mm, 0 means no door
	Height float64 `json:"height"`   // mm, 0 means no door
	X      float64 `json:"x_offset"` // distance from the left wall edge (mm)
}

// CenteredDoor places a door of the given size in the middle of the wall.
func CenteredDoor(wall WallSpec, w, h float64) DoorSpec {
	return DoorSpec{Width: w, Height: h, X: wall.Width/2 - w/2}
}

// Absent reports whether there is no opening to cut.
func (d DoorSpec) Absent() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Rect returns the opening as a rectangle standing on the floor.
func (d DoorSpec) Rect() Rect {
	return Rect{X: d.X, Y: 0, Width: d.Width, Height: d.Height}
}

// Area returns the opening area in square mm.
func (d DoorSpec) Area() float64 {
	if d.Absent() {
		return 0
	}
	return d.Width * d.Height
}

// ClipTo trims the door to the wall bounds. A door entirely outside the wall
// becomes absent.
func (d DoorSpec) ClipTo(wall WallSpec) DoorSpec {
	if d.Absent() {
		return DoorSpec{}
	}
	clipped, ok := d.Rect().Intersect(Rect{Width: wall.Width, Height: wall.Height})
	if !ok {
		return DoorSpec{}
	}
	return DoorSpec{Width: clipped.Width, Height: clipped.Height, X: clipped.X}
}

// SheetSpec is the repeatable panel module.
type SheetSpec struct {
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// Area returns the sheet area in square mm.
func (s SheetSpec) Area() float64 {
	return s.Width * s.Height
}

// PieceKind describes where a piece came from in the pipeline.
type PieceKind string

const (
	KindSheet     PieceKind = "sheet"     // Untouched full sheet
	KindRemainder PieceKind = "remainder" // Partial band reaching the wall edge
	KindFragment  PieceKind = "fragment"  // Residual of a sheet cut around the door
	KindHeader    PieceKind = "header"    // Header merged with the panel above it
	KindSide      PieceKind = "side"      // Filler beside the door
)

// Piece is one rectangle of the final cut list.
type Piece struct {
	Index int       `json:"index"` // 1-based emission order
	Kind  PieceKind `json:"kind"`
	Rect
}

// LayoutRequest holds every parameter of one layout computation.
type LayoutRequest struct {
	Wall            WallSpec   `json:"wall"`
	Door            DoorSpec   `json:"door"`
	Sheet           SheetSpec  `json:"sheet"`
	Gap             float64    `json:"gap"` // joint between sheets (mm)
	Mode            LayoutMode `json:"mode"`
	GridStep        float64    `json:"grid_step"` // snapping modulus (mm)
	MergeHeaders    bool       `json:"merge_headers"`
	HeaderThreshold float64    `json:"header_threshold"` // max header height to merge (mm)
	SidePanels      bool       `json:"side_panels"`
	CutInPlace      bool       `json:"cut_in_place"` // keep full sheets behind the door outline
}

// DefaultRequest mirrors the prototype defaults: a 6 m x 3 m wall with a
// centered 1200 x 2400 door and 1200 x 2400 sheets on a 10 mm joint.
func DefaultRequest() LayoutRequest {
	wall := WallSpec{Width: 6000, Height: 3000}
	return LayoutRequest{
		Wall:            wall,
		Door:            CenteredDoor(wall, 1200, 2400),
		Sheet:           SheetSpec{Width: 1200, Height: 2400},
		Gap:             10,
		Mode:            ModeAuto,
		GridStep:        10,
		MergeHeaders:    false,
		HeaderThreshold: DefaultHeaderThreshold,
		SidePanels:      false,
	}
}

// DefaultHeaderThreshold is the tallest header strip merged into the panel
// above it when header merging is enabled.
const DefaultHeaderThreshold = 300.0

// Validate checks the wall plane. Degenerate sheets, gaps or doors are not
// errors: they produce empty or partial layouts.
func (r LayoutRequest) Validate() error {
	if r.Wall.Width <= 0 || r.Wall.Height <= 0 {
		return fmt.Errorf("%w: wall must be positive, got %.0f x %.0f mm", ErrInvalidGeometry, r.Wall.Width, r.Wall.Height)
	}
	return nil
}

// EfficiencyRow is one line of the per-mode efficiency table.
type EfficiencyRow struct {
	Mode          LayoutMode `json:"mode"`
	EfficiencyPct float64    `json:"efficiency_pct"`
	WastePct      float64    `json:"waste_pct"`
	UsedAreaM2    float64    `json:"used_area_m2"`
}

// LayoutResult is the output of one layout computation.
type LayoutResult struct {
	ID         string          `json:"id"`
	Request    LayoutRequest   `json:"request"`
	ModeUsed   LayoutMode      `json:"mode_used"`
	Pieces     []Piece         `json:"pieces"`
	Efficiency []EfficiencyRow `json:"efficiency"`
	Warnings   []string        `json:"warnings,omitempty"`
}

// NewResultID returns a short identifier for a layout result.
func NewResultID() string {
	return uuid.New().String()[:8]
}

// PieceArea returns the total area of the final pieces in square mm.
func (lr LayoutResult) PieceArea() float64 {
	var total float64
	for _, p := range lr.Pieces {
		total += p.Area()
	}
	return total
}

// FinalEfficiency returns the final piece area as a percentage of the wall area.
func (lr LayoutResult) FinalEfficiency() float64 {
	wa := lr.Request.Wall.Area()
	if wa <= 0 {
		return 0
	}
	return lr.PieceArea() / wa * 100.0
}

// Row returns the efficiency row for a mode.
func (lr LayoutResult) Row(mode LayoutMode) (EfficiencyRow, bool) {
	for _, row := range lr.Efficiency {
		if row.Mode == mode {
			return row, true
		}
	}
	return EfficiencyRow{}, false
}

// CountByKind returns how many pieces of each kind the result holds.
func (lr LayoutResult) CountByKind() map[PieceKind]int {
	counts := make(map[PieceKind]int)
	for _, p := range lr.Pieces {
		counts[p.Kind]++
	}
	return counts
}

// Project ties a named request and its last result together for save/load.
type Project struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Request LayoutRequest `json:"request"`
	Result  *LayoutResult `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		ID:      uuid.New().String()[:8],
		Name:    "Untitled",
		Request: DefaultRequest(),
	}
}

// roundTo rounds v to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// NewEfficiencyRow converts raw ratios and an area in square mm into the
// reporting units: percentages and square metres rounded to two decimals.
func NewEfficiencyRow(mode LayoutMode, efficiency, waste, usedAreaMM2 float64) EfficiencyRow {
	return EfficiencyRow{
		Mode:          mode,
		EfficiencyPct: roundTo(efficiency*100, 2),
		WastePct:      roundTo(waste*100, 2),
		UsedAreaM2:    roundTo(usedAreaMM2/1e6, 2),
	}
}
