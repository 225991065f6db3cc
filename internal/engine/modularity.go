package engine

import (
	"fmt"
	"math"
)

// modTolerance absorbs float noise when testing whether a width closes on modules.
const modTolerance = 1e-6

// Modularity describes how a wall width lines up with the sheet module.
type Modularity struct {
	Module    float64 // sheet width + gap
	Remainder float64 // (W + gap) mod module
	Lower     float64 // nearest wall width at or below W that closes on whole modules
	Upper     float64 // nearest wall width above W that closes on whole modules
}

// CheckModularity reports whether the wall width closes on whole sheet
// modules, that is (W + gap) is a multiple of (sheet width + gap). When it
// does not, the returned Modularity names the nearest widths that would.
func CheckModularity(wallW, sheetW, gap float64) (Modularity, bool) {
	module := sheetW + gap
	if module <= 0 || wallW <= 0 {
		return Modularity{Module: module}, true
	}

	span := wallW + gap
	n := math.Floor(span / module)
	rem := span - n*module
	if rem < modTolerance || module-rem < modTolerance {
		return Modularity{Module: module, Lower: wallW, Upper: wallW}, true
	}

	lower := n*module - gap
	if n == 0 {
		lower = 0
	}
	return Modularity{
		Module:    module,
		Remainder: rem,
		Lower:     lower,
		Upper:     (n+1)*module - gap,
	}, false
}

// Warning renders the modularity advice shown alongside a layout.
func (m Modularity) Warning(wallW, sheetW, gap float64) string {
	return fmt.Sprintf("wall width %.0f mm does not close on %.0f+%.0f mm modules; nearest modular widths are %.0f mm and %.0f mm",
		wallW, sheetW, gap, m.Lower, m.Upper)
}
