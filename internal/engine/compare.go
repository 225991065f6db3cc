package engine

import (
	"github.com/piwi3910/WallPanel/internal/model"
)

// ComparisonScenario defines a named request variant to compare.
type ComparisonScenario struct {
	Name    string
	Request model.LayoutRequest
}

// ComparisonResult holds the layout and computed statistics for a single
// scenario. Err is set when the scenario could not be planned.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.LayoutResult
	PieceCount   int
	Efficiency   float64 // final piece area as % of the wall
	WastePercent float64
	Err          error
}

// CompareScenarios plans each scenario and returns the results in scenario
// order. This enables side-by-side comparison of modes and feature toggles.
func CompareScenarios(scenarios []ComparisonScenario) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := New(scenario.Request).Plan()
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}

		eff := result.FinalEfficiency()
		waste := 100.0 - eff
		if waste < 0 {
			waste = 0
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			PieceCount:   len(result.Pieces),
			Efficiency:   eff,
			WastePercent: waste,
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current request, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(base model.LayoutRequest) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:    "Current Settings",
			Request: base,
		},
	}

	// Every fixed mode other than the requested one
	for _, mode := range model.CandidateModes {
		if mode == base.Mode {
			continue
		}
		alt := base
		alt.Mode = mode
		scenarios = append(scenarios, ComparisonScenario{
			Name:    mode.String(),
			Request: alt,
		})
	}

	headers := base
	headers.MergeHeaders = !base.MergeHeaders
	name := "Header Merge On"
	if base.MergeHeaders {
		name = "Header Merge Off"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Request: headers})

	sides := base
	sides.SidePanels = !base.SidePanels
	name = "Side Panels On"
	if base.SidePanels {
		name = "Side Panels Off"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Request: sides})

	if base.Gap > 0 {
		noGap := base
		noGap.Gap = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:    "No Gap",
			Request: noGap,
		})
	}

	return scenarios
}
