package model

import "math"

// PurchaseEstimate holds the results of a sheet purchasing calculation.
type PurchaseEstimate struct {
	PieceCount        int     `json:"piece_count"`
	TotalPieceArea    float64 `json:"total_piece_area"`    // Total area of all pieces (sq mm)
	SheetArea         float64 `json:"sheet_area"`          // Area of one sheet (sq mm)
	SheetsNeededExact float64 `json:"sheets_needed_exact"` // Exact fractional number of sheets
	SheetsNeededMin   int     `json:"sheets_needed_min"`   // Minimum sheets (ceiling of exact)
	SheetsWithWaste   int     `json:"sheets_with_waste"`   // Recommended sheets including waste factor
	WastePercent      float64 `json:"waste_percent"`       // Waste factor applied (e.g., 10 for 10%)
	EstimatedCost     float64 `json:"estimated_cost"`      // Total cost if pricing available
	PricePerSheet     float64 `json:"price_per_sheet"`     // Price used for estimation
}

// CalculatePurchaseEstimate computes how many sheets to buy for a cut list
// from the total piece area and an extra waste percentage.
func CalculatePurchaseEstimate(pieces []Piece, sheet SheetSpec, wastePercent, pricePerSheet float64) PurchaseEstimate {
	var totalArea float64
	for _, p := range pieces {
		totalArea += p.Area()
	}

	sheetArea := sheet.Area()
	if sheetArea <= 0 {
		return PurchaseEstimate{
			PieceCount:     len(pieces),
			TotalPieceArea: totalArea,
			WastePercent:   wastePercent,
		}
	}

	exactSheets := totalArea / sheetArea
	minSheets := int(math.Ceil(exactSheets))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	sheetsWithWaste := int(math.Ceil(exactSheets * wasteFactor))
	if sheetsWithWaste < minSheets {
		sheetsWithWaste = minSheets
	}

	return PurchaseEstimate{
		PieceCount:        len(pieces),
		TotalPieceArea:    totalArea,
		SheetArea:         sheetArea,
		SheetsNeededExact: exactSheets,
		SheetsNeededMin:   minSheets,
		SheetsWithWaste:   sheetsWithWaste,
		WastePercent:      wastePercent,
		EstimatedCost:     float64(sheetsWithWaste) * pricePerSheet,
		PricePerSheet:     pricePerSheet,
	}
}
