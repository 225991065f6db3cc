// Package export provides functionality for exporting wall layouts
// to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/WallPanel/internal/model"
)

// rgb represents a fill color.
type rgb struct {
	R, G, B int
}

// kindColors mirrors the color scheme used in the UI wall canvas widget.
var kindColors = map[model.PieceKind]rgb{
	model.KindSheet:     {R: 76, G: 175, B: 80},  // green
	model.KindRemainder: {R: 33, G: 150, B: 243}, // blue
	model.KindFragment:  {R: 255, G: 152, B: 0},  // orange
	model.KindHeader:    {R: 156, G: 39, B: 176}, // purple
	model.KindSide:      {R: 0, G: 188, B: 212},  // cyan
}

func colorFor(kind model.PieceKind) rgb {
	if c, ok := kindColors[kind]; ok {
		return c
	}
	return rgb{R: 158, G: 158, B: 158}
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	rowHeight    = 6.0
)

// ReportOptions controls the optional parts of the PDF report.
type ReportOptions struct {
	ShowSizes     bool    // print piece sizes inside the drawing
	WastePercent  float64 // extra material for the purchase estimate
	PricePerSheet float64
}

// ReportOptionsFromConfig reads the report options from the app config.
func ReportOptionsFromConfig(cfg model.AppConfig) ReportOptions {
	return ReportOptions{
		ShowSizes:     true,
		WastePercent:  cfg.WastePercent,
		PricePerSheet: cfg.PricePerSheet,
	}
}

// ExportPDF generates a PDF document with the wall drawing on the first
// page, followed by a summary page and the full cut list.
func ExportPDF(path string, result model.LayoutResult, opts ReportOptions) error {
	if len(result.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderWallPage(pdf, result, opts)

	pdf.AddPage()
	renderSummaryPage(pdf, result, opts)

	renderCutListPages(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderWallPage draws the wall, its pieces and the door on the current page.
func renderWallPage(pdf *fpdf.Fpdf, result model.LayoutResult, opts ReportOptions) {
	wall := result.Request.Wall

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Wall %.0f x %.0f mm - %s layout", wall.Width, wall.Height, result.ModeUsed)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Piece area: %.2f m² | Coverage: %.1f%% | Sheet: %.0f x %.0f mm, gap %.0f mm",
		len(result.Pieces), result.PieceArea()/1e6, result.FinalEfficiency(),
		result.Request.Sheet.Width, result.Request.Sheet.Height, result.Request.Gap)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/wall.Width, drawHeight/wall.Height)
	canvasW := wall.Width * scale
	canvasH := wall.Height * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// toPage maps wall coordinates (y up from the floor) to page coordinates.
	toPage := func(r model.Rect) (x, y, w, h float64) {
		return offsetX + r.X*scale, offsetY + (wall.Height-r.Top())*scale, r.Width * scale, r.Height * scale
	}

	// Wall background
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for _, p := range result.Pieces {
		col := colorFor(p.Kind)
		px, py, pw, ph := toPage(p.Rect)

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 8 && ph > 6 {
			pdf.SetFont("Helvetica", "B", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			num := fmt.Sprintf("%d", p.Index)
			numW := pdf.GetStringWidth(num)
			pdf.SetXY(px+(pw-numW)/2, py+ph/2-4)
			pdf.CellFormat(numW, 4, num, "", 0, "C", false, 0, "")

			if opts.ShowSizes {
				pdf.SetFont("Helvetica", "", labelFontSize(pw, ph)-1)
				dims := fmt.Sprintf("%.0fx%.0f", p.Width, p.Height)
				dimsW := pdf.GetStringWidth(dims)
				if ph > 12 && dimsW < pw-2 {
					pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
					pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
				}
			}
		}
	}

	drawDoor(pdf, result, toPage)
	drawDimensionAnnotations(pdf, wall, offsetX, offsetY, canvasW, canvasH)
	drawKindLegend(pdf, result, offsetY+canvasH+6)
}

// drawDoor outlines the clipped door opening with a dashed red line.
func drawDoor(pdf *fpdf.Fpdf, result model.LayoutResult, toPage func(model.Rect) (float64, float64, float64, float64)) {
	door := result.Request.Door.ClipTo(result.Request.Wall)
	if door.Absent() {
		return
	}

	dx, dy, dw, dh := toPage(door.Rect())
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.SetDashPattern([]float64{2, 1}, 0)
	pdf.Rect(dx, dy, dw, dh, "D")
	pdf.SetDashPattern([]float64{}, 0)

	if dw > 20 && dh > 8 {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetTextColor(180, 0, 0)
		labelW := pdf.GetStringWidth("DOOR")
		pdf.SetXY(dx+(dw-labelW)/2, dy+dh/2-2)
		pdf.CellFormat(labelW, 4, "DOOR", "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// drawDimensionAnnotations adds width and height labels outside the wall rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, wall model.WallSpec, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", wall.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", wall.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawKindLegend renders one swatch per piece kind present in the layout.
func drawKindLegend(pdf *fpdf.Fpdf, result model.LayoutResult, startY float64) {
	counts := result.CountByKind()

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(20, 4, "Legend:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 22
	for _, kind := range []model.PieceKind{model.KindSheet, model.KindRemainder, model.KindFragment, model.KindHeader, model.KindSide} {
		n := counts[kind]
		if n == 0 {
			continue
		}
		col := colorFor(kind)
		label := fmt.Sprintf("%s (%d)", kind, n)
		labelW := pdf.GetStringWidth(label) + 6

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}
}

// renderSummaryPage draws the efficiency table, warnings and purchase estimate.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.LayoutResult, opts ReportOptions) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Wall Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	req := result.Request

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Parameters", "", 0, "L", false, 0, "")
	y += 9

	door := "none"
	if !req.Door.Absent() {
		door = fmt.Sprintf("%.0f x %.0f mm at x=%.0f mm", req.Door.Width, req.Door.Height, req.Door.X)
	}
	items := []struct {
		label string
		value string
	}{
		{"Wall", fmt.Sprintf("%.0f x %.0f mm", req.Wall.Width, req.Wall.Height)},
		{"Door", door},
		{"Sheet", fmt.Sprintf("%.0f x %.0f mm", req.Sheet.Width, req.Sheet.Height)},
		{"Gap / Grid step", fmt.Sprintf("%.0f mm / %.0f mm", req.Gap, req.GridStep)},
		{"Mode", fmt.Sprintf("%s (requested %s)", result.ModeUsed, req.Mode)},
		{"Header merge / Side panels", fmt.Sprintf("%t / %t", req.MergeHeaders, req.SidePanels)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(100, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}
	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Efficiency by Mode", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{40, 40, 40, 50}
	headers := []string{"Mode", "Efficiency (%)", "Waste (%)", "Used Area (m²)"}
	y = drawTableHeader(pdf, y, colWidths, headers)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range result.Efficiency {
		if row.Mode == result.ModeUsed {
			pdf.SetFillColor(200, 230, 201)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		y = drawTableRow(pdf, y, colWidths, []string{
			row.Mode.String(),
			fmt.Sprintf("%.2f", row.EfficiencyPct),
			fmt.Sprintf("%.2f", row.WastePct),
			fmt.Sprintf("%.2f", row.UsedAreaM2),
		})
	}

	if len(result.Warnings) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Warnings", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range result.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, "- "+w, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	est := model.CalculatePurchaseEstimate(result.Pieces, req.Sheet, opts.WastePercent, opts.PricePerSheet)
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Purchase Estimate", "", 0, "L", false, 0, "")
	y += 9

	estItems := []struct {
		label string
		value string
	}{
		{"Sheets (minimum)", fmt.Sprintf("%d", est.SheetsNeededMin)},
		{"Sheets (with waste)", fmt.Sprintf("%d (+%.0f%%)", est.SheetsWithWaste, est.WastePercent)},
	}
	if est.PricePerSheet > 0 {
		estItems = append(estItems, struct {
			label string
			value string
		}{"Estimated cost", fmt.Sprintf("%.2f", est.EstimatedCost)})
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range estItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	drawFooter(pdf)
}

// renderCutListPages prints every piece as a table row, adding pages as needed.
func renderCutListPages(pdf *fpdf.Fpdf, result model.LayoutResult) {
	colWidths := []float64{20, 35, 40, 40, 40, 40}
	headers := []string{"#", "Kind", "X (mm)", "Y (mm)", "Width (mm)", "Height (mm)"}

	var y float64
	for i, p := range result.Pieces {
		if i == 0 || y+rowHeight > pageHeight-marginBottom-5 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetXY(marginLeft, marginTop)
			pdf.CellFormat(100, 8, "Cut List", "", 0, "L", false, 0, "")
			y = drawTableHeader(pdf, marginTop+12, colWidths, headers)
			pdf.SetFont("Helvetica", "", 9)
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		y = drawTableRow(pdf, y, colWidths, []string{
			fmt.Sprintf("%d", p.Index),
			string(p.Kind),
			fmt.Sprintf("%.0f", p.X),
			fmt.Sprintf("%.0f", p.Y),
			fmt.Sprintf("%.0f", p.Width),
			fmt.Sprintf("%.0f", p.Height),
		})
	}
}

func drawTableHeader(pdf *fpdf.Fpdf, y float64, colWidths []float64, headers []string) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	pdf.SetFont("Helvetica", "", 9)
	return y + rowHeight
}

func drawTableRow(pdf *fpdf.Fpdf, y float64, colWidths []float64, cells []string) float64 {
	xPos := marginLeft
	for j, cell := range cells {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
		xPos += colWidths[j]
	}
	return y + rowHeight
}

func drawFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
		"Generated by WallPanel - approximate layout, check openings, edges and tolerances on site", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 9
	case minDim > 20:
		return 8
	default:
		return 7
	}
}
