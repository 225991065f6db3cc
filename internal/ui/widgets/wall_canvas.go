package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/model"
)

// Piece colors by kind.
var kindColors = map[model.PieceKind]color.NRGBA{
	model.KindSheet:     {R: 76, G: 175, B: 80, A: 200},  // green
	model.KindRemainder: {R: 33, G: 150, B: 243, A: 200}, // blue
	model.KindFragment:  {R: 255, G: 152, B: 0, A: 200},  // orange
	model.KindHeader:    {R: 156, G: 39, B: 176, A: 200}, // purple
	model.KindSide:      {R: 0, G: 188, B: 212, A: 200},  // cyan
}

var (
	colorWall     = color.NRGBA{R: 235, G: 235, B: 230, A: 255}
	colorDoor     = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	colorUnknown  = color.NRGBA{R: 150, G: 150, B: 150, A: 200}
	colorOutline  = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	colorWallEdge = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

// KindColor returns the fill color used for a piece kind.
func KindColor(kind model.PieceKind) color.NRGBA {
	if c, ok := kindColors[kind]; ok {
		return c
	}
	return colorUnknown
}

// FitScale returns the pixels-per-mm factor that fits the wall inside the
// given bounds, or 0 when the wall has no area.
func FitScale(wallW, wallH float64, maxW, maxH float32) float32 {
	if wallW <= 0 || wallH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0
	}
	scale := maxW / float32(wallW)
	if s := maxH / float32(wallH); s < scale {
		scale = s
	}
	return scale
}

// ToCanvas converts a wall rectangle (y up from the floor) to canvas
// coordinates (y down from the top).
func ToCanvas(r model.Rect, wallH float64, scale float32) (fyne.Position, fyne.Size) {
	pos := fyne.NewPos(float32(r.X)*scale, float32(wallH-r.Top())*scale)
	size := fyne.NewSize(float32(r.Width)*scale, float32(r.Height)*scale)
	return pos, size
}

// WallCanvas renders a layout result: the wall, its pieces and the door.
type WallCanvas struct {
	widget.BaseWidget
	result    model.LayoutResult
	maxWidth  float32
	maxHeight float32
}

func NewWallCanvas(result model.LayoutResult, maxW, maxH float32) *WallCanvas {
	wc := &WallCanvas{
		result:    result,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	wc.ExtendBaseWidget(wc)
	return wc
}

// SetResult replaces the rendered layout.
func (wc *WallCanvas) SetResult(result model.LayoutResult) {
	wc.result = result
	wc.Refresh()
}

func (wc *WallCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newWallCanvasRenderer(wc)
}

type wallCanvasRenderer struct {
	wc      *WallCanvas
	objects []fyne.CanvasObject
}

func newWallCanvasRenderer(wc *WallCanvas) *wallCanvasRenderer {
	r := &wallCanvasRenderer{wc: wc}
	r.rebuild()
	return r
}

func (r *wallCanvasRenderer) scale() float32 {
	wall := r.wc.result.Request.Wall
	return FitScale(wall.Width, wall.Height, r.wc.maxWidth, r.wc.maxHeight)
}

func (r *wallCanvasRenderer) rebuild() {
	r.objects = nil

	wall := r.wc.result.Request.Wall
	scale := r.scale()
	if scale == 0 {
		return
	}

	canvasW := float32(wall.Width) * scale
	canvasH := float32(wall.Height) * scale

	bg := canvas.NewRectangle(colorWall)
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, bg)

	for _, p := range r.wc.result.Pieces {
		pos, size := ToCanvas(p.Rect, wall.Height, scale)

		fill := canvas.NewRectangle(KindColor(p.Kind))
		fill.Resize(size)
		fill.Move(pos)
		r.objects = append(r.objects, fill)

		outline := canvas.NewRectangle(color.Transparent)
		outline.StrokeColor = colorOutline
		outline.StrokeWidth = 1
		outline.Resize(size)
		outline.Move(pos)
		r.objects = append(r.objects, outline)

		// Label (only if big enough)
		if size.Width > 40 && size.Height > 24 {
			label := canvas.NewText(fmt.Sprintf("#%d %.0fx%.0f", p.Index, p.Width, p.Height), color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(pos.X+3, pos.Y+2))
			r.objects = append(r.objects, label)
		}
	}

	door := r.wc.result.Request.Door.ClipTo(wall)
	if !door.Absent() {
		pos, size := ToCanvas(door.Rect(), wall.Height, scale)
		outline := canvas.NewRectangle(color.Transparent)
		outline.StrokeColor = colorDoor
		outline.StrokeWidth = 2
		outline.Resize(size)
		outline.Move(pos)
		r.objects = append(r.objects, outline)

		label := canvas.NewText("DOOR", colorDoor)
		label.TextSize = 10
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.Move(fyne.NewPos(pos.X+4, pos.Y+size.Height/2))
		r.objects = append(r.objects, label)
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = colorWallEdge
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, border)
}

func (r *wallCanvasRenderer) Layout(size fyne.Size)        {}
func (r *wallCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *wallCanvasRenderer) Destroy()                     {}
func (r *wallCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *wallCanvasRenderer) MinSize() fyne.Size {
	wall := r.wc.result.Request.Wall
	scale := r.scale()
	return fyne.NewSize(float32(wall.Width)*scale, float32(wall.Height)*scale)
}

// RenderLayoutResult creates a scrollable view of a layout: summary, wall
// drawing, efficiency table, warnings and purchase estimate.
func RenderLayoutResult(result *model.LayoutResult, wastePercent, pricePerSheet float64) fyne.CanvasObject {
	if result == nil || len(result.Pieces) == 0 {
		return widget.NewLabel("No layout yet. Enter the wall and click Plan.")
	}

	header := widget.NewLabel(fmt.Sprintf(
		"Mode used: %s, %d pieces, %.2f%% of the wall covered",
		result.ModeUsed, len(result.Pieces), result.FinalEfficiency(),
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	items := []fyne.CanvasObject{
		header,
		NewWallCanvas(*result, 700, 400),
		widget.NewSeparator(),
		legend(result),
		widget.NewSeparator(),
	}

	table := NewEfficiencyTable(*result)
	tableBox := container.NewGridWrap(fyne.NewSize(520, float32(len(result.Efficiency)+1)*36), table)
	items = append(items, widget.NewLabelWithStyle("Efficiency by mode", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), tableBox)

	for _, w := range result.Warnings {
		warning := widget.NewLabel("WARNING: " + w)
		warning.Importance = widget.DangerImportance
		warning.Wrapping = fyne.TextWrapWord
		items = append(items, warning)
	}

	est := model.CalculatePurchaseEstimate(result.Pieces, result.Request.Sheet, wastePercent, pricePerSheet)
	summaryText := fmt.Sprintf(
		"Sheets to buy: %d (%.2f exact, %d with %.0f%% waste)",
		est.SheetsNeededMin, est.SheetsNeededExact, est.SheetsWithWaste, est.WastePercent,
	)
	if est.PricePerSheet > 0 {
		summaryText += fmt.Sprintf(" | Estimated material cost: %.2f", est.EstimatedCost)
	}
	summary := widget.NewLabel(summaryText)
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}

// legend lists the piece kinds present in the result with their counts.
func legend(result *model.LayoutResult) fyne.CanvasObject {
	counts := result.CountByKind()
	box := container.NewHBox()
	for _, kind := range []model.PieceKind{model.KindSheet, model.KindRemainder, model.KindFragment, model.KindHeader, model.KindSide} {
		if counts[kind] == 0 {
			continue
		}
		swatch := canvas.NewRectangle(KindColor(kind))
		swatch.SetMinSize(fyne.NewSize(14, 14))
		box.Add(container.NewCenter(swatch))
		box.Add(widget.NewLabel(fmt.Sprintf("%s (%d)", kind, counts[kind])))
	}
	return box
}
