package export

import (
	"fmt"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerWall   = "WALL"
	LayerDoor   = "DOOR"
	LayerPieces = "PIECES"
	LayerLabels = "LABELS"
)

// textHeight is the height of piece numbers in drawing units (mm).
const textHeight = 80.0

// BuildDrawing draws the wall outline, the door and every piece as closed
// rectangles of LINE entities, with piece numbers as TEXT at piece centres.
// Coordinates are wall millimetres with y up, matching CAD conventions.
func BuildDrawing(result model.LayoutResult) (*drawing.Drawing, error) {
	d := dxf.NewDrawing()

	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{LayerWall, color.White},
		{LayerDoor, color.Red},
		{LayerPieces, color.Green},
		{LayerLabels, color.Cyan},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, true); err != nil {
			return nil, fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	wall := result.Request.Wall
	if err := d.ChangeLayer(LayerWall); err != nil {
		return nil, err
	}
	if err := drawRect(d, model.NewRect(0, 0, wall.Width, wall.Height)); err != nil {
		return nil, err
	}

	if door := result.Request.Door.ClipTo(wall); !door.Absent() {
		if err := d.ChangeLayer(LayerDoor); err != nil {
			return nil, err
		}
		if err := drawRect(d, door.Rect()); err != nil {
			return nil, err
		}
	}

	if err := d.ChangeLayer(LayerPieces); err != nil {
		return nil, err
	}
	for _, p := range result.Pieces {
		if err := drawRect(d, p.Rect); err != nil {
			return nil, fmt.Errorf("failed to draw piece %d: %w", p.Index, err)
		}
	}

	if err := d.ChangeLayer(LayerLabels); err != nil {
		return nil, err
	}
	for _, p := range result.Pieces {
		cx := p.X + p.Width/2
		cy := p.Y + p.Height/2
		if _, err := d.Text(fmt.Sprintf("%d", p.Index), cx, cy, 0, textHeight); err != nil {
			return nil, fmt.Errorf("failed to label piece %d: %w", p.Index, err)
		}
	}

	return d, nil
}

func drawRect(d *drawing.Drawing, r model.Rect) error {
	corners := [][2]float64{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Top()},
		{r.X, r.Top()},
	}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}

// ExportDXF writes the layout as a DXF drawing for CAD import.
func ExportDXF(path string, result model.LayoutResult) error {
	if len(result.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	d, err := BuildDrawing(result)
	if err != nil {
		return err
	}
	return d.SaveAs(path)
}
