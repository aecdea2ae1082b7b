package tui

import (
	"github.com/akyairhashvil/countdial/internal/config"
	"github.com/akyairhashvil/countdial/internal/dial"
	"github.com/akyairhashvil/countdial/internal/util"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// dialLayout places the dial on screen. Rows are scaled by config.CellAspect
// when converting to dial points so the dial is round in screen space.
type dialLayout struct {
	width   int
	height  int
	radius  int // rows
	centerX int
	centerY int
}

func newDialLayout(width, height int) dialLayout {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	byHeight := (height - config.HeaderRows - config.FooterRows - 3) / 2
	byWidth := (width - 1 - 2*config.CellAspect) / (2 * config.CellAspect)
	radius := byHeight
	if byWidth < radius {
		radius = byWidth
	}
	radius = util.Clamp(radius, config.MinDialRadius, config.MaxDialRadius)
	return dialLayout{
		width:   width,
		height:  height,
		radius:  radius,
		centerX: width / 2,
		centerY: config.HeaderRows + radius + 1,
	}
}

// canvasRows is the dial area height: the dial plus one row of lean room on
// either side.
func (l dialLayout) canvasRows() int {
	return 2*l.radius + 3
}

// canvasTop is the first screen row of the dial area.
func (l dialLayout) canvasTop() int {
	return config.HeaderRows
}

func (l dialLayout) toPoint(x, y int) dial.Point {
	return dial.Point{X: x, Y: y * config.CellAspect}
}

func (l dialLayout) pivot() dial.Point {
	return l.toPoint(l.centerX, l.centerY)
}

// contains reports whether the screen cell lies on the dial face.
func (l dialLayout) contains(x, y int) bool {
	dx := x - l.centerX
	dy := (y - l.centerY) * config.CellAspect
	r := l.radius * config.CellAspect
	return dx*dx+dy*dy <= r*r
}
