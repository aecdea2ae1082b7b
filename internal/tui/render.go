package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/akyairhashvil/countdial/internal/config"
	"github.com/akyairhashvil/countdial/internal/rotation"
	"github.com/akyairhashvil/countdial/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellShadow
	cellRim
	cellMark
	cellHand
	cellPivot
)

type cell struct {
	r    rune
	kind cellKind
}

// canvas is a grid of styled runes covering the dial area.
type canvas struct {
	cols  int
	cells [][]cell
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, cells: make([][]cell, rows)}
	for i := range c.cells {
		c.cells[i] = make([]cell, cols)
	}
	return c
}

// set draws r at (x, y); cells outside the grid are ignored. A cell is only
// overwritten by a kind that ranks at least as high.
func (c *canvas) set(x, y int, r rune, kind cellKind) {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= c.cols {
		return
	}
	if c.cells[y][x].kind > kind {
		return
	}
	c.cells[y][x] = cell{r: r, kind: kind}
}

func styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellShadow:
		return CurrentTheme.Shadow
	case cellRim:
		return CurrentTheme.Rim
	case cellMark:
		return CurrentTheme.Mark
	case cellHand:
		return CurrentTheme.Hand
	case cellPivot:
		return CurrentTheme.Pivot
	}
	return lipgloss.NewStyle()
}

// String renders each row, styling runs of equal kind together.
func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		end := len(row)
		for end > 0 && row[end-1].kind == cellEmpty {
			end--
		}
		for x := 0; x < end; {
			kind := row[x].kind
			var run strings.Builder
			for ; x < end && row[x].kind == kind; x++ {
				if row[x].r == 0 {
					run.WriteByte(' ')
				} else {
					run.WriteRune(row[x].r)
				}
			}
			if kind == cellEmpty {
				b.WriteString(run.String())
			} else {
				b.WriteString(styleFor(kind).Render(run.String()))
			}
		}
	}
	return b.String()
}

// polar converts a clockwise bearing and a radius in rows to canvas cells.
func polar(cx, cy int, degrees, radius float64) (int, int) {
	rad := degrees * math.Pi / 180
	x := cx + util.RoundInt(math.Sin(rad)*radius*config.CellAspect)
	y := cy - util.RoundInt(math.Cos(rad)*radius)
	return x, y
}

// lean converts the tilt into a small shift of the whole face. A tilt at
// full offset moves the face one row or one cell-aspect worth of columns.
func (m DialModel) lean(snap rotation.Snapshot) (dx, dy int) {
	if m.tiltOffset <= 0 || snap.Tilt.IsZero() {
		return 0, 0
	}
	dy = -util.RoundInt(snap.Tilt.X / m.tiltOffset)
	dx = util.RoundInt(snap.Tilt.Y / m.tiltOffset * config.CellAspect)
	return dx, dy
}

func (m DialModel) renderDial(snap rotation.Snapshot) string {
	l := m.layout
	c := newCanvas(l.width, l.canvasRows())
	r := float64(l.radius)
	cx := l.centerX
	cy := l.centerY - l.canvasTop()

	dx, dy := m.lean(snap)
	if dx == 0 && dy == 0 {
		drawFace(c, cx+1, cy+1, r, cellShadow, config.ShadowGlyph)
	}
	cx += dx
	cy += dy

	drawFace(c, cx, cy, r, cellRim, config.RimGlyph)
	for deg := 0; deg < 360; deg += 30 {
		x, y := polar(cx, cy, float64(deg), r)
		c.set(x, y, config.MarkGlyph, cellMark)
	}
	for step := 1.0; step < r; step += 0.5 {
		x, y := polar(cx, cy, snap.Displayed, step)
		c.set(x, y, config.HandGlyph, cellHand)
	}
	c.set(cx, cy, config.PivotGlyph, cellPivot)
	return c.String()
}

func drawFace(c *canvas, cx, cy int, r float64, kind cellKind, glyph rune) {
	for deg := 0.0; deg < 360; deg += 2 {
		x, y := polar(cx, cy, deg, r)
		c.set(x, y, glyph, kind)
	}
}

func (m DialModel) renderHeader(snap rotation.Snapshot) string {
	w := m.layout.width
	title := CurrentTheme.Title.Render(strings.ToUpper(config.AppName))
	label := CurrentTheme.Label.Render(snap.Label() + " min")
	return strings.Join([]string{
		lipgloss.PlaceHorizontal(w, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, label),
		"",
	}, "\n")
}

func (m DialModel) renderFooter(snap rotation.Snapshot) string {
	w := m.layout.width

	var top string
	if snap.Phase == rotation.Countdown && m.startMinutes > 0 {
		pct := float64(snap.Remaining) / float64(m.startMinutes)
		top = fmt.Sprintf("%s  %d/%d", m.progress.ViewAs(pct), snap.Remaining, m.startMinutes)
	} else {
		top = CurrentTheme.Dim.Render("Drag the dial to set the countdown")
	}

	status := ""
	if m.Message != "" {
		style := CurrentTheme.Status
		if m.statusIsError {
			style = CurrentTheme.Error
		}
		status = style.Render(ansi.Truncate(m.Message, w, config.TruncationSuffix))
	}

	help := fmt.Sprintf("%s  |  %s v%s", m.keys.HelpFor(snap.Phase), CurrentTheme.Name, versionLabel())
	help = CurrentTheme.Dim.Render(ansi.Truncate(help, w, config.TruncationSuffix))

	return strings.Join([]string{
		lipgloss.PlaceHorizontal(w, lipgloss.Center, ansi.Truncate(top, w, config.TruncationSuffix)),
		status,
		help,
	}, "\n")
}

func (m DialModel) View() string {
	snap := m.machine.Snapshot()
	return strings.Join([]string{
		m.renderHeader(snap),
		m.renderDial(snap),
		m.renderFooter(snap),
	}, "\n")
}
