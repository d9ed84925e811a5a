package draw

import (
	"math"
	"strings"
)

// Canvas is a monochrome pixel grid shown with half-block characters, two
// pixels stacked in every terminal cell. Drawing calls take field
// coordinates and scale them to the current cell size.
type Canvas struct {
	cols   int
	rows   int
	height int    // Pixel rows, rows*2
	pixels []bool // [y*cols + x]

	fieldW float64
	fieldH float64
	sx     float64 // Pixels per field unit, horizontally
	sy     float64 // Pixels per field unit, vertically
}

// NewScaledCanvas creates a canvas of cols x rows cells showing a
// fieldW x fieldH field.
func NewScaledCanvas(cols, rows int, fieldW, fieldH float64) *Canvas {
	c := &Canvas{fieldW: fieldW, fieldH: fieldH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell size and keeps the field size.
func (c *Canvas) Resize(cols, rows int) {
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols, c.rows, c.height = cols, rows, rows*2
		c.pixels = make([]bool, cols*c.height)
	}
	c.sx = float64(c.cols) / c.fieldW
	c.sy = float64(c.height) / c.fieldH
}

// Columns returns the width of the canvas in terminal cells.
func (c *Canvas) Columns() int {
	return c.cols
}

// Rows returns the height of the canvas in terminal cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// Cell returns the 1-based terminal cell covering the field point (x, y).
func (c *Canvas) Cell(x, y float64) (col, row int) {
	px := int(math.Round(x * c.sx))
	py := int(math.Round(y * c.sy))
	return px + 1, py/2 + 1
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) set(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.height {
		c.pixels[y*c.cols+x] = true
	}
}

// span sets pixels x0 through x1 on pixel row y, clipped to the canvas.
func (c *Canvas) span(x0, x1, y int) {
	if y < 0 || y >= c.height {
		return
	}
	x0, x1 = max(x0, 0), min(x1, c.cols-1)
	if x0 > x1 {
		return
	}
	row := c.pixels[y*c.cols+x0 : y*c.cols+x1+1]
	for i := range row {
		row[i] = true
	}
}

// bounds maps a field rectangle to inclusive pixel bounds.
func (c *Canvas) bounds(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(x * c.sx))
	y0 = int(math.Round(y * c.sy))
	x1 = int(math.Round((x + w) * c.sx))
	y1 = int(math.Round((y + h) * c.sy))
	return
}

// FillRect fills an axis-aligned field rectangle, edges included.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0, y0, x1, y1 := c.bounds(x, y, w, h)
	for py := max(y0, 0); py <= min(y1, c.height-1); py++ {
		c.span(x0, x1, py)
	}
}

// StrokeRect draws the one-pixel outline of an axis-aligned field rectangle.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	x0, y0, x1, y1 := c.bounds(x, y, w, h)
	c.span(x0, x1, y0)
	c.span(x0, x1, y1)
	for py := max(y0+1, 0); py < min(y1, c.height); py++ {
		c.set(x0, py)
		c.set(x1, py)
	}
}

// DrawLine draws a one-pixel line between two field points.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := p1.X*c.sx, p1.Y*c.sy
	x2, y2 := p2.X*c.sx, p2.Y*c.sy

	steps := int(math.Ceil(max(math.Abs(x2-x1), math.Abs(y2-y1))))
	if steps == 0 {
		c.set(int(math.Round(x1)), int(math.Round(y1)))
		return
	}
	stepX := (x2 - x1) / float64(steps)
	stepY := (y2 - y1) / float64(steps)
	for i := 0; i <= steps; i++ {
		c.set(int(math.Round(x1+stepX*float64(i))), int(math.Round(y1+stepY*float64(i))))
	}
}

// StrokeEllipse outlines the axis-aligned ellipse centred on (cx, cy) with
// radii rx and ry, all in field units.
func (c *Canvas) StrokeEllipse(cx, cy, rx, ry float64) {
	pcx, pcy := cx*c.sx, cy*c.sy
	prx, pry := rx*c.sx, ry*c.sy
	if prx <= 0 || pry <= 0 {
		return
	}

	// Rows cover the steep sides, columns the flat top and bottom.
	for py := int(math.Ceil(pcy - pry)); py <= int(math.Floor(pcy+pry)); py++ {
		t := (float64(py) - pcy) / pry
		d := prx * math.Sqrt(max(1-t*t, 0))
		c.set(int(math.Round(pcx-d)), py)
		c.set(int(math.Round(pcx+d)), py)
	}
	for px := int(math.Ceil(pcx - prx)); px <= int(math.Floor(pcx+prx)); px++ {
		t := (float64(px) - pcx) / prx
		d := pry * math.Sqrt(max(1-t*t, 0))
		c.set(px, int(math.Round(pcy-d)))
		c.set(px, int(math.Round(pcy+d)))
	}
}

// Render writes every non-empty cell to cw. Each run of adjacent cells on a
// row costs one cursor move.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		top := c.pixels[row*2*c.cols : (row*2+1)*c.cols]
		bottom := c.pixels[(row*2+1)*c.cols : (row*2+2)*c.cols]

		inRun := false
		for col := range top {
			ch := halfBlock(top[col], bottom[col])
			if ch == BlockEmpty {
				inRun = false
				continue
			}
			if !inRun {
				cw.moveCursor(col+1, row+1)
				inRun = true
			}
			cw.buf.WriteRune(ch)
		}
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	}
	return BlockEmpty
}

// RenderBorder frames the canvas when cw centres it in a larger terminal.
// Horizontal rules need a spare row above the canvas and side bars a spare
// column to its left; corners appear only when both fit.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	sides := cw.offCol >= 1
	rules := cw.offRow >= 1

	if rules {
		rule := strings.Repeat("─", c.cols)
		top, bottom, col := rule, rule, 1
		if sides {
			top, bottom, col = "┌"+rule+"┐", "└"+rule+"┘", 0
		}
		cw.WriteAt(col, 0, top)
		cw.WriteAt(col, c.rows+1, bottom)
	}
	if sides {
		for row := 1; row <= c.rows; row++ {
			cw.WriteAt(0, row, "│")
			cw.WriteAt(c.cols+1, row, "│")
		}
	}
}
