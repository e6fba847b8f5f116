package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	ch    rune
	depth float64
	style *lipgloss.Style
}

// Canvas is a cell grid with a depth buffer: nearer glyphs win the cell.
type Canvas struct {
	Width, Height int
	cells         [][]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: make([][]cell, h)}
	for i := range c.cells {
		c.cells[i] = make([]cell, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: ' ', depth: -1}
		}
	}
}

// Put draws ch at (x, y) if the cell is empty or the existing glyph is
// farther away.
func (c *Canvas) Put(x, y int, depth float64, ch rune, style *lipgloss.Style) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	cur := &c.cells[y][x]
	if cur.depth >= 0 && cur.depth <= depth {
		return
	}
	*cur = cell{ch: ch, depth: depth, style: style}
}

// PutString draws s horizontally centered on (x, y), depth-tested per cell.
func (c *Canvas) PutString(x, y int, depth float64, s string, style *lipgloss.Style) {
	runes := []rune(s)
	start := x - len(runes)/2
	for i, ch := range runes {
		c.Put(start+i, y, depth, ch, style)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		var run []rune
		var runStyle *lipgloss.Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runStyle != nil {
				b.WriteString(runStyle.Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < c.Width; x++ {
			cl := c.cells[y][x]
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			run = append(run, cl.ch)
		}
		flush()
		if y < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
