// Package export renders mazes to PNG images.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/labyrinth/internal/maze"
)

// Options controls the image layout.
type Options struct {
	CellSize  int    // pixels per cell, default 24
	WallWidth int    // pixels, default 2
	Title     string // drawn above the maze when set
	Solution  bool   // overlay the shortest path from start to goal
}

const (
	margin      = 8
	titleHeight = 22
)

var (
	bgColor       = color.RGBA{255, 255, 255, 255}
	wallColor     = color.RGBA{33, 33, 33, 255}
	startColor    = color.RGBA{46, 125, 50, 255}
	goalColor     = color.RGBA{198, 40, 40, 255}
	solutionColor = color.RGBA{255, 179, 0, 255}
	textColor     = color.RGBA{66, 66, 66, 255}
)

func (o Options) withDefaults() Options {
	if o.CellSize <= 0 {
		o.CellSize = 24
	}
	if o.WallWidth <= 0 {
		o.WallWidth = 2
	}
	if o.WallWidth > o.CellSize/2 {
		o.WallWidth = max(o.CellSize/2, 1)
	}
	return o
}

// Size returns the image size for a cols x rows maze.
func Size(cols, rows int, opts Options) (w, h int) {
	opts = opts.withDefaults()
	w = cols*opts.CellSize + 2*margin
	h = rows*opts.CellSize + 2*margin
	if opts.Title != "" {
		h += titleHeight
	}
	return w, h
}

// Render draws the maze into a new image.
func Render(g *maze.Grid, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	w, h := Size(g.Cols(), g.Rows(), opts)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgColor), image.Point{}, draw.Src)

	top := margin
	if opts.Title != "" {
		drawText(img, opts.Title, w/2, margin+titleHeight/2, textColor)
		top += titleHeight
	}
	origin := image.Point{X: margin, Y: top}
	cs := opts.CellSize

	cellRect := func(p maze.Position) image.Rectangle {
		tl := origin.Add(image.Point{X: p.X * cs, Y: p.Y * cs})
		return image.Rectangle{Min: tl, Max: tl.Add(image.Point{X: cs, Y: cs})}
	}
	inset := func(r image.Rectangle, n int) image.Rectangle {
		return image.Rect(r.Min.X+n, r.Min.Y+n, r.Max.X-n, r.Max.Y-n)
	}

	start := maze.Position{}
	goal := g.Goal()
	fill(img, inset(cellRect(start), opts.WallWidth), startColor)
	fill(img, inset(cellRect(goal), opts.WallWidth), goalColor)

	if opts.Solution {
		path := maze.Solve(g, start, goal)
		thick := max(cs/4, 1)
		for i, p := range path {
			c := cellRect(p)
			cx, cy := (c.Min.X+c.Max.X)/2, (c.Min.Y+c.Max.Y)/2
			fill(img, image.Rect(cx-thick, cy-thick, cx+thick, cy+thick), solutionColor)
			if i == 0 {
				continue
			}
			pc := cellRect(path[i-1])
			px, py := (pc.Min.X+pc.Max.X)/2, (pc.Min.Y+pc.Max.Y)/2
			fill(img, image.Rect(min(cx, px)-thick, min(cy, py)-thick, max(cx, px)+thick, max(cy, py)+thick), solutionColor)
		}
	}

	ww := opts.WallWidth
	for y := range g.Rows() {
		for x := range g.Cols() {
			p := maze.Position{X: x, Y: y}
			cell, _ := g.Cell(p)
			r := cellRect(p)
			if cell.Wall(maze.Top) {
				fill(img, image.Rect(r.Min.X-ww/2, r.Min.Y-ww/2, r.Max.X+ww-ww/2, r.Min.Y+ww-ww/2), wallColor)
			}
			if cell.Wall(maze.Left) {
				fill(img, image.Rect(r.Min.X-ww/2, r.Min.Y-ww/2, r.Min.X+ww-ww/2, r.Max.Y+ww-ww/2), wallColor)
			}
			if cell.Wall(maze.Bottom) {
				fill(img, image.Rect(r.Min.X-ww/2, r.Max.Y-ww/2, r.Max.X+ww-ww/2, r.Max.Y+ww-ww/2), wallColor)
			}
			if cell.Wall(maze.Right) {
				fill(img, image.Rect(r.Max.X-ww/2, r.Min.Y-ww/2, r.Max.X+ww-ww/2, r.Max.Y+ww-ww/2), wallColor)
			}
		}
	}

	if cs >= 14 {
		sr, gr := cellRect(start), cellRect(goal)
		drawText(img, "S", (sr.Min.X+sr.Max.X)/2, (sr.Min.Y+sr.Max.Y)/2, bgColor)
		drawText(img, "G", (gr.Min.X+gr.Max.X)/2, (gr.Min.Y+gr.Max.Y)/2, bgColor)
	}
	return img
}

// WritePNG encodes the rendered maze as PNG.
func WritePNG(w io.Writer, g *maze.Grid, opts Options) error {
	if g == nil {
		return fmt.Errorf("export: nil grid")
	}
	if err := png.Encode(w, Render(g, opts)); err != nil {
		return fmt.Errorf("export: cannot encode png: %w", err)
	}
	return nil
}

// SaveFile writes the rendered maze to path, creating parent directories.
func SaveFile(path string, g *maze.Grid, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}
	if err := WritePNG(f, g, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: cannot close %s: %w", path, err)
	}
	return nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// drawText centers text on (cx, cy) using the 7x13 bitmap face.
func drawText(img *image.RGBA, text string, cx, cy int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(text).Round()
	metrics := basicfont.Face7x13.Metrics()
	ascent := metrics.Ascent.Round()
	height := ascent + metrics.Descent.Round()
	d.Dot = fixed.Point26_6{
		X: fixed.I(cx - width/2),
		Y: fixed.I(cy - height/2 + ascent),
	}
	d.DrawString(text)
}
