package cdt

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 100

// dbgDraw renders the current triangulation and prints it in the terminal
// (iTerm only). Fixed edges are drawn on top in a second color.
func (tr *Triangulation) dbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, v := range tr.Vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	for _, t := range tr.Triangles {
		a := tr.Vertices[t.Vertices[0]]
		b := tr.Vertices[t.Vertices[1]]
		cc := tr.Vertices[t.Vertices[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
	}
	c.Stroke()

	c.SetLineWidth(2)
	c.SetRGB(1, 0.5, 0)
	for e := range tr.FixedEdges {
		a := tr.Vertices[e.V1()]
		b := tr.Vertices[e.V2()]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
	}
	c.Stroke()

	c.SavePNG("/tmp/cdt_triangulation.png")
	imgcat.CatFile("/tmp/cdt_triangulation.png", os.Stdout)
}
