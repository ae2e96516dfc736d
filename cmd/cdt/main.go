// Command cdt triangulates polygons from stdin or an SVG file and prints
// the resulting constrained Delaunay triangulation.
//
// Text input is newline separated points in the form "x y", with each
// polygon separated by an extra newline. Every polygon is closed into a
// ring of constraint edges. With --erase=holes, clockwise/counterclockwise
// winding does not matter; nesting decides what is a hole.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/cdt"
)

var (
	input    = kingpin.Arg("input", "Input file (defaults to stdin).").File()
	svgInput = kingpin.Flag("svg", "Parse the input as an SVG file and triangulate its <polygon> elements.").Bool()
	erase    = kingpin.Flag("erase", "What to trim after triangulating.").Default("super").Enum("none", "super", "outer", "holes")
	pngPath  = kingpin.Flag("png", "Render the triangulation to a PNG file.").String()
	pngScale = kingpin.Flag("scale", "Pixels per input unit in the PNG output.").Default("10").Float64()
	quiet    = kingpin.Flag("quiet", "Only print the summary, not the triangles.").Short('q').Bool()
)

func main() {
	kingpin.Parse()
	in := os.Stdin
	if *input != nil {
		in = *input
		defer in.Close()
	}

	var polygons [][]cdt.Point
	var err error
	if *svgInput {
		polygons, err = readSVGPolygons(in)
	} else {
		polygons, err = readPolygons(in)
	}
	if err != nil {
		kingpin.Fatalf("reading input: %v", err)
	}
	if len(polygons) == 0 {
		kingpin.Fatalf("no polygons in input")
	}

	// Polygon rings become constraint edges; shared corners are welded by
	// deduplication so touching boundaries count as overlaps.
	var points []cdt.Point
	var edges []cdt.Edge
	for _, poly := range polygons {
		base := cdt.VertInd(len(points))
		n := cdt.VertInd(len(poly))
		points = append(points, poly...)
		for i := cdt.VertInd(0); i < n; i++ {
			edges = append(edges, cdt.NewEdge(base+i, base+(i+1)%n))
		}
	}
	points, dupes := cdt.RemoveDuplicatesAndRemapEdges(points, edges)

	tr := cdt.New(cdt.Randomized, nil)
	if err := tr.InsertVertices(points); err != nil {
		kingpin.Fatalf("inserting vertices: %v", err)
	}
	if err := tr.InsertEdges(edges); err != nil {
		kingpin.Fatalf("inserting constraint edges: %v", err)
	}
	switch *erase {
	case "super":
		tr.EraseSuperTriangle()
	case "outer":
		tr.EraseOuterTriangles()
	case "holes":
		tr.EraseOuterTrianglesAndHoles()
	}

	fmt.Printf("%d polygons, %d unique vertices (%s), %d constraint edges\n",
		len(polygons), len(points),
		aurora.Yellow(fmt.Sprintf("%d duplicates removed", len(dupes.Duplicates))),
		len(edges))
	fmt.Printf("%s triangles, %s fixed edges\n",
		aurora.Green(len(tr.Triangles)), aurora.Cyan(len(tr.FixedEdges)))

	if !*quiet {
		for _, t := range tr.Triangles {
			fmt.Println(t.Vertices[0], t.Vertices[1], t.Vertices[2])
		}
	}
	if *pngPath != "" {
		if err := renderPNG(tr, *pngPath, *pngScale); err != nil {
			kingpin.Fatalf("writing %s: %v", *pngPath, err)
		}
		fmt.Println("wrote", aurora.Bold(*pngPath))
	}
}

func readPolygons(in *os.File) ([][]cdt.Point, error) {
	var polygons [][]cdt.Point
	scanner := bufio.NewScanner(in)
	var points []cdt.Point
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of
		// the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (cdt.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return cdt.Point{}, fmt.Errorf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return cdt.Point{}, fmt.Errorf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return cdt.Point{}, fmt.Errorf("invalid y value %q: %v", parts[1], err)
	}
	return cdt.Point{X: x, Y: y}, nil
}

func readSVGPolygons(in *os.File) ([][]cdt.Point, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, err
	}
	var polygons [][]cdt.Point
	for _, polygonEl := range rootEl.FindAll("polygon") {
		var points []cdt.Point
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			coords := strings.Split(pointString, ",")
			if len(coords) != 2 {
				return nil, fmt.Errorf("invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(coords[0], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid x value %q: %v", coords[0], err)
			}
			y, err := strconv.ParseFloat(coords[1], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid y value %q: %v", coords[1], err)
			}
			points = append(points, cdt.Point{X: x, Y: y})
		}
		if len(points) >= 3 {
			polygons = append(polygons, points)
		}
	}
	return polygons, nil
}

func renderPNG(tr *cdt.Triangulation, path string, scale float64) error {
	minX, minY := tr.Vertices[0].X, tr.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range tr.Vertices {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	const pad = 20
	width := int(scale*(maxX-minX)) + pad*2
	height := int(scale*(maxY-minY)) + pad*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Origin at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(pad, pad)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetRGBA(0.2, 0.6, 0.2, 0.4)
	for _, t := range tr.Triangles {
		a, b, cc := tr.Vertices[t.Vertices[0]], tr.Vertices[t.Vertices[1]], tr.Vertices[t.Vertices[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
	}
	c.FillPreserve()
	c.SetRGB(0, 0.3, 0)
	c.SetLineWidth(1)
	c.Stroke()

	c.SetRGB(0.8, 0.2, 0)
	c.SetLineWidth(2)
	for e := range tr.FixedEdges {
		a, b := tr.Vertices[e.V1()], tr.Vertices[e.V2()]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
	}
	c.Stroke()

	return c.SavePNG(path)
}
