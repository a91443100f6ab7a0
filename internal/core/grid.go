package core

import "math"

// Grid is the read-only node lookup a field is attached to. Node indices run
// from 0 to NodeCount()-1.
type Grid interface {
	NodeCount() int
	NodeXY(node int) (x, y float64)
}

// RasterGrid is a regular grid of nodes stored in row-major order with equal
// spacing along both axes. Node (col, row) sits at (col*dx, row*dx).
type RasterGrid struct {
	W, H int
	dx   float64
}

// NewRasterGrid allocates a grid with the given dimensions and node spacing.
func NewRasterGrid(w, h int, dx float64) *RasterGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if dx <= 0 || math.IsNaN(dx) {
		dx = 1
	}
	return &RasterGrid{W: w, H: h, dx: dx}
}

// NodeCount returns the number of nodes in the grid.
func (g *RasterGrid) NodeCount() int { return g.W * g.H }

// Size reports the grid dimensions.
func (g *RasterGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Spacing returns the distance between adjacent nodes.
func (g *RasterGrid) Spacing() float64 { return g.dx }

// Index returns the linear node index for column x and row y.
func (g *RasterGrid) Index(x, y int) int { return y*g.W + x }

// NodeXY returns the coordinates of node, which must be in [0, NodeCount()).
func (g *RasterGrid) NodeXY(node int) (float64, float64) {
	col := node % g.W
	row := node / g.W
	return float64(col) * g.dx, float64(row) * g.dx
}

// NodesWithin appends to dst every node of g whose distance to (x, y) is
// strictly less than radius. A zero radius selects the nodes coincident with
// (x, y).
func NodesWithin(g Grid, x, y, radius float64, dst []int) []int {
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		nx, ny := g.NodeXY(i)
		d := math.Hypot(nx-x, ny-y)
		if d < radius || (radius == 0 && d == 0) {
			dst = append(dst, i)
		}
	}
	return dst
}
