package server

import (
	"github.com/chewxy/math32"
	"github.com/lab1702/seabots/game"
)

// SpatialGrid provides O(1) average case lookup for nearby entities
// using a grid-based spatial hash. Sensor queries and collision checks
// only visit the cells overlapping their range.
type SpatialGrid struct {
	cellSize float32
	origin   float32 // world coordinate of the grid's lower-left corner
	cols     int
	cells    [][]*entity
}

// GridCellSize is the size of each grid cell in meters.
// Should be at least as large as the largest entity radius.
const GridCellSize = 200.0

// NewSpatialGrid creates a grid covering a world of the given radius
func NewSpatialGrid(worldRadius float32) *SpatialGrid {
	cols := int(math32.Ceil(2*worldRadius/GridCellSize)) + 1

	cells := make([][]*entity, cols*cols)
	for i := range cells {
		cells[i] = make([]*entity, 0, 4) // Pre-allocate small capacity
	}

	return &SpatialGrid{
		cellSize: GridCellSize,
		origin:   -float32(cols) * GridCellSize / 2,
		cols:     cols,
		cells:    cells,
	}
}

// Clear resets the grid for a new tick
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		clear(g.cells[i])
		g.cells[i] = g.cells[i][:0] // Reuse underlying array
	}
}

// cell returns the clamped column and row for a position
func (g *SpatialGrid) cell(pos game.Vec2) (int, int) {
	col := int(math32.Floor((pos.X - g.origin) / g.cellSize))
	row := int(math32.Floor((pos.Y - g.origin) / g.cellSize))
	return clampInt(col, 0, g.cols-1), clampInt(row, 0, g.cols-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Insert adds an entity to the grid
func (g *SpatialGrid) Insert(e *entity) {
	col, row := g.cell(e.transform.Position)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], e)
}

// Nearby returns entities that might be within radius of pos.
// The caller must still perform exact distance checks.
func (g *SpatialGrid) Nearby(pos game.Vec2, radius float32) []*entity {
	minCol, minRow := g.cell(pos.Sub(game.Vec2{X: radius, Y: radius}))
	maxCol, maxRow := g.cell(pos.Add(game.Vec2{X: radius, Y: radius}))

	var result []*entity
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			result = append(result, g.cells[r*g.cols+c]...)
		}
	}
	return result
}

// Index populates the grid with all live entities
func (g *SpatialGrid) Index(entities map[game.EntityID]*entity) {
	g.Clear()
	for _, e := range entities {
		if !e.removed {
			g.Insert(e)
		}
	}
}
