package game

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Terrain samples the altitude of the world at a position. ok is false when
// the position has no data (outside the map).
type Terrain interface {
	Sample(pos Vec2) (alt Altitude, ok bool)
}

// IsLand reports whether an altitude counts as land.
func IsLand(alt Altitude) bool {
	return alt >= SandLevel
}

// FlatTerrain is open ocean everywhere.
type FlatTerrain struct{}

func (FlatTerrain) Sample(Vec2) (Altitude, bool) {
	return AltitudeMin, true
}

// HeightMap is a square grid of altitudes centred on the origin.
type HeightMap struct {
	CellSize float32
	Size     int // cells per side
	Heights  []Altitude
}

// NewHeightMap creates an all-ocean height map covering at least the given radius.
func NewHeightMap(radius, cellSize float32) *HeightMap {
	size := int(math32.Ceil(2*radius/cellSize)) + 1
	h := &HeightMap{
		CellSize: cellSize,
		Size:     size,
		Heights:  make([]Altitude, size*size),
	}
	for i := range h.Heights {
		h.Heights[i] = AltitudeMin
	}
	return h
}

func (h *HeightMap) cell(pos Vec2) (int, int, bool) {
	half := float32(h.Size) * h.CellSize / 2
	x := int(math32.Floor((pos.X + half) / h.CellSize))
	y := int(math32.Floor((pos.Y + half) / h.CellSize))
	if x < 0 || y < 0 || x >= h.Size || y >= h.Size {
		return 0, 0, false
	}
	return x, y, true
}

// Sample returns the altitude of the cell containing pos.
func (h *HeightMap) Sample(pos Vec2) (Altitude, bool) {
	x, y, ok := h.cell(pos)
	if !ok {
		return 0, false
	}
	return h.Heights[y*h.Size+x], true
}

// Set overwrites the altitude of the cell containing pos. Out of range
// positions are ignored.
func (h *HeightMap) Set(pos Vec2, alt Altitude) {
	if x, y, ok := h.cell(pos); ok {
		h.Heights[y*h.Size+x] = alt
	}
}

// AddIsland raises a cone-shaped island. Peak altitude is AltitudeMax at the
// centre, reaching SandLevel at radius.
func (h *HeightMap) AddIsland(center Vec2, radius float32) {
	for y := 0; y < h.Size; y++ {
		for x := 0; x < h.Size; x++ {
			half := float32(h.Size) * h.CellSize / 2
			pos := Vec2{
				X: (float32(x)+0.5)*h.CellSize - half,
				Y: (float32(y)+0.5)*h.CellSize - half,
			}
			d := pos.Distance(center)
			if d > radius*2 {
				continue
			}
			alt := Altitude(1-d/radius) * AltitudeMax
			if alt < AltitudeMin {
				alt = AltitudeMin
			}
			i := y*h.Size + x
			if alt > h.Heights[i] {
				h.Heights[i] = alt
			}
		}
	}
}

// GenerateIslands builds a height map with a few random islands inside the
// world radius. The centre of the map stays open water.
func GenerateIslands(r *rand.Rand, worldRadius, cellSize float32, count int) *HeightMap {
	h := NewHeightMap(worldRadius, cellSize)
	for i := 0; i < count; i++ {
		center := RandomInDisk(r, worldRadius*0.9)
		if center.Length() < worldRadius*0.2 {
			continue
		}
		h.AddIsland(center, worldRadius*(0.03+r.Float32()*0.05))
	}
	return h
}
