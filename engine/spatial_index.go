package engine

import (
	"sort"

	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/vmath"
)

// cellSpan is the rectangle of grid cells an entity occupies
type cellSpan struct {
	minCX, minCY, maxCX, maxCY int
}

type spatialEntry struct {
	x, y   float64
	radius float64
	span   cellSpan
}

// SpatialIndex is a uniform grid over the arena rectangle. Cell size
// should be tuned to roughly 2-4x the typical interaction radius so a
// radius query touches a handful of cells; query cost then scales with
// local density, not total population. Entities whose extent overlaps
// several cells are registered in every overlapping cell. Cells are
// slice-backed with no fixed capacity, so showdown crowding never drops
// entries.
type SpatialIndex struct {
	cellSize      float64
	cols, rows    int
	width, height float64
	cells         [][]core.Entity
	entries       map[core.Entity]spatialEntry
}

// NewSpatialIndex creates a grid covering [0,width) x [0,height)
func NewSpatialIndex(width, height, cellSize float64) *SpatialIndex {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	return &SpatialIndex{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		width:    width,
		height:   height,
		cells:    make([][]core.Entity, cols*rows),
		entries:  make(map[core.Entity]spatialEntry),
	}
}

func (g *SpatialIndex) clampCell(c, limit int) int {
	if c < 0 {
		return 0
	}
	if c >= limit {
		return limit - 1
	}
	return c
}

func (g *SpatialIndex) spanFor(x, y, radius float64) cellSpan {
	return cellSpan{
		minCX: g.clampCell(int((x-radius)/g.cellSize), g.cols),
		minCY: g.clampCell(int((y-radius)/g.cellSize), g.rows),
		maxCX: g.clampCell(int((x+radius)/g.cellSize), g.cols),
		maxCY: g.clampCell(int((y+radius)/g.cellSize), g.rows),
	}
}

func (g *SpatialIndex) addToCells(e core.Entity, span cellSpan) {
	for cy := span.minCY; cy <= span.maxCY; cy++ {
		for cx := span.minCX; cx <= span.maxCX; cx++ {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], e)
		}
	}
}

func (g *SpatialIndex) removeFromCells(e core.Entity, span cellSpan) {
	for cy := span.minCY; cy <= span.maxCY; cy++ {
		for cx := span.minCX; cx <= span.maxCX; cx++ {
			idx := cy*g.cols + cx
			cell := g.cells[idx]
			for i, other := range cell {
				if other == e {
					cell[i] = cell[len(cell)-1]
					g.cells[idx] = cell[:len(cell)-1]
					break
				}
			}
		}
	}
}

// Insert registers an entity at (x, y) with the given extent radius.
// Re-inserting an existing entity behaves like Update with a new radius.
func (g *SpatialIndex) Insert(e core.Entity, x, y, radius float64) {
	if old, ok := g.entries[e]; ok {
		g.removeFromCells(e, old.span)
	}
	span := g.spanFor(x, y, radius)
	g.entries[e] = spatialEntry{x: x, y: y, radius: radius, span: span}
	g.addToCells(e, span)
}

// Update moves an entity to (x, y), keeping its radius. No cell churn
// when the occupied cells are unchanged.
func (g *SpatialIndex) Update(e core.Entity, x, y float64) {
	entry, ok := g.entries[e]
	if !ok {
		return
	}
	span := g.spanFor(x, y, entry.radius)
	if span != entry.span {
		g.removeFromCells(e, entry.span)
		g.addToCells(e, span)
	}
	entry.x, entry.y, entry.span = x, y, span
	g.entries[e] = entry
}

// Remove deletes an entity from the grid. No-op if absent, which keeps
// removal-order races between cleanup paths harmless.
func (g *SpatialIndex) Remove(e core.Entity) {
	entry, ok := g.entries[e]
	if !ok {
		return
	}
	g.removeFromCells(e, entry.span)
	delete(g.entries, e)
}

// Contains reports whether the entity is currently indexed
func (g *SpatialIndex) Contains(e core.Entity) bool {
	_, ok := g.entries[e]
	return ok
}

// Position returns the indexed center of an entity
func (g *SpatialIndex) Position(e core.Entity) (x, y float64, ok bool) {
	entry, found := g.entries[e]
	if !found {
		return 0, 0, false
	}
	return entry.x, entry.y, true
}

// QueryRadius appends to buf all entities whose center lies within
// radius of (x, y), sorted by entity id for deterministic iteration.
// Pass a reused buf to avoid per-tick allocation.
func (g *SpatialIndex) QueryRadius(x, y, radius float64, buf []core.Entity) []core.Entity {
	span := g.spanFor(x, y, radius)
	buf = g.collect(span, buf)

	rSq := radius * radius
	out := buf[:0]
	for _, e := range buf {
		entry := g.entries[e]
		if vmath.DistSq(x, y, entry.x, entry.y) <= rSq {
			out = append(out, e)
		}
	}
	return out
}

// QueryRect appends to buf all entities whose center lies within the
// rectangle, sorted by entity id
func (g *SpatialIndex) QueryRect(minX, minY, maxX, maxY float64, buf []core.Entity) []core.Entity {
	span := cellSpan{
		minCX: g.clampCell(int(minX/g.cellSize), g.cols),
		minCY: g.clampCell(int(minY/g.cellSize), g.rows),
		maxCX: g.clampCell(int(maxX/g.cellSize), g.cols),
		maxCY: g.clampCell(int(maxY/g.cellSize), g.rows),
	}
	buf = g.collect(span, buf)

	out := buf[:0]
	for _, e := range buf {
		entry := g.entries[e]
		if entry.x >= minX && entry.x <= maxX && entry.y >= minY && entry.y <= maxY {
			out = append(out, e)
		}
	}
	return out
}

// collect gathers cell contents over a span, de-duplicated and sorted
// by entity id
func (g *SpatialIndex) collect(span cellSpan, buf []core.Entity) []core.Entity {
	buf = buf[:0]
	for cy := span.minCY; cy <= span.maxCY; cy++ {
		for cx := span.minCX; cx <= span.maxCX; cx++ {
			buf = append(buf, g.cells[cy*g.cols+cx]...)
		}
	}
	if len(buf) < 2 {
		return buf
	}
	sort.Slice(buf, func(i, j int) bool { return buf[i] < buf[j] })
	out := buf[:1]
	for _, e := range buf[1:] {
		if e != out[len(out)-1] {
			out = append(out, e)
		}
	}
	return out
}

// Clear removes all entries
func (g *SpatialIndex) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.entries = make(map[core.Entity]spatialEntry)
}

// Bounds returns the indexed arena dimensions
func (g *SpatialIndex) Bounds() (width, height float64) {
	return g.width, g.height
}
