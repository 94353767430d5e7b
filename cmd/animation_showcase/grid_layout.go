// cmd/animation_showcase/grid_layout.go
// Paged grid layout for animation cells.
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridLayout positions one page of cells on screen.
type GridLayout struct {
	grid  GridConfig
	cells []*AnimationCell
}

// NewGridLayout lays out the given cells using the grid settings.
func NewGridLayout(grid GridConfig, cells []*AnimationCell) *GridLayout {
	return &GridLayout{grid: grid, cells: cells}
}

// Cells returns the cells on this page.
func (l *GridLayout) Cells() []*AnimationCell {
	return l.cells
}

// CellsPerPage returns the page capacity for the given grid settings.
func (g GridConfig) CellsPerPage() int {
	return g.Columns * g.RowsPerPage
}

// Draw renders all cells of the page.
func (l *GridLayout) Draw(screen *ebiten.Image) {
	pad := l.grid.Padding
	for i, cell := range l.cells {
		col := i % l.grid.Columns
		row := i / l.grid.Columns
		x := pad + col*(l.grid.CellWidth+pad)
		y := pad + 24 + row*(l.grid.CellHeight+pad)
		cell.Draw(screen, x, y, l.grid.CellWidth, l.grid.CellHeight)
	}
}
