package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Field is a fixed-size toroidal grid of cells
type Field struct {
	width  int
	height int
	cells  []bool // row-major, indexed by y*width + x
}

// NewField creates an all-dead field with the specified dimensions
func NewField(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewField] invalid dimensions: %dx%d", width, height)
	}
	return &Field{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// Width returns the width of the field
func (f *Field) Width() int {
	return f.width
}

// Height returns the height of the field
func (f *Field) Height() int {
	return f.height
}

// Set sets a cell to alive (true) or dead (false).
// Coordinates must lie in [0,width) x [0,height); writes do not wrap.
func (f *Field) Set(x, y int, alive bool) {
	f.cells[y*f.width+x] = alive
}

// Alive reports whether the specified cell is alive.
// Coordinates outside the field wrap toroidally, so an x of -1 is treated as width-1.
func (f *Field) Alive(x, y int) bool {
	x = (x%f.width + f.width) % f.width
	y = (y%f.height + f.height) % f.height
	return f.cells[y*f.width+x]
}

// Next returns the state of the specified cell in the next generation
func (f *Field) Next(x, y int) bool {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			if f.Alive(x+dx, y+dy) {
				neighbors++
			}
		}
	}
	return rules.ApplyConwayRules(neighbors, f.Alive(x, y))
}

// Clear kills all cells
func (f *Field) Clear() {
	for i := range f.cells {
		f.cells[i] = false
	}
}

// CountLivingCells returns the total number of living cells
func (f *Field) CountLivingCells() (count int) {
	for _, alive := range f.cells {
		if alive {
			count++
		}
	}
	return
}
