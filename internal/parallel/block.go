// Package parallel provides the block partitioning and worker pool used to
// evaluate a pixel grid concurrently.
//
// An output of W×H pixels is split into square blocks of BlockSize pixels per
// side. The grid always covers the output completely, so the last column and
// row of blocks may overhang the edge; pixels outside the output are skipped.
//
// Thread safety: BlockGrid is immutable after construction.
package parallel

import "fmt"

// DefaultBlockSize is the side length of a block in pixels.
const DefaultBlockSize = 32

// Block is one unit of parallel work.
type Block struct {
	// X and Y are the block column and row.
	X, Y int

	// MinX, MinY are the first covered pixel; MaxX, MaxY are exclusive and
	// already clipped to the output.
	MinX, MinY int
	MaxX, MaxY int
}

// BlockGrid partitions a width×height output into blocks.
type BlockGrid struct {
	width, height int
	size          int
	cols, rows    int
}

// NewBlockGrid returns a grid of size×size blocks covering width×height.
// It panics if size is not positive. Empty outputs yield an empty grid.
func NewBlockGrid(width, height, size int) *BlockGrid {
	if size <= 0 {
		panic(fmt.Sprintf("parallel: invalid block size %d", size))
	}
	if width <= 0 || height <= 0 {
		return &BlockGrid{size: size}
	}
	return &BlockGrid{
		width:  width,
		height: height,
		size:   size,
		cols:   (width + size - 1) / size,
		rows:   (height + size - 1) / size,
	}
}

// Dims returns the number of block columns and rows.
func (g *BlockGrid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// Len returns the total number of blocks.
func (g *BlockGrid) Len() int {
	return g.cols * g.rows
}

// BlockSize returns the block side length in pixels.
func (g *BlockGrid) BlockSize() int {
	return g.size
}

func (g *BlockGrid) at(bx, by int) Block {
	x0, y0 := bx*g.size, by*g.size
	return Block{
		X:    bx,
		Y:    by,
		MinX: x0,
		MinY: y0,
		MaxX: min(x0+g.size, g.width),
		MaxY: min(y0+g.size, g.height),
	}
}

// Blocks returns all blocks in row-major order.
func (g *BlockGrid) Blocks() []Block {
	out := make([]Block, 0, g.Len())
	for by := range g.rows {
		for bx := range g.cols {
			out = append(out, g.at(bx, by))
		}
	}
	return out
}

// String describes the grid the way the renderer logs it.
func (g *BlockGrid) String() string {
	return fmt.Sprintf("%dx%d blocks of %dx%d px", g.cols, g.rows, g.size, g.size)
}
