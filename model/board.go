package model

import (
	"strings"

	"github.com/sheikhrachel/gol16/rules"
)

// GridSize is the width and height of every board, in cells
const GridSize = 16

// Board is a fixed-size game board indexed [y][x]. It is a value type:
// assigning one board to another copies every cell, and boards compare with ==.
type Board struct {
	cells [GridSize][GridSize]bool
}

// Clear kills all cells
func (b *Board) Clear() {
	b.cells = [GridSize][GridSize]bool{}
}

// CopyFrom overwrites b with the contents of src
func (b *Board) CopyFrom(src *Board) {
	*b = *src
}

// Set sets a cell to alive (true) or dead (false), ignoring coordinates off the board
func (b *Board) Set(x, y int, alive bool) {
	if inBounds(x, y) {
		b.cells[y][x] = alive
	}
}

// Get returns the state of a cell; cells off the board are dead
func (b *Board) Get(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	return b.cells[y][x]
}

func inBounds(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// CountNeighbors counts the living cells in the Moore neighborhood of (x, y).
// The 3x3 window is clamped to the board edges, never wrapped, so edge and
// corner cells have fewer candidate neighbors.
func (b *Board) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(GridSize-1, x+1)
	minY := max(0, y-1)
	maxY := min(GridSize-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if b.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// NextGeneration overwrites every cell of next with the generation that follows b.
// Neighbor counts are read from b only, so all cells update simultaneously.
func (b *Board) NextGeneration(next *Board) {
	src := b
	if next == b {
		snapshot := *b
		src = &snapshot
	}

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			next.cells[y][x] = rules.ApplyConwayRules(src.CountNeighbors(x, y), src.cells[y][x])
		}
	}
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if b.cells[y][x] {
				count++
			}
		}
	}
	return
}

// String returns one line per row, '#' for alive and '.' for dead
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(GridSize * (GridSize + 1))
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if b.cells[y][x] {
				sb.WriteByte(liveChar)
			} else {
				sb.WriteByte(deadChar)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
