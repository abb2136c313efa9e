package model

import (
	"sort"

	"github.com/pkg/errors"
)

const (
	liveChar = '#'
	deadChar = '.'

	// DefaultSeedName names the pattern the game starts from when none is configured
	DefaultSeedName = "default"
)

// defaultSeedRows is the built-in starting pattern: an L-tromino at the top,
// a small cluster to its lower right, a 2x2 block at rows 9-10 / columns 4-5
// and a seven-cell cluster in the lower right corner.
var defaultSeedRows = []string{
	".......#........",
	".......##.......",
	"................",
	"................",
	"..........##....",
	"...........#....",
	"..........#.....",
	"................",
	"................",
	"....##..........",
	"....##..........",
	"............##..",
	"............###.",
	"............##..",
	"................",
	"................",
}

var seeds = map[string]func() Board{
	DefaultSeedName: DefaultSeed,
	"glider": func() (b Board) {
		b.AddGlider(1, 1)
		return
	},
	"blinker": func() (b Board) {
		b.AddBlinker(GridSize/2-1, GridSize/2)
		return
	},
	"block": func() (b Board) {
		b.AddBlock(GridSize/2-1, GridSize/2-1)
		return
	},
}

// DefaultSeed returns the built-in starting pattern
func DefaultSeed() Board {
	b, err := ParseBoard(defaultSeedRows...)
	if err != nil {
		panic(err)
	}
	return b
}

// SeedNames lists the registered seed patterns in sorted order
func SeedNames() []string {
	names := make([]string, 0, len(seeds))
	for name := range seeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSeed returns a fresh board holding the named seed pattern
func LookupSeed(name string) (Board, error) {
	build, ok := seeds[name]
	if !ok {
		return Board{}, errors.Errorf("[LookupSeed] unknown seed %q, expected one of %v", name, SeedNames())
	}
	return build(), nil
}

// ParseBoard builds a board from rows of '#' (alive) and '.' (dead).
// Missing rows and short rows are left dead.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > GridSize {
		return b, errors.Errorf("[ParseBoard] got %d rows, board holds %d", len(rows), GridSize)
	}
	for y, row := range rows {
		if len(row) > GridSize {
			return b, errors.Errorf("[ParseBoard] row %d is %d cells wide, board holds %d", y, len(row), GridSize)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case liveChar:
				b.cells[y][x] = true
			case deadChar:
			default:
				return b, errors.Errorf("[ParseBoard] invalid cell %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	return b, nil
}

// AddGlider adds a glider pattern with its top-left corner at the specified position
func (b *Board) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			b.Set(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator
func (b *Board) AddBlinker(startX, startY int) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX+2, startY, true)
}

// AddBlock adds a 2x2 still life
func (b *Board) AddBlock(startX, startY int) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX, startY+1, true)
	b.Set(startX+1, startY+1, true)
}
