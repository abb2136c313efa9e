package model

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

const (
	// cursor home, then clear to end of screen
	clearSequence = "\x1b[H\x1b[J"
	frameTitle    = "Game of Life - Current Generation:"
	generationTag = "Generation: "

	// DefaultLiveMarker and DefaultDeadMarker are the cell markers of the reference display
	DefaultLiveMarker = liveChar
	DefaultDeadMarker = deadChar
)

// TerminalRenderer writes whole frames to a terminal, each overwriting the last in place
type TerminalRenderer struct {
	out       io.Writer
	live      string
	dead      string
	separator string
	frame     bytes.Buffer
}

// NewTerminalRenderer returns a renderer writing to out with the given cell markers
func NewTerminalRenderer(out io.Writer, live, dead rune) *TerminalRenderer {
	// each cell is followed by a space, so a row spans GridSize*(width+1) columns
	cellWidth := max(runewidth.RuneWidth(live), runewidth.RuneWidth(dead), 1)
	return &TerminalRenderer{
		out:       out,
		live:      string(live) + " ",
		dead:      string(dead) + " ",
		separator: strings.Repeat("-", GridSize*(cellWidth+1)),
	}
}

// Display renders the board and its generation number as one frame
func (r *TerminalRenderer) Display(b *Board, generation int) error {
	r.frame.Reset()
	r.frame.WriteString(clearSequence)
	r.frame.WriteString(frameTitle)
	r.frame.WriteByte('\n')
	r.frame.WriteString(r.separator)
	r.frame.WriteByte('\n')

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if b.cells[y][x] {
				r.frame.WriteString(r.live)
			} else {
				r.frame.WriteString(r.dead)
			}
		}
		r.frame.WriteByte('\n')
	}

	r.frame.WriteString(r.separator)
	r.frame.WriteByte('\n')
	r.frame.WriteString(generationTag)
	r.frame.WriteString(strconv.Itoa(generation))
	r.frame.WriteByte('\n')

	if _, err := r.out.Write(r.frame.Bytes()); err != nil {
		return errors.Wrapf(err, "[Display] failed to write frame for generation %d", generation)
	}
	return nil
}
