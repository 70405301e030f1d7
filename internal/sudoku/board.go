// Package sudoku implements a standalone 9x9 Sudoku board, solver,
// and puzzle generator. It shares no data model with pkg/gridlogic —
// the two are independent collaborators kept in the same repository,
// not layers of one system.
package sudoku

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	// Size is the board's edge length.
	Size = 9
	// CellCount is the total number of cells on a board.
	CellCount = Size * Size
	// EmptyCell marks a cell with no value placed.
	EmptyCell = 0
)

var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int
)

func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / Size
		posToCol[pos] = pos % Size
		posToBox[pos] = 3*(posToRow[pos]/3) + posToCol[pos]/3
	}
}

// Board is a 9x9 Sudoku grid stored as a flat array of cell values,
// each in [0, 9] with 0 meaning empty.
type Board struct {
	cells [CellCount]int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// MakePos converts (row, col) into a flat cell position.
func MakePos(row, col int) int { return row*Size + col }

// Get returns the value at pos, or EmptyCell.
func (b *Board) Get(pos int) int { return b.cells[pos] }

// SetForce places val at pos without checking legality. Callers that
// already know the placement is safe (the solver, generator) use it
// directly; no candidate mask is computed.
func (b *Board) SetForce(pos, val int) { b.cells[pos] = val }

// Clear empties the cell at pos.
func (b *Board) Clear(pos int) { b.cells[pos] = EmptyCell }

// EmptyCount returns the number of unset cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, v := range b.cells {
		if v == EmptyCell {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	clone := &Board{}
	clone.cells = b.cells
	return clone
}

// CandidateMask returns a bitmask of the values 1..9 (bit k-1 for
// value k) that do not currently conflict with pos's row, column, or
// box. The cell's own current value, if any, is ignored for the
// purpose of this computation.
func (b *Board) CandidateMask(pos int) uint {
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	var used uint
	for p := 0; p < CellCount; p++ {
		if p == pos {
			continue
		}
		if posToRow[p] != row && posToCol[p] != col && posToBox[p] != box {
			continue
		}
		if v := b.cells[p]; v != EmptyCell {
			used |= 1 << uint(v-1)
		}
	}
	return (0x1FF) &^ used
}

var allValues = [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// Candidates returns the legal values for pos as a sorted slice.
func (b *Board) Candidates(pos int) []int {
	mask := b.CandidateMask(pos)
	return lo.Filter(allValues[:], func(v int, _ int) bool {
		return mask&(1<<uint(v-1)) != 0
	})
}

// HasCandidate reports whether v is among pos's legal values.
func (b *Board) HasCandidate(pos, v int) bool {
	return lo.Contains(b.Candidates(pos), v)
}

// IsValid reports whether every filled cell satisfies the row/column/
// box distinctness rule. Empty cells are ignored.
func (b *Board) IsValid() bool {
	var rowMask, colMask, boxMask [Size]uint
	for pos := 0; pos < CellCount; pos++ {
		v := b.cells[pos]
		if v == EmptyCell {
			continue
		}
		bit := uint(1 << uint(v-1))
		row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
		if rowMask[row]&bit != 0 || colMask[col]&bit != 0 || boxMask[box]&bit != 0 {
			return false
		}
		rowMask[row] |= bit
		colMask[col] |= bit
		boxMask[box] |= bit
	}
	return true
}

// String renders the board as a 9-line grid with '.' for empty cells.
func (b *Board) String() string {
	out := make([]byte, 0, CellCount+Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			v := b.cells[MakePos(row, col)]
			if v == EmptyCell {
				out = append(out, '.')
			} else {
				out = append(out, byte('0'+v))
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

// ParseBoard reads an 81-character grid ('.', '0', or '1'-'9' per
// cell, rows left to right top to bottom, other characters ignored) into
// a Board.
func ParseBoard(s string) (*Board, error) {
	b := NewBoard()
	pos := 0
	for _, ch := range s {
		if pos >= CellCount {
			break
		}
		switch {
		case ch == '.' || ch == '0':
			pos++
		case ch >= '1' && ch <= '9':
			b.cells[pos] = int(ch - '0')
			pos++
		default:
			continue
		}
	}
	if pos != CellCount {
		return nil, fmt.Errorf("sudoku: expected %d cells, got %d", CellCount, pos)
	}
	return b, nil
}
