// Package board contains the letter-grid type that words are traced on.
package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DefaultDim is the dimension of a standard board. The solver's public entry
// point only accepts boards of this size; the type itself is dimension-
// agnostic so tests can build smaller grids.
const DefaultDim = 4

var errNoRows = errors.New("board must have at least one row")

// A Board is a fixed-shape grid of single uppercase letters. It is immutable
// once constructed; search-time bookkeeping (which cells are on the active
// path) lives with the searcher, not here, so a board can back any number of
// sequential searches.
type Board struct {
	letters []rune
	rows    int
	cols    int
}

// NewBoardFromRows builds a board from one string per row. Rows must all have
// the same length. Letters are uppercased; anything else about them is
// preserved verbatim.
func NewBoardFromRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, errNoRows
	}
	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, errors.New("board rows must not be empty")
	}
	letters := make([]rune, 0, len(rows)*cols)
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != cols {
			return nil, fmt.Errorf("row %d has %d letters; expected %d",
				i, len(runes), cols)
		}
		for _, r := range runes {
			letters = append(letters, unicode.ToUpper(r))
		}
	}
	return &Board{letters: letters, rows: len(rows), cols: cols}, nil
}

// NewBoardFromString builds a square board from a compact string of letters,
// e.g. "RAELMOFSTEOKNATI" for a 4x4 board.
func NewBoardFromString(letters string) (*Board, error) {
	runes := []rune(letters)
	dim := 1
	for dim*dim < len(runes) {
		dim++
	}
	if dim*dim != len(runes) || len(runes) == 0 {
		return nil, fmt.Errorf("%d letters do not form a square board",
			len(runes))
	}
	rows := make([]string, dim)
	for i := 0; i < dim; i++ {
		rows[i] = string(runes[i*dim : (i+1)*dim])
	}
	return NewBoardFromRows(rows)
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Letter returns the (already uppercased) letter at the given cell.
func (b *Board) Letter(row, col int) rune {
	return b.letters[row*b.cols+col]
}

// ToDisplayText returns a simple printable representation of the board.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if col > 0 {
				str.WriteRune(' ')
			}
			str.WriteRune(b.Letter(row, col))
		}
		str.WriteRune('\n')
	}
	return str.String()
}

// The eight king-move offsets.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the in-bounds cells adjacent to (row, col), diagonals
// included. It is pure and computed fresh per call; callers must not depend
// on the enumeration order.
func (b *Board) Neighbors(row, col int) [][2]int {
	neighbors := make([][2]int, 0, len(directions))
	for _, d := range directions {
		nrow, ncol := row+d[0], col+d[1]
		if nrow >= 0 && nrow < b.rows && ncol >= 0 && ncol < b.cols {
			neighbors = append(neighbors, [2]int{nrow, ncol})
		}
	}
	return neighbors
}
