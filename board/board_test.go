package board

import (
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestNewBoardFromRows(t *testing.T) {
	is := is.New(t)
	b, err := NewBoardFromRows([]string{"rael", "mofs", "teok", "nati"})
	is.NoErr(err)
	is.Equal(b.Rows(), 4)
	is.Equal(b.Cols(), 4)
	is.Equal(b.Letter(0, 0), 'R')
	is.Equal(b.Letter(3, 3), 'I')
	// Lowercase input is normalized on the way in.
	is.Equal(b.Letter(1, 2), 'F')
}

func TestNewBoardFromRowsRagged(t *testing.T) {
	is := is.New(t)
	_, err := NewBoardFromRows([]string{"ABC", "DE"})
	is.True(err != nil)

	_, err = NewBoardFromRows(nil)
	is.Equal(err, errNoRows)
}

func TestNewBoardFromString(t *testing.T) {
	is := is.New(t)
	b, err := NewBoardFromString("RAELMOFSTEOKNATI")
	is.NoErr(err)
	is.Equal(b.Rows(), 4)
	is.Equal(b.Cols(), 4)
	is.Equal(b.Letter(1, 0), 'M')

	_, err = NewBoardFromString("ABCDE")
	is.True(err != nil)
	_, err = NewBoardFromString("")
	is.True(err != nil)
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	b, err := NewBoardFromRows([]string{"ab", "cd"})
	is.NoErr(err)
	is.Equal(b.ToDisplayText(), "A B\nC D\n")
}

func sortCells(cells [][2]int) [][2]int {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i][0] != cells[j][0] {
			return cells[i][0] < cells[j][0]
		}
		return cells[i][1] < cells[j][1]
	})
	return cells
}

func TestNeighbors(t *testing.T) {
	b, err := NewBoardFromRows([]string{"ABCD", "EFGH", "IJKL", "MNOP"})
	assert.NoError(t, err)

	// Corner cell: 3 neighbors.
	assert.Equal(t, [][2]int{{0, 1}, {1, 0}, {1, 1}},
		sortCells(b.Neighbors(0, 0)))
	// Edge cell: 5 neighbors.
	assert.Equal(t, [][2]int{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
		sortCells(b.Neighbors(0, 1)))
	// Interior cell: all 8.
	assert.Equal(t, [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}, sortCells(b.Neighbors(1, 1)))
	// Opposite corner.
	assert.Equal(t, [][2]int{{2, 2}, {2, 3}, {3, 2}},
		sortCells(b.Neighbors(3, 3)))
}
