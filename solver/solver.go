// Package solver enumerates every dictionary word traceable on a board as a
// path of adjacent cells, with no cell reused within a single word.
package solver

import (
	"errors"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/boggler/board"
	"github.com/domino14/boggler/trie"
)

// ValidBoardDim is the only board shape GenerateValidWords accepts.
const ValidBoardDim = board.DefaultDim

// ErrInvalidBoardSize is returned when the board is not 4x4. Callers must
// distinguish this from a structurally valid search that found nothing,
// which succeeds with an empty result.
var ErrInvalidBoardSize = errors.New("invalid board size; board must be 4x4")

// A Searcher performs the backtracking DFS over one board with one trie. The
// trie is read-only during the search; the only mutable state is the visited
// bitset, and every bit is clear again by the time Search returns, so a
// searcher may be reused for another sequential search.
type Searcher struct {
	board   *board.Board
	trie    *trie.Trie
	visited []bool
	found   map[string]struct{}
}

// NewSearcher creates a searcher for the given board and trie.
func NewSearcher(b *board.Board, t *trie.Trie) *Searcher {
	return &Searcher{
		board:   b,
		trie:    t,
		visited: make([]bool, b.Rows()*b.Cols()),
		found:   make(map[string]struct{}),
	}
}

// Search runs the DFS from every cell of the board, accumulating every word
// found into one shared result set.
func (s *Searcher) Search() {
	for row := 0; row < s.board.Rows(); row++ {
		for col := 0; col < s.board.Cols(); col++ {
			s.dfs(row, col, s.trie.Root(), nil)
		}
	}
}

// dfs tries to extend the path ending at the current trie node into the cell
// at (row, col). The cell is marked visited before descending into its
// neighbors and unmarked after every neighbor has been tried; that pairing is
// what lets a cell appear in many words while never appearing twice in one.
func (s *Searcher) dfs(row, col int, node *trie.Node, prefix []rune) {
	idx := row*s.board.Cols() + col
	if s.visited[idx] {
		return
	}
	letter := s.board.Letter(row, col)
	child := node.Child(letter)
	if child == nil {
		// No dictionary word starts with this path; the cell was never
		// marked, so there is nothing to restore.
		return
	}

	s.visited[idx] = true
	prefix = append(prefix, letter)
	if child.Terminal() && len(prefix) >= trie.MinWordLength {
		s.found[string(prefix)] = struct{}{}
	}
	for _, nb := range s.board.Neighbors(row, col) {
		s.dfs(nb[0], nb[1], child, prefix)
	}
	s.visited[idx] = false
}

// Words returns every word found so far, sorted so that output and tests are
// deterministic. The underlying result is a set; order carries no meaning.
func (s *Searcher) Words() []string {
	words := lo.Keys(s.found)
	sort.Strings(words)
	return words
}

// GenerateValidWords is the entry point: it validates the board shape,
// builds a trie from the dictionary, and runs the full search. The result is
// possibly empty but never nil on success.
func GenerateValidWords(b *board.Board, dictionary []string) ([]string, error) {
	if b.Rows() != ValidBoardDim || b.Cols() != ValidBoardDim {
		return nil, ErrInvalidBoardSize
	}
	t := trie.NewTrie(dictionary)
	s := NewSearcher(b, t)
	s.Search()
	words := s.Words()
	log.Debug().Int("dictionary", len(dictionary)).Int("found", len(words)).
		Msg("search complete")
	return words, nil
}
