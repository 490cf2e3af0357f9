// Package dice rolls random boards from the sixteen dice of the classic
// 4x4 game.
package dice

import (
	"lukechampine.com/frand"

	"github.com/domino14/boggler/board"
)

// The classic dice. Each string is the six faces of one die. The Qu face is
// stored as a plain Q since board cells hold a single letter.
var classicDice = [16]string{
	"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
	"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
	"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
	"EIOSST", "ELRTTY", "HIMNQU", "HLNNRZ",
}

// A Roller shakes the dice tray: it shuffles dice onto grid positions and
// turns up one face of each.
type Roller struct {
	rng *frand.RNG
}

// NewRoller returns a roller backed by a cryptographically seeded generator.
func NewRoller() *Roller {
	return &Roller{rng: frand.New()}
}

// NewRollerFromSource returns a roller with an injected generator, for
// deterministic tests.
func NewRollerFromSource(rng *frand.RNG) *Roller {
	return &Roller{rng: rng}
}

// Roll produces a random 4x4 board.
func (r *Roller) Roll() *board.Board {
	letters := make([]rune, 0, len(classicDice))
	for _, idx := range r.rng.Perm(len(classicDice)) {
		faces := []rune(classicDice[idx])
		letters = append(letters, faces[r.rng.Intn(len(faces))])
	}
	b, err := board.NewBoardFromString(string(letters))
	if err != nil {
		// 16 dice always form a 4x4 board.
		panic(err)
	}
	return b
}
