// internal/bagels/types.go
//
// Core type definitions for the Bagels engine.
// Defines:
//   - Code:  a sequence of decimal digits (secret or guess).
//   - Clue:  per-position signal (Fermi/Pico).
//   - Clues: the clue multiset produced by scoring one guess.
//   - State: playing → won/lost.
//   - Game:  state for a single in-progress or finished game.

package bagels

import (
	"errors"
	"slices"
	"strings"
)

// Code is an ordered string of decimal digits.
type Code string

// Clue is the evaluation result for one guess position.
//   - Fermi: digit is correct and in the correct position.
//   - Pico:  digit exists in the secret but at another position.
type Clue string

const (
	ClueFermi Clue = "Fermi"
	CluePico  Clue = "Pico"
)

// NoClues is printed when no guess digit appears in the secret.
const NoClues = "Bagels"

// Clues is the unordered multiset of clues for one guess.
type Clues []Clue

// String renders the clues sorted and space separated, or "Bagels" when empty.
func (c Clues) String() string {
	if len(c) == 0 {
		return NoClues
	}
	labels := make([]string, len(c))
	for i, clue := range c {
		labels[i] = string(clue)
	}
	slices.Sort(labels)
	return strings.Join(labels, " ")
}

// State is the coarse game state.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Errors returned by the engine. Validation errors are recovered by re-prompting.
var (
	ErrWrongLength   = errors.New("guess has the wrong number of digits")
	ErrNotNumeric    = errors.New("guess is not a number")
	ErrInvalidLength = errors.New("code length must be between 1 and 10")
	ErrGameFinished  = errors.New("game finished")
)

// Game holds the state of a single Bagels session.
type Game struct {
	ID         string // Unique game identifier (random hex string).
	Secret     Code   // The secret code; unique digits.
	MaxGuesses int    // Guess budget (typically 10).
	Guesses    []Code // Guesses made so far.
	Finished   bool   // True once the game is over (won or lost).
	Won        bool   // True if the game was finished with a win.
}
