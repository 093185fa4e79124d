// internal/bagels/engine.go
//
// Core engine for a single Bagels game.
// Responsibilities:
//   - Generate secrets of unique digits (shuffle, take the prefix).
//   - Validate raw guesses (length, unsigned decimal).
//   - Score guesses into Fermi/Pico/Bagels clues.
//   - Track state transitions: playing → won/lost.

package bagels

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/robalobadob/novelties/internal/rng"
)

const (
	digitAlphabet = "0123456789"

	DefaultDigits     = 2
	DefaultMaxGuesses = 10
)

// GenerateSecret shuffles the digit alphabet and keeps the first length digits.
// Sampling without replacement makes every digit unique.
func GenerateSecret(src rng.Source, length int) (Code, error) {
	if length < 1 || length > len(digitAlphabet) {
		return "", ErrInvalidLength
	}
	digits := []byte(digitAlphabet)
	src.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	return Code(digits[:length]), nil
}

// ValidateGuess checks a raw guess against the expected length.
// Repeated digits are accepted; only the secret is guaranteed unique.
func ValidateGuess(input string, length int) (Code, error) {
	input = strings.TrimSpace(input)
	if len(input) != length {
		return "", ErrWrongLength
	}
	if _, err := strconv.ParseUint(input, 10, 64); err != nil {
		return "", ErrNotNumeric
	}
	return Code(input), nil
}

// Score emits at most one clue per guess position:
// Fermi for an exact match, Pico if the digit appears elsewhere in the secret.
func Score(guess, secret Code) Clues {
	n := min(len(guess), len(secret))
	clues := make(Clues, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case guess[i] == secret[i]:
			clues = append(clues, ClueFermi)
		case strings.IndexByte(string(secret), guess[i]) >= 0:
			clues = append(clues, CluePico)
		}
	}
	return clues
}

// New constructs a game around secret with a guess budget.
func New(secret Code, maxGuesses int) *Game {
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	return &Game{
		ID:         randomID(),
		Secret:     secret,
		MaxGuesses: maxGuesses,
		Guesses:    []Code{},
	}
}

// ApplyGuess scores a validated guess and advances the game.
//
// State transitions:
//   - guess == secret → Finished, Won.
//   - otherwise, once the budget is spent → Finished (loss).
func (g *Game) ApplyGuess(guess Code) (Clues, State, error) {
	if g.Finished {
		return nil, g.State(), ErrGameFinished
	}
	if len(guess) != len(g.Secret) {
		return nil, g.State(), ErrWrongLength
	}
	g.Guesses = append(g.Guesses, guess)

	if guess == g.Secret {
		g.Finished, g.Won = true, true
		return Score(guess, g.Secret), g.State(), nil
	}
	if len(g.Guesses) >= g.MaxGuesses {
		g.Finished = true
	}
	return Score(guess, g.Secret), g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Attempt is the 1-based number of the next guess.
func (g *Game) Attempt() int { return len(g.Guesses) + 1 }

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
