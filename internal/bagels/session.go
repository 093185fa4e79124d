// internal/bagels/session.go
//
// Interactive Bagels session over a console.
// Flow:
//   - Print instructions once.
//   - Play games until the player declines another round or input ends.
//   - Record finished games and print a won/played summary.

package bagels

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/novelties/internal/console"
	"github.com/robalobadob/novelties/internal/rng"
)

// Recorder keeps finished games for the lifetime of the process.
type Recorder interface {
	Save(ctx context.Context, g *Game) error
	Stats(ctx context.Context) (played, won int, err error)
}

// Session wires an engine configuration to a console.
type Session struct {
	Console    *console.Console
	Rand       rng.Source
	Digits     int
	MaxGuesses int
	Games      Recorder // optional
}

// Play runs games until the player stops. End of input is a normal exit.
func (s *Session) Play(ctx context.Context) error {
	if s.Digits == 0 {
		s.Digits = DefaultDigits
	}
	if s.MaxGuesses == 0 {
		s.MaxGuesses = DefaultMaxGuesses
	}
	if s.Digits < 1 || s.Digits > len(digitAlphabet) {
		return ErrInvalidLength
	}
	s.printInstructions()

	for {
		g, err := s.playGame(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if s.Games != nil {
			if err := s.Games.Save(ctx, g); err != nil {
				log.Warn().Err(err).Str("game", g.ID).Msg("record game")
			}
		}

		again, err := s.playAgain()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again {
			break
		}
		s.Console.Println()
	}

	s.printSummary(ctx)
	s.Console.Println("\nThanks for playing!")
	return nil
}

func (s *Session) playGame(ctx context.Context) (*Game, error) {
	secret, err := GenerateSecret(s.Rand, s.Digits)
	if err != nil {
		return nil, err
	}
	g := New(secret, s.MaxGuesses)
	log.Debug().Str("game", g.ID).Int("digits", s.Digits).Int("maxGuesses", g.MaxGuesses).Msg("new game")

	s.Console.Println("I have thought of a number.")
	s.Console.Printf("  You have %d guesses to get it.\n\n", g.MaxGuesses)

	for g.State() == StatePlaying {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.Console.Printf("Guess #%d\n", g.Attempt())
		guess, err := s.readGuess()
		if err != nil {
			return nil, err
		}

		clues, state, err := g.ApplyGuess(guess)
		if err != nil {
			return nil, fmt.Errorf("apply guess: %w", err)
		}
		switch state {
		case StateWon:
			s.Console.Println("You got it!")
			s.Console.Println()
		case StateLost:
			s.Console.Println(clues.String())
			s.Console.Println("\nYou ran out of guesses.")
			s.Console.Printf("The answer was %s.\n", g.Secret)
		default:
			s.Console.Println(clues.String())
			s.Console.Println()
		}
	}
	log.Debug().Str("game", g.ID).Str("state", string(g.State())).Int("guesses", len(g.Guesses)).Msg("game over")
	return g, nil
}

// readGuess re-prompts until the input validates.
func (s *Session) readGuess() (Code, error) {
	for {
		input, err := s.Console.ReadLine()
		if err != nil {
			return "", err
		}
		guess, err := ValidateGuess(input, s.Digits)
		switch {
		case errors.Is(err, ErrWrongLength):
			s.Console.Printf("This is not %d digits long.. try again!\n\n", s.Digits)
		case errors.Is(err, ErrNotNumeric):
			s.Console.Println("This is not a number.. try again!")
			s.Console.Println()
		case err != nil:
			return "", err
		default:
			return guess, nil
		}
	}
}

func (s *Session) playAgain() (bool, error) {
	s.Console.Println("Do you want to play again? (yes or no)")
	input, err := s.Console.ReadLine()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(input), "y"), nil
}

func (s *Session) printInstructions() {
	c := s.Console
	c.Println("Bagels, a deductive logic game.")
	c.Println("By Al Sweigart")
	c.Println()
	c.Printf("I am thinking of a %d-digit number with no repeated digits.\n", s.Digits)
	c.Println("Try to guess what it is. Here are some clues.")
	c.Println()
	c.Println("When I say:    That means:")
	c.Println("Pico           One digit is correct but in the wrong position.")
	c.Println("Fermi          One digit is correct and in the right position.")
	c.Println("Bagels         No digit is correct.")
	c.Println()
	c.Println("For example, if the secret number was 248 and your guess was 843, the")
	c.Println("clues would be Fermi Pico.")
	c.Println()
}

func (s *Session) printSummary(ctx context.Context) {
	if s.Games == nil {
		return
	}
	played, won, err := s.Games.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("game stats")
		return
	}
	if played > 0 {
		s.Console.Printf("\nYou won %d of %d games.\n", won, played)
	}
}
