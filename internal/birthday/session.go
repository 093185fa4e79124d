package birthday

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/robalobadob/novelties/internal/console"
	"github.com/robalobadob/novelties/internal/rng"
)

const (
	maxShown      = 5
	progressEvery = 10_000
)

const introduction = `Birthday Paradox, by Al Sweigart

The birthday paradox shows us that in a group of N people, the odds
that two of them have matching birthdays is surprisingly large.
This program does a Monte Carlo simulation (that is, repeated random
simulations) to explore this concept.

(It's not actually a paradox, it's just a surprising result.)`

// Session is one interactive birthday paradox run.
type Session struct {
	Console *console.Console
	Rand    rng.Source // draws the sample shown to the player
	Trials  int
	Workers int
	Seed    uint64 // base seed of the simulation chunks
}

// Play asks for a group size, shows one sample and runs the simulation.
// End of input before a size is chosen ends the session without error.
func (s *Session) Play(ctx context.Context) error {
	if s.Trials <= 0 {
		s.Trials = DefaultTrials
	}
	c := s.Console
	c.Println(introduction)
	c.Printf("\nHow many birthdays shall I generate? (Min %d, Max %d)\n", MinSize, MaxSize)

	size, err := s.readSize()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	shown := min(size, maxShown)
	if shown != size {
		c.Printf("Here are %d birthdays (only showing %d):\n", size, shown)
	} else {
		c.Printf("Here are %d birthdays:\n", size)
	}
	sample := SampleDays(s.Rand, size)
	labels := make([]string, shown)
	for i, d := range sample[:shown] {
		labels[i] = d.String()
	}
	c.Println(strings.Join(labels, ", "))

	c.Printf("In this simulation, ")
	if day, ok := FindCollision(sample); ok {
		c.Printf("multiple people have birthdays on %s\n", day)
	} else {
		c.Println("there are no matching birthdays.")
	}

	trials := humanize.Comma(int64(s.Trials))
	c.Printf("\nGenerating %d random birthdays %s times...\n", size, trials)
	if _, err := c.Prompt("Press enter to begin..."); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	c.Println()

	c.Println("0 simulations run...")
	reported := 0
	sim := Simulation{
		Size:    size,
		Trials:  s.Trials,
		Workers: s.Workers,
		Seed:    s.Seed,
		// Chunks finish out of order with several workers, so report every
		// boundary passed since the last call.
		Progress: func(done int) {
			for reported+progressEvery <= done && reported+progressEvery < s.Trials {
				reported += progressEvery
				c.Printf("%s simulations run...\n", humanize.Comma(int64(reported)))
			}
		},
	}
	res, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	c.Printf("%s simulations run.\n\n", trials)

	c.Printf("With %s simulations of %d people,\n", trials, size)
	c.Printf("at least 1 birthday match occurred %s times -\n", humanize.Comma(int64(res.Hits)))
	c.Printf("making the probability of a match %.2f%%!\n", res.Probability())
	c.Printf("(The exact probability is %.2f%%.)\n\n", ExactProbability(size))
	c.Println("That's probably more than you would think!")
	return nil
}

// readSize re-prompts until a size in range is entered.
func (s *Session) readSize() (int, error) {
	for {
		input, err := s.Console.ReadLine()
		if err != nil {
			return 0, err
		}
		n, err := ParseSampleSize(input)
		switch {
		case errors.Is(err, ErrNotNumber):
			s.Console.Println("That is not a number.. Try again!")
		case errors.Is(err, ErrOutOfRange):
			s.Console.Printf("That number is not between %d and %d.. Try again!\n", MinSize, MaxSize)
		case err != nil:
			return 0, err
		default:
			return n, nil
		}
	}
}
