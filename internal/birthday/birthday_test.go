package birthday

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/robalobadob/novelties/internal/console"
	"github.com/robalobadob/novelties/internal/rng"
)

func TestSampleDaysRange(t *testing.T) {
	days := SampleDays(rng.New(3), 5000)
	if len(days) != 5000 {
		t.Fatalf("len = %d, want 5000", len(days))
	}
	var sawFirst, sawLast bool
	for _, d := range days {
		if d < 1 || d > DaysInYear {
			t.Fatalf("day %d out of range", d)
		}
		sawFirst = sawFirst || d == 1
		sawLast = sawLast || d == DaysInYear
	}
	if !sawFirst || !sawLast {
		t.Fatalf("expected both ends of the range in 5000 draws (first=%v last=%v)", sawFirst, sawLast)
	}
}

func TestFindCollision(t *testing.T) {
	distinct := make([]Day, DaysInYear)
	for i := range distinct {
		distinct[i] = Day(i + 1)
	}
	if d, ok := FindCollision(distinct); ok {
		t.Fatalf("distinct sample reported collision on %d", d)
	}
	if _, ok := FindCollision(nil); ok {
		t.Fatal("empty sample reported collision")
	}

	injected := []Day{10, 20, 30, 20, 40}
	if d, ok := FindCollision(injected); !ok || d != 20 {
		t.Fatalf("FindCollision() = %d, %v; want 20, true", d, ok)
	}

	pigeonhole := SampleDays(rng.New(11), DaysInYear+1)
	d, ok := FindCollision(pigeonhole)
	if !ok {
		t.Fatal("sample larger than a year must collide")
	}
	count := 0
	for _, x := range pigeonhole {
		if x == d {
			count++
		}
	}
	if count < 2 {
		t.Fatalf("reported day %d appears %d times", d, count)
	}
}

func TestParseSampleSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{input: "2", want: 2},
		{input: "23", want: 23},
		{input: "100", want: 100},
		{input: "1", wantErr: ErrOutOfRange},
		{input: "101", wantErr: ErrOutOfRange},
		{input: "0", wantErr: ErrOutOfRange},
		{input: "99999999999999999999", wantErr: ErrNotNumber},
		{input: "-5", wantErr: ErrNotNumber},
		{input: "+5", wantErr: ErrNotNumber},
		{input: "ten", wantErr: ErrNotNumber},
		{input: "", wantErr: ErrNotNumber},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSampleSize(tt.input)
			if !errors.Is(err, tt.wantErr) || got != tt.want {
				t.Fatalf("ParseSampleSize(%q) = %d, %v; want %d, %v", tt.input, got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestDayString(t *testing.T) {
	for d, want := range map[Day]string{1: "Jan 01", 59: "Feb 28", 60: "Mar 01", 365: "Dec 31"} {
		if got := d.String(); got != want {
			t.Errorf("Day(%d) = %q, want %q", d, got, want)
		}
	}
}

func TestExactProbability(t *testing.T) {
	if got := ExactProbability(2); math.Abs(got-100.0/365) > 1e-9 {
		t.Fatalf("ExactProbability(2) = %f", got)
	}
	if got := ExactProbability(23); math.Abs(got-50.73) > 0.01 {
		t.Fatalf("ExactProbability(23) = %f, want ~50.73", got)
	}
	if got := ExactProbability(400); got != 100 {
		t.Fatalf("ExactProbability(400) = %f, want 100", got)
	}
}

func TestRunTrialsPairs(t *testing.T) {
	p, err := RunTrials(context.Background(), 2024, 2, 10_000)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if p < 0.05 || p > 0.8 {
		t.Fatalf("probability for pairs = %.3f%%, want near 0.27%%", p)
	}
}

func TestSimulationConvergesForTwentyThree(t *testing.T) {
	res, err := Simulation{Size: 23, Trials: 20_000, Workers: 4, Seed: 5}.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if math.Abs(res.Probability()-ExactProbability(23)) > 3 {
		t.Fatalf("probability = %.2f%%, want within 3 points of %.2f%%", res.Probability(), ExactProbability(23))
	}
}

func TestSimulationIndependentOfWorkers(t *testing.T) {
	ctx := context.Background()
	one, err := Simulation{Size: 10, Trials: 35_000, Workers: 1, Seed: 77}.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	many, err := Simulation{Size: 10, Trials: 35_000, Workers: 8, Seed: 77}.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if one.Hits != many.Hits {
		t.Fatalf("hits differ by worker count: %d vs %d", one.Hits, many.Hits)
	}
}

func TestSimulationProgress(t *testing.T) {
	var calls []int
	_, err := Simulation{
		Size:     5,
		Trials:   25_000,
		Seed:     1,
		Progress: func(done int) { calls = append(calls, done) },
	}.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []int{10_000, 20_000, 25_000}
	if len(calls) != len(want) {
		t.Fatalf("progress calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("progress calls = %v, want %v", calls, want)
		}
	}
}

func TestSimulationErrors(t *testing.T) {
	if _, err := (Simulation{Size: 2}).Run(context.Background()); !errors.Is(err, ErrInvalidSimulation) {
		t.Fatalf("err = %v, want ErrInvalidSimulation", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Simulation{Size: 2, Trials: 100}).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSessionPlay(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		Console: console.New(strings.NewReader("ten\n1\n23\n\n"), &out),
		Rand:    rng.New(9),
		Trials:  20_000,
		Seed:    9,
	}
	if err := s.Play(context.Background()); err != nil {
		t.Fatalf("play: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"That is not a number.. Try again!",
		"That number is not between 2 and 100.. Try again!",
		"Here are 23 birthdays (only showing 5):",
		"In this simulation, ",
		"Generating 23 random birthdays 20,000 times...",
		"0 simulations run...",
		"10,000 simulations run...",
		"20,000 simulations run.",
		"With 20,000 simulations of 23 people,",
		"The exact probability is 50.73%.",
		"That's probably more than you would think!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSessionProgressWithWorkers(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		var out bytes.Buffer
		s := &Session{
			Console: console.New(strings.NewReader("10\n\n"), &out),
			Rand:    rng.New(seed),
			Trials:  25_000,
			Workers: 3,
			Seed:    seed,
		}
		if err := s.Play(context.Background()); err != nil {
			t.Fatalf("play: %v", err)
		}
		got := out.String()
		first := strings.Index(got, "10,000 simulations run...")
		second := strings.Index(got, "20,000 simulations run...")
		if first < 0 || second < first {
			t.Fatalf("seed %d: missing progress lines:\n%s", seed, got)
		}
		if strings.Count(got, "simulations run...") != 3 {
			t.Fatalf("seed %d: want 0, 10,000 and 20,000 progress lines:\n%s", seed, got)
		}
		if !strings.Contains(got, "25,000 simulations run.\n") {
			t.Fatalf("seed %d: missing final count:\n%s", seed, got)
		}
	}
}

func TestSessionSmallGroupShowsAll(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		Console: console.New(strings.NewReader("3\n"), &out),
		Rand:    rng.New(1),
		Trials:  10,
		Seed:    1,
	}
	if err := s.Play(context.Background()); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out.String(), "Here are 3 birthdays:\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestSessionEOFBeforeSize(t *testing.T) {
	var out bytes.Buffer
	s := &Session{Console: console.New(strings.NewReader(""), &out), Rand: rng.New(1)}
	if err := s.Play(context.Background()); err != nil {
		t.Fatalf("play: %v", err)
	}
	if strings.Contains(out.String(), "Here are") {
		t.Fatalf("sample shown without a size:\n%s", out.String())
	}
}
