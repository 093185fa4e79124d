package birthday

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/novelties/internal/rng"
)

const (
	// DefaultTrials is the number of simulated groups per run.
	DefaultTrials = 100_000
	// ChunkSize is the number of trials drawn from one generator.
	ChunkSize = 10_000
)

var ErrInvalidSimulation = errors.New("simulation needs a positive size and trial count")

// Simulation repeats sample+collision checks Trials times.
//
// Trials are split into chunks of ChunkSize. Each chunk owns a generator seeded
// from Seed and its index, so the hit count is the same for any worker count.
type Simulation struct {
	Size    int
	Trials  int
	Workers int
	Seed    uint64
	// Progress, if set, is called with the number of completed trials
	// after each chunk. Calls are serialized.
	Progress func(done int)
}

// Result is the aggregate of a simulation run.
type Result struct {
	Size   int
	Trials int
	Hits   int
}

// Probability returns 100 * hits / trials.
func (r Result) Probability() float64 {
	if r.Trials == 0 {
		return 0
	}
	return 100 * float64(r.Hits) / float64(r.Trials)
}

// Run executes the simulation. Cancelling ctx stops chunks that have not started.
func (s Simulation) Run(ctx context.Context) (Result, error) {
	if s.Size < 1 || s.Trials < 1 {
		return Result{}, ErrInvalidSimulation
	}
	workers := max(1, s.Workers)
	chunks := (s.Trials + ChunkSize - 1) / ChunkSize

	var (
		hits atomic.Int64
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for c := 0; c < chunks; c++ {
		n := min(ChunkSize, s.Trials-c*ChunkSize)
		seed := s.Seed + uint64(c)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hits.Add(int64(runChunk(rng.New(seed), s.Size, n)))
			if s.Progress != nil {
				mu.Lock()
				done += n
				s.Progress(done)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Size: s.Size, Trials: s.Trials, Hits: int(hits.Load())}
	log.Debug().Int("size", res.Size).Int("trials", res.Trials).Int("hits", res.Hits).
		Int("workers", workers).Msg("simulation finished")
	return res, nil
}

func runChunk(src rng.Source, size, trials int) int {
	hits := 0
	for i := 0; i < trials; i++ {
		if _, ok := FindCollision(SampleDays(src, size)); ok {
			hits++
		}
	}
	return hits
}

// RunTrials runs a single-worker simulation and returns the hit percentage.
func RunTrials(ctx context.Context, seed uint64, size, trials int) (float64, error) {
	res, err := Simulation{Size: size, Trials: trials, Workers: 1, Seed: seed}.Run(ctx)
	if err != nil {
		return 0, err
	}
	return res.Probability(), nil
}
