// Package walk implements a Monte Carlo engine for discrete binomial random
// walks in one and two dimensions. Each repetition takes a fixed number of
// biased ±1 steps from a starting deficit and records the highest position
// reached (not the final position); the engine aggregates the recorded maxima
// of many independent repetitions into a frequency distribution and derives a
// success probability: the fraction of repetitions whose maximum reaches or
// exceeds zero. In the blockchain race interpretation the bias is the
// probability the attacker finds the next block and the start offset is the
// number of blocks the attacker is behind.
package walk

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"
)

// ErrNotComputed is returned by every accessor that is called before Compute.
var ErrNotComputed = errors.New("walk: not computed yet, call Compute first")

// Params are the simulation parameters of a sampler. They are fixed at
// construction and validated by NewSampler / NewSampler2D.
type Params struct {
	// Inner is the number of ±1 steps taken during one repetition.
	Inner int

	// Outer is the number of independent repetitions.
	Outer int

	// Bias is the probability that a single step moves +1 rather than -1.
	Bias float64

	// Offset is the starting deficit: each repetition begins at -Offset.
	Offset int
}

func (p Params) validate() error {
	if p.Inner <= 0 {
		return fmt.Errorf("walk: inner steps must be > 0, got %d", p.Inner)
	}
	if p.Outer <= 0 {
		return fmt.Errorf("walk: outer repetitions must be > 0, got %d", p.Outer)
	}
	if p.Bias < 0 || p.Bias > 1 {
		return fmt.Errorf("walk: bias must be in [0,1], got %g", p.Bias)
	}
	return nil
}

// Option configures a sampler at construction time.
type Option func(*options)

type options struct {
	src     rand.Source
	workers int
}

// WithSeed seeds the sampler's random source, making Compute reproducible
// bit-for-bit regardless of the worker count.
func WithSeed(seed int64) Option {
	return func(o *options) { o.src = rand.NewSource(seed) }
}

// WithSource supplies the random source directly.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// WithWorkers sets how many goroutines run repetitions. n <= 0 selects
// runtime.NumCPU(). The worker count never affects the sampled values.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.src == nil {
		o.src = rand.NewSource(time.Now().UnixNano())
	}
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}
	return o
}

// highestReached runs a single repetition: starting at -Offset it takes Inner
// steps, moving +1 when a uniform draw in [0,1) is at most Bias and -1
// otherwise, and returns the highest position attained. The result is never
// below the starting position.
func highestReached(p Params, rng *rand.Rand) int {
	k := -p.Offset
	highest := k
	for i := 0; i < p.Inner; i++ {
		if rng.Float64() <= p.Bias {
			k++
			if k > highest {
				highest = k
			}
		} else {
			k--
		}
	}
	return highest
}

// runRepetitions produces Outer recorded maxima. Per-repetition seeds are
// drawn serially from rng up front and workers write results by repetition
// index, so the output depends only on the state of rng, not on scheduling
// or worker count.
func runRepetitions(p Params, rng *rand.Rand, workers int) []int {
	seeds := make([]int64, p.Outer)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	if workers > p.Outer {
		workers = p.Outer
	}

	results := make([]int, p.Outer)
	jobs := make(chan int, p.Outer)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := rand.New(rand.NewSource(seeds[i]))
				results[i] = highestReached(p, r)
			}
		}()
	}
	for i := 0; i < p.Outer; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
