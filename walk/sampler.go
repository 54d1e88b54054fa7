package walk

import (
	"math/rand"
	"sort"
)

// Distribution is a frozen frequency distribution over recorded maxima. Keys
// are the distinct values in ascending order with one occurrence count each;
// the counts sum to the Outer parameter of the sampler that built it.
type Distribution struct {
	keys   []int
	counts []int
	index  map[int]int
}

func newDistribution(samples []int) *Distribution {
	byValue := make(map[int]int, len(samples))
	for _, v := range samples {
		byValue[v]++
	}

	keys := make([]int, 0, len(byValue))
	for v := range byValue {
		keys = append(keys, v)
	}
	sort.Ints(keys)

	d := &Distribution{
		keys:   keys,
		counts: make([]int, len(keys)),
		index:  make(map[int]int, len(keys)),
	}
	for i, k := range keys {
		d.counts[i] = byValue[k]
		d.index[k] = i
	}
	return d
}

// Len returns the number of distinct values.
func (d *Distribution) Len() int { return len(d.keys) }

// Keys returns the distinct values in ascending order.
func (d *Distribution) Keys() []int {
	out := make([]int, len(d.keys))
	copy(out, d.keys)
	return out
}

// Counts returns the occurrence counts, parallel to Keys.
func (d *Distribution) Counts() []int {
	out := make([]int, len(d.counts))
	copy(out, d.counts)
	return out
}

// Count reports the occurrence count of v and whether v was observed.
func (d *Distribution) Count(v int) (int, bool) {
	i, ok := d.index[v]
	if !ok {
		return 0, false
	}
	return d.counts[i], true
}

// Total returns the sum of all counts.
func (d *Distribution) Total() int {
	total := 0
	for _, c := range d.counts {
		total += c
	}
	return total
}

// Sampler runs the 1D simulation: Outer repetitions of Inner biased steps,
// recording the highest position each repetition reaches. Construct with
// NewSampler and call Compute before any accessor.
type Sampler struct {
	params  Params
	rng     *rand.Rand
	workers int
	dist    *Distribution
}

// NewSampler creates a 1D sampler. It fails if Inner or Outer is not
// positive or Bias is outside [0,1].
func NewSampler(p Params, opts ...Option) (*Sampler, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Sampler{params: p, rng: rand.New(o.src), workers: o.workers}, nil
}

// Params returns the sampler's simulation parameters.
func (s *Sampler) Params() Params { return s.params }

// Compute runs the full simulation, replacing any previously computed
// distribution. Accessors never observe a partially built distribution: the
// new one is swapped in only once every repetition has finished.
func (s *Sampler) Compute() {
	s.dist = newDistribution(runRepetitions(s.params, s.rng, s.workers))
}

// Distribution returns the computed frequency distribution.
func (s *Sampler) Distribution() (*Distribution, error) {
	if s.dist == nil {
		return nil, ErrNotComputed
	}
	return s.dist, nil
}

// Values returns the distinct recorded maxima in ascending order.
func (s *Sampler) Values() ([]int, error) {
	if s.dist == nil {
		return nil, ErrNotComputed
	}
	return s.dist.Keys(), nil
}

// Heights returns the occurrence counts, parallel to Values.
func (s *Sampler) Heights() ([]int, error) {
	if s.dist == nil {
		return nil, ErrNotComputed
	}
	return s.dist.Counts(), nil
}

// FirstNonNegativeIndex returns the index into Values of the first value
// >= 0. The second result is false when every recorded value is negative.
func (s *Sampler) FirstNonNegativeIndex() (int, bool, error) {
	if s.dist == nil {
		return 0, false, ErrNotComputed
	}
	// Keys are ascending, so the first value >= 0 is found by threshold
	// search.
	i := sort.SearchInts(s.dist.keys, 0)
	if i == len(s.dist.keys) {
		return 0, false, nil
	}
	return i, true, nil
}

// SuccessProbability returns the fraction of repetitions whose recorded
// maximum is >= 0, or 0 when no repetition reached zero.
func (s *Sampler) SuccessProbability() (float64, error) {
	i, ok, err := s.FirstNonNegativeIndex()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	reached := 0
	for _, c := range s.dist.counts[i:] {
		reached += c
	}
	outer := float64(s.params.Outer)
	return 1 - (outer-float64(reached))/outer, nil
}
