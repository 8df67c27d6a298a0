package testutil

import (
	"iter"
	"math"
	"math/rand"
	"slices"
	"sort"
	"sync"

	"github.com/hupe1980/rbestore/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RecordSpec shapes generated records.
type RecordSpec struct {
	// FirstID is the element id of the first record; ids are consecutive.
	FirstID model.ElementID
	// MaxNode bounds dependent node ids to [0, MaxNode]. Default 1000.
	MaxNode int
	// Dependents is the number of dependents per record. Default 3.
	Dependents int
	// Components is the mask of every record. Default 123.
	Components model.ComponentMask
	// Skew > 0 draws dependents from a Zipf distribution with that exponent,
	// so a few nodes are referenced by many records. Zero draws uniformly.
	Skew float64
}

func (s RecordSpec) withDefaults() RecordSpec {
	if s.MaxNode <= 0 {
		s.MaxNode = 1000
	}
	if s.Dependents <= 0 {
		s.Dependents = 3
	}
	if s.Components == 0 {
		s.Components = 123
	}
	return s
}

// Records returns a sequence of n records. Element id i drives node i, like
// the usual benchmark input. Each iteration draws fresh values from r.
func (r *RNG) Records(n int, spec RecordSpec) iter.Seq[model.Record] {
	spec = spec.withDefaults()

	var draw func() model.NodeID
	if spec.Skew > 0 {
		z := newZipf(spec.MaxNode+1, spec.Skew)
		draw = func() model.NodeID { return model.NodeID(z.sample(r.rand.Float64())) }
	} else {
		draw = func() model.NodeID { return model.NodeID(r.rand.Intn(spec.MaxNode + 1)) }
	}

	return func(yield func(model.Record) bool) {
		for i := 0; i < n; i++ {
			id := spec.FirstID + model.ElementID(i)

			r.mu.Lock()
			deps := make([]model.NodeID, spec.Dependents)
			for j := range deps {
				deps[j] = draw()
			}
			r.mu.Unlock()

			if !yield(model.NewRecord(id, model.NodeID(id), spec.Components, deps...)) {
				return
			}
		}
	}
}

// RecordSlice collects n generated records.
func (r *RNG) RecordSlice(n int, spec RecordSpec) []model.Record {
	return slices.Collect(r.Records(n, spec))
}

// zipf samples ranks in [0, n) with P(k) ∝ 1/(k+1)^s using a precomputed CDF.
type zipf struct {
	cdf []float64
}

func newZipf(n int, s float64) *zipf {
	cdf := make([]float64, n)
	var sum float64
	for k := 1; k <= n; k++ {
		sum += 1.0 / math.Pow(float64(k), s)
		cdf[k-1] = sum
	}
	for i := range cdf {
		cdf[i] /= sum
	}
	return &zipf{cdf: cdf}
}

// sample maps a uniform u in [0,1) to a rank.
func (z *zipf) sample(u float64) int {
	k := sort.SearchFloat64s(z.cdf, u)
	if k >= len(z.cdf) {
		return len(z.cdf) - 1
	}
	return k
}

// Scenario returns the three-element example model used throughout the tests.
func Scenario() []model.Record {
	return []model.Record{
		model.NewRecord(1, 1, 123, 10, 11, 12),
		model.NewRecord(2, 2, 3, 14, 12),
		model.NewRecord(3, 3, 123, 15, 11, 14),
	}
}

// ReferencedNodes returns every distinct dependent node in records, ascending.
func ReferencedNodes(records []model.Record) []model.NodeID {
	var nodes []model.NodeID
	for _, r := range records {
		nodes = append(nodes, r.Dependents...)
	}
	slices.Sort(nodes)
	return slices.Compact(nodes)
}

// IDs returns the element ids of records in order.
func IDs(records []model.Record) []model.ElementID {
	ids := make([]model.ElementID, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
