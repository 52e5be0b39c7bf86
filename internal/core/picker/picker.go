// Package picker provides seeded uniform selection over fixed phrase lists.
// All "reproducible seed" behavior in the assemblers rests on one Picker
// being constructed per invocation and consumed in a fixed draw order.
package picker

import "math/rand/v2"

// Picker draws uniformly from lists using its own random stream.
type Picker struct {
	rng *rand.Rand
}

// New returns a Picker with a deterministic stream: two Pickers built from
// the same seed yield identical draw sequences.
func New(seed uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed))}
}

// NewUnseeded returns a Picker backed by default entropy. Host-facing
// convenience only; reproducible flows must use New.
func NewUnseeded() *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Pick returns one element uniformly at random. The list is never mutated.
// An empty list yields the empty string.
func (p *Picker) Pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[p.rng.IntN(len(list))]
}

// IntN returns a uniform integer in [0, n). n must be positive.
func (p *Picker) IntN(n int) int {
	return p.rng.IntN(n)
}

// Sample returns k distinct elements drawn without replacement, in draw
// order. When k >= len(list) a shuffled copy of the whole list is returned.
func (p *Picker) Sample(list []string, k int) []string {
	n := len(list)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := p.rng.Perm(n)
	out := make([]string, 0, k)
	for _, i := range idx[:k] {
		out = append(out, list[i])
	}
	return out
}
