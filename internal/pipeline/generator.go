package pipeline

import (
	"math"
	"math/rand"
	"time"
)

// Generator is the single random source every stage draws from. A
// fixed seed makes a whole run reproducible.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator seeded with seed; a seed <= 0 is
// replaced with the current time.
func NewGenerator(seed int64) *Generator {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// IntRange returns a uniform int in [min, max].
func (g *Generator) IntRange(min, max int) int {
	return min + g.rnd.Intn(max-min+1)
}

// Float returns a uniform float64 in [min, max).
func (g *Generator) Float(min, max float64) float64 {
	return min + g.rnd.Float64()*(max-min)
}

// Money returns a uniform amount in [min, max) rounded to 2 decimals.
func (g *Generator) Money(min, max float64) float64 {
	return round2(g.Float(min, max))
}

// Chance reports true with probability p.
func (g *Generator) Chance(p float64) bool {
	return g.rnd.Float64() < p
}

// Pick returns a uniformly chosen element of pool.
func (g *Generator) Pick(pool []string) string {
	return pool[g.rnd.Intn(len(pool))]
}

// PickID returns a uniformly chosen identifier.
func (g *Generator) PickID(ids []int64) int64 {
	return ids[g.rnd.Intn(len(ids))]
}

// Sample returns up to n distinct identifiers drawn without
// replacement, in sample order.
func (g *Generator) Sample(ids []int64, n int) []int64 {
	if n > len(ids) {
		n = len(ids)
	}
	sample := make([]int64, 0, n)
	for _, i := range g.rnd.Perm(len(ids))[:n] {
		sample = append(sample, ids[i])
	}
	return sample
}

// Date returns a date with year in [minYear, maxYear], any month and a
// day in [1, 28] so every combination is valid.
func (g *Generator) Date(minYear, maxYear int) time.Time {
	return time.Date(
		g.IntRange(minYear, maxYear),
		time.Month(g.IntRange(1, 12)),
		g.IntRange(1, 28),
		0, 0, 0, 0, time.UTC,
	)
}

// DateWithin returns base shifted by a uniform number of days in
// [0, spanDays].
func (g *Generator) DateWithin(base time.Time, spanDays int) time.Time {
	return base.AddDate(0, 0, g.IntRange(0, spanDays))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
