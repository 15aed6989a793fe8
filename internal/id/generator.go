// Package id produces the bounded-width pseudo-random identifiers new
// records are assigned.
package id

import (
	"math/rand/v2"
	"os"
	"time"
)

// Generator draws ids from a single pseudo-random source seeded once at
// construction. Seeding per call would make ids drawn within the same
// second collide almost surely.
type Generator struct {
	r *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{
		r: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid()))),
	}
}

// New returns an id in [0, 10^digits). No uniqueness is guaranteed
// against existing records; use NewUnique when that matters.
func (g *Generator) New(digits int) int {
	bound := 1
	for range digits {
		bound *= 10
	}
	return g.r.IntN(bound)
}

// NewUnique draws ids until taken reports one free. With a nil taken it
// behaves like New.
func (g *Generator) NewUnique(digits int, taken func(int) bool) int {
	for {
		id := g.New(digits)
		if taken == nil || !taken(id) {
			return id
		}
	}
}
