// Package testutil provides helpers shared by package tests.
package testutil

import "sync"

// FixedTokenGenerator returns predetermined run tokens in order.
//
// This enables deterministic store tests: a known sequence of run IDs
// makes read-back assertions exact. Implements store.TokenGenerator.
type FixedTokenGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedTokenGenerator creates a generator that returns tokens in order.
func NewFixedTokenGenerator(tokens ...string) *FixedTokenGenerator {
	return &FixedTokenGenerator{tokens: tokens}
}

// Generate returns the next predetermined token.
//
// Panics when all tokens are consumed: a fail-fast guard against a test
// creating more runs than it declared.
func (g *FixedTokenGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("FixedTokenGenerator: all tokens exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}
