package usecase

import "math/rand/v2"

// RandomRejection rejects one attempt in denominator, independently
// per call. It models an upstream security control whose failures must
// stay observable; a denominator of 0 never rejects.
type RandomRejection struct {
	denominator uint64
}

// NewRandomRejection creates the default rejection policy.
func NewRandomRejection(denominator int) *RandomRejection {
	if denominator < 0 {
		denominator = 0
	}
	return &RandomRejection{denominator: uint64(denominator)}
}

// Reject draws one sample. Safe for concurrent use: math/rand/v2's
// global functions are goroutine-safe.
func (p *RandomRejection) Reject() bool {
	if p.denominator == 0 {
		return false
	}
	return rand.Uint64N(p.denominator) == 0
}
