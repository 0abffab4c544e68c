// Package dice provides the randomness abstraction used to pick targets
// during session autoplay.
package dice

// Source is the randomness provider.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Pick returns a uniformly chosen element index of a slice of length n.
//
// Precondition: n > 0; src must be non-nil.
// Postcondition: Returns a value in [0, n).
func Pick(src Source, n int) int {
	if n == 1 {
		return 0
	}
	return src.Intn(n)
}
