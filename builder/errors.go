// Package builder - sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Generators attach parameter context via fmt.Errorf("…: %w", ErrX).
//   - Sentinels are never wrapped with formatted strings at definition site.
package builder

import "errors"

// ErrTooFewVertices indicates n is below the minimum for the requested model.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrInvalidProbability indicates a probability outside the closed [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrBadDegree indicates an attachment or lattice degree incompatible with n
// (BarabasiAlbert needs 1 ≤ m < n; WattsStrogatz needs even k with 0 < k < n).
var ErrBadDegree = errors.New("builder: invalid degree parameter")
