// Package cell models the periodic simulation cell (unit cell / bounding
// box) of a molecular dynamics trajectory and provides the geometric
// operations needed to interpret atomic coordinates inside it.
//
// 🚀 What is a periodic cell?
//
//	Under periodic boundary conditions space is tiled by copies of a
//	parallelepiped defined by three edge vectors. This package owns
//	that parallelepiped and answers the geometric questions trajectory
//	analysis asks of it:
//	  • lengths/angles ↔ 3×3 box matrix conversion (both directions)
//	  • cell volume and vacuum detection
//	  • the 8 bounding corners of the cell
//	  • minimum-image mapping of Cartesian coordinates
//	  • exact and tolerance-based cell comparison
//
// ✨ Key properties:
//   - one representation, one precision: a row-major float64 3×3 matrix
//     whose rows are the cell edge vectors
//   - the matrix (and its inverse) is derived once per mutation, never
//     per query
//   - orthorhombic cells (all angles 90°) take a per-axis fast path in
//     minimum-image mapping; general triclinic cells go through
//     fractional coordinates
//   - two vacuum conventions, selectable at construction: ZeroVolume
//     (default) and MaxSentinel (lengths near math.MaxFloat64 used as a
//     "no periodicity" marker)
//
// ⚙️ Usage:
//
//	c, err := cell.New(10, 10, 10, 90, 90, 90, cell.DefaultOptions())
//	if err != nil {
//	  // handle ErrInvalidGeometry
//	}
//	wrapped := c.Image([3]float64{6, -6, 11}) // → (-4, 4, 1)
//
// A Cell is safe for concurrent readers as long as no goroutine calls a
// setter; callers that mutate concurrently must provide their own
// exclusion.
package cell
