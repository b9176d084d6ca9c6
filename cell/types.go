// Package cell: core value types and construction options.
package cell

import "math"

// Mat3 is a row-major 3×3 matrix. Throughout this package the rows of a
// box matrix are the three cell edge vectors expressed in Cartesian
// coordinates: row 0 is edge a, row 1 is edge b, row 2 is edge c. The
// same convention applies to construction, decomposition, bounding
// edges and minimum-image mapping.
type Mat3 [3][3]float64

// VacuumMode selects how a Cell decides that it represents the absence
// of periodic boundaries.
type VacuumMode int

const (
	// ZeroVolume treats a cell as vacuum when its volume is exactly zero
	// (the degenerate zero matrix). This is the default.
	ZeroVolume VacuumMode = iota

	// MaxSentinel treats a cell as vacuum when every edge length lies
	// within four decimal orders of magnitude of math.MaxFloat64: such
	// cells are deliberately constructed as "no periodicity" markers and
	// their volume overflows to +Inf.
	MaxSentinel
)

// sentinelThreshold is the smallest edge length the MaxSentinel
// convention accepts as a vacuum marker.
const sentinelThreshold = math.MaxFloat64 * 1e-4

// Default tolerances for IsClose, mirroring the relative/absolute
// comparison used on each box-matrix entry.
const (
	DefaultRelTol = 1e-9
	DefaultAbsTol = 0.0
)

// Options configures Cell construction.
type Options struct {
	// Vacuum selects the vacuum-detection convention for the cell being
	// built. See VacuumMode.
	Vacuum VacuumMode
}

// DefaultOptions returns the default construction options:
// Vacuum=ZeroVolume.
func DefaultOptions() Options {
	return Options{Vacuum: ZeroVolume}
}
