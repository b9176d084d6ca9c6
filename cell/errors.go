package cell

import "errors"

// Sentinel errors for cell construction and mutation. Callers match them
// with errors.Is; call sites add context via fmt.Errorf("…: %w", ErrX).
var (
	// ErrInvalidGeometry indicates a non-positive edge length, an angle
	// outside (0°, 180°), or an angle combination that does not define a
	// parallelepiped (including sin(gamma) within machine epsilon of zero,
	// which makes the box-matrix construction singular).
	ErrInvalidGeometry = errors.New("cell: invalid cell geometry")

	// ErrShapeMismatch indicates dynamically shaped input that is not 3×3
	// (matrix) or length 3 (lengths/angles).
	ErrShapeMismatch = errors.New("cell: input has wrong shape")

	// ErrDomain indicates a non-finite value where the geometry requires a
	// finite one, such as NaN or ±Inf matrix entries feeding an inverse
	// trigonometric function. With finite input the acos arguments are
	// clamped to [-1, 1], so seeing ErrDomain signals bad input data, not
	// rounding noise.
	ErrDomain = errors.New("cell: value outside numeric domain")
)
