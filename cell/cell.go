package cell

import (
	"fmt"
	"math"
)

// Cell is a periodic simulation cell. Its canonical state is the triple
// of edge lengths (a, b, c), the triple of angles in degrees
// (alpha between b and c, beta between a and c, gamma between a and b),
// and the derived box matrix whose rows are the edge vectors. Whichever
// representation was supplied last is authoritative; the other is
// re-derived immediately so the two are never observed out of sync.
//
// The matrix and its inverse are computed once per mutation and reused
// by every query.
type Cell struct {
	lengths [3]float64
	angles  [3]float64
	matrix  Mat3
	inverse Mat3
	hasInv  bool
	mode    VacuumMode
}

// New builds a Cell from edge lengths a, b, c and angles alpha, beta,
// gamma in degrees. Lengths must be positive and angles must lie
// strictly between 0° and 180°; gamma so close to 0° or 180° that
// sin(gamma) vanishes within machine epsilon is rejected rather than
// allowed to poison the matrix with NaN/Inf. Angle combinations that do
// not close into a parallelepiped are rejected as well. All rejections
// return ErrInvalidGeometry.
func New(a, b, c, alpha, beta, gamma float64, opts Options) (*Cell, error) {
	cl := &Cell{mode: opts.Vacuum}
	if err := cl.recomputeFromParams([3]float64{a, b, c}, [3]float64{alpha, beta, gamma}); err != nil {
		return nil, err
	}
	return cl, nil
}

// FromMatrix builds a Cell from an explicit box matrix whose rows are
// the cell edge vectors. Lengths and angles are recovered from the
// matrix (acos arguments clamped to [-1, 1] against rounding noise).
// The all-zero matrix yields the degenerate zero-volume cell; a zero
// row in an otherwise nonzero matrix is ErrInvalidGeometry; non-finite
// entries are ErrDomain.
func FromMatrix(m Mat3, opts Options) (*Cell, error) {
	cl := &Cell{mode: opts.Vacuum}
	if err := cl.recomputeFromMatrix(m); err != nil {
		return nil, err
	}
	return cl, nil
}

// FromMatrixSlice is the dynamically shaped boundary form of
// FromMatrix, for callers (configuration files, parsers) whose input
// arrives as nested slices. Input that is not exactly 3×3 returns
// ErrShapeMismatch.
func FromMatrixSlice(rows [][]float64, opts Options) (*Cell, error) {
	if len(rows) != 3 {
		return nil, fmt.Errorf("matrix has %d rows, want 3: %w", len(rows), ErrShapeMismatch)
	}
	var m Mat3
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("matrix row %d has %d entries, want 3: %w", i, len(row), ErrShapeMismatch)
		}
		copy(m[i][:], row)
	}
	return FromMatrix(m, opts)
}

// Vacuum returns the vacuum cell of the selected convention: the zero
// matrix under ZeroVolume, or a cube of math.MaxFloat64 edge lengths
// with 90° angles under MaxSentinel.
func Vacuum(opts Options) *Cell {
	cl := &Cell{mode: opts.Vacuum}
	if opts.Vacuum == MaxSentinel {
		cl.lengths = [3]float64{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
		cl.angles = [3]float64{90, 90, 90}
		cl.matrix = matrixFromParams(cl.lengths, cl.angles)
		// Volume overflows to +Inf; there is no usable inverse.
	}
	return cl
}

// SetLengths replaces the edge lengths and re-derives the box matrix
// from the new lengths and the current angles. On error the cell is
// left untouched.
func (c *Cell) SetLengths(lengths [3]float64) error {
	return c.recomputeFromParams(lengths, c.angles)
}

// SetAngles replaces the angles (degrees) and re-derives the box matrix
// from the current lengths and the new angles. On error the cell is
// left untouched.
func (c *Cell) SetAngles(angles [3]float64) error {
	return c.recomputeFromParams(c.lengths, angles)
}

// SetMatrix replaces the box matrix and re-derives lengths and angles,
// under the same rules as FromMatrix. On error the cell is left
// untouched.
func (c *Cell) SetMatrix(m Mat3) error {
	return c.recomputeFromMatrix(m)
}

// Lengths returns the edge lengths (a, b, c).
func (c *Cell) Lengths() [3]float64 { return c.lengths }

// Angles returns the cell angles (alpha, beta, gamma) in degrees.
func (c *Cell) Angles() [3]float64 { return c.angles }

// BoxMatrix returns the box matrix; rows are the cell edge vectors.
func (c *Cell) BoxMatrix() Mat3 { return c.matrix }

// Mode returns the vacuum-detection convention of the cell.
func (c *Cell) Mode() VacuumMode { return c.mode }

// A returns the length of the first edge vector.
func (c *Cell) A() float64 { return c.lengths[0] }

// B returns the length of the second edge vector.
func (c *Cell) B() float64 { return c.lengths[1] }

// C returns the length of the third edge vector.
func (c *Cell) C() float64 { return c.lengths[2] }

// Alpha returns the angle between edges b and c, in degrees.
func (c *Cell) Alpha() float64 { return c.angles[0] }

// Beta returns the angle between edges a and c, in degrees.
func (c *Cell) Beta() float64 { return c.angles[1] }

// Gamma returns the angle between edges a and b, in degrees.
func (c *Cell) Gamma() float64 { return c.angles[2] }

// String renders the cell parameters, or "Cell()" for a vacuum cell.
func (c *Cell) String() string {
	if c.IsVacuum() {
		return "Cell()"
	}
	return fmt.Sprintf("Cell(a=%g, b=%g, c=%g, alpha=%g, beta=%g, gamma=%g)",
		c.lengths[0], c.lengths[1], c.lengths[2],
		c.angles[0], c.angles[1], c.angles[2])
}

// recomputeFromParams validates lengths/angles, rebuilds the matrix and
// inverse, and commits the whole derived state atomically.
func (c *Cell) recomputeFromParams(lengths, angles [3]float64) error {
	for i, l := range lengths {
		if !(l > 0) || math.IsInf(l, 0) {
			return fmt.Errorf("edge length %d is %g, want a positive finite value: %w", i, l, ErrInvalidGeometry)
		}
	}
	for i, a := range angles {
		if !(a > 0 && a < 180) {
			return fmt.Errorf("angle %d is %g°, want strictly inside (0°, 180°): %w", i, a, ErrInvalidGeometry)
		}
	}

	sinGamma := math.Sin(angles[2] * math.Pi / 180)
	if math.Abs(sinGamma) < machineEps {
		return fmt.Errorf("sin(gamma) vanishes for gamma=%g°: %w", angles[2], ErrInvalidGeometry)
	}
	cosAlpha := math.Cos(angles[0] * math.Pi / 180)
	cosBeta := math.Cos(angles[1] * math.Pi / 180)
	cosGamma := math.Cos(angles[2] * math.Pi / 180)
	sinBeta := math.Sin(angles[1] * math.Pi / 180)
	cy := (cosAlpha - cosBeta*cosGamma) / sinGamma
	disc := sinBeta*sinBeta - cy*cy
	if disc <= 0 {
		return fmt.Errorf("angles (%g°, %g°, %g°) do not close into a parallelepiped: %w",
			angles[0], angles[1], angles[2], ErrInvalidGeometry)
	}

	c.lengths = lengths
	c.angles = angles
	c.matrix = matrixFromParams(lengths, angles)
	c.inverse, c.hasInv = invert(c.matrix)
	return nil
}

// recomputeFromMatrix validates the matrix, recovers lengths/angles,
// and commits the derived state atomically.
func (c *Cell) recomputeFromMatrix(m Mat3) error {
	zero := true
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := m[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("matrix entry (%d,%d) is %g: %w", i, j, v, ErrDomain)
			}
			if v != 0 {
				zero = false
			}
		}
	}
	if zero {
		*c = Cell{mode: c.mode}
		return nil
	}

	var lengths [3]float64
	for i := 0; i < 3; i++ {
		lengths[i] = math.Sqrt(m[i][0]*m[i][0] + m[i][1]*m[i][1] + m[i][2]*m[i][2])
		if lengths[i] == 0 {
			return fmt.Errorf("matrix row %d has zero length: %w", i, ErrInvalidGeometry)
		}
	}

	// alpha: rows b,c; beta: rows a,c; gamma: rows a,b.
	angles := [3]float64{
		angleBetween(m[1], m[2], lengths[1], lengths[2]),
		angleBetween(m[0], m[2], lengths[0], lengths[2]),
		angleBetween(m[0], m[1], lengths[0], lengths[1]),
	}

	c.lengths = lengths
	c.angles = angles
	c.matrix = m
	c.inverse, c.hasInv = invert(m)
	return nil
}

// matrixFromParams applies the standard crystallographic construction:
// edge a along x, edge b in the xy-plane.
//
//	row0 = (a, 0, 0)
//	row1 = (b·cosγ, b·sinγ, 0)
//	row2 = (c·cosβ, c·(cosα − cosβ·cosγ)/sinγ, c·sqrt(sin²β − (…)²))
//
// Validation of the inputs happens in the callers.
func matrixFromParams(lengths, angles [3]float64) Mat3 {
	cosAlpha := math.Cos(angles[0] * math.Pi / 180)
	cosBeta := math.Cos(angles[1] * math.Pi / 180)
	cosGamma := math.Cos(angles[2] * math.Pi / 180)
	sinGamma := math.Sin(angles[2] * math.Pi / 180)
	sinBeta := math.Sin(angles[1] * math.Pi / 180)

	cy := (cosAlpha - cosBeta*cosGamma) / sinGamma

	var m Mat3
	m[0][0] = lengths[0]
	m[1][0] = lengths[1] * cosGamma
	m[1][1] = lengths[1] * sinGamma
	m[2][0] = lengths[2] * cosBeta
	m[2][1] = lengths[2] * cy
	m[2][2] = lengths[2] * math.Sqrt(sinBeta*sinBeta-cy*cy)
	return m
}

// angleBetween recovers the angle (degrees) between two edge rows,
// clamping the cosine into [-1, 1] so accumulated rounding can never
// push acos out of its domain.
func angleBetween(u, v [3]float64, lu, lv float64) float64 {
	cos := (u[0]*v[0] + u[1]*v[1] + u[2]*v[2]) / (lu * lv)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// machineEps is the double-precision machine epsilon used for the
// sin(gamma) singularity test.
const machineEps = 2.220446049250313e-16

// invert computes the closed-form inverse of m via the adjugate. The
// second return is false when m is singular or the inverse overflows,
// in which case the zero matrix is returned.
func invert(m Mat3) (Mat3, bool) {
	d := det(m)
	if d == 0 || math.IsInf(d, 0) || math.IsNaN(d) {
		return Mat3{}, false
	}
	var inv Mat3
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) / d
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / d
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / d
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) / d
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / d
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / d
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) / d
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / d
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / d
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsInf(inv[i][j], 0) || math.IsNaN(inv[i][j]) {
				return Mat3{}, false
			}
		}
	}
	return inv, true
}

// det is the explicit 3×3 cofactor expansion.
func det(m Mat3) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
