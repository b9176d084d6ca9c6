package cell_test

import (
	"math"
	"testing"

	"github.com/arvikal/pbcell/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triclinic123 returns the reference cell (a=1, b=2, c=3,
// alpha=60°, beta=90°, gamma=120°) used across the construction and
// decomposition tests.
func triclinic123(t *testing.T) *cell.Cell {
	t.Helper()
	c, err := cell.New(1, 2, 3, 60, 90, 120, cell.DefaultOptions())
	require.NoError(t, err, "reference cell must construct")
	return c
}

// triclinic123Matrix is the box matrix of triclinic123 with rows as
// edge vectors: a along x, b in the xy-plane.
func triclinic123Matrix() cell.Mat3 {
	return cell.Mat3{
		{1, 0, 0},
		{-1, 1.7320508075688772, 0},
		{0, 1.7320508075688772, 2.449489742783178},
	}
}

func assertMat3InDelta(t *testing.T, want, got cell.Mat3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i][j], got[i][j], delta, "matrix entry (%d,%d)", i, j)
		}
	}
}

// TestNew_Orthorhombic verifies that 90° angles produce a diagonal box
// matrix carrying the lengths.
func TestNew_Orthorhombic(t *testing.T) {
	c, err := cell.New(1, 2, 3, 90, 90, 90, cell.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, [3]float64{1, 2, 3}, c.Lengths())
	assert.Equal(t, [3]float64{90, 90, 90}, c.Angles())
	assertMat3InDelta(t, cell.Mat3{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, c.BoxMatrix(), 1e-12)
}

// TestNew_Triclinic verifies the general construction formula against
// the reference (1,2,3,60,90,120) matrix.
func TestNew_Triclinic(t *testing.T) {
	c := triclinic123(t)

	assert.Equal(t, 1.0, c.A())
	assert.Equal(t, 2.0, c.B())
	assert.Equal(t, 3.0, c.C())
	assert.Equal(t, 60.0, c.Alpha())
	assert.Equal(t, 90.0, c.Beta())
	assert.Equal(t, 120.0, c.Gamma())
	assertMat3InDelta(t, triclinic123Matrix(), c.BoxMatrix(), 1e-9)
}

// TestNew_InvalidGeometry covers every rejection class of the forward
// construction: non-positive or non-finite lengths, angles outside
// (0°,180°), a vanishing sin(gamma), and an angle triple that cannot
// close into a parallelepiped.
func TestNew_InvalidGeometry(t *testing.T) {
	opts := cell.DefaultOptions()
	cases := []struct {
		name                string
		a, b, c, al, be, ga float64
	}{
		{"zero length", 0, 2, 3, 90, 90, 90},
		{"negative length", 1, -2, 3, 90, 90, 90},
		{"NaN length", math.NaN(), 2, 3, 90, 90, 90},
		{"infinite length", math.Inf(1), 2, 3, 90, 90, 90},
		{"zero angle", 1, 2, 3, 0, 90, 90},
		{"straight angle", 1, 2, 3, 90, 180, 90},
		{"negative angle", 1, 2, 3, 90, 90, -45},
		{"gamma singularity", 1, 2, 3, 90, 90, 1e-14},
		{"open parallelepiped", 1, 2, 3, 30, 150, 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cell.New(tc.a, tc.b, tc.c, tc.al, tc.be, tc.ga, opts)
			assert.ErrorIs(t, err, cell.ErrInvalidGeometry)
		})
	}
}

// TestFromMatrix_Decompose verifies that lengths and angles are
// recovered from an explicit box matrix, diagonal and triclinic.
func TestFromMatrix_Decompose(t *testing.T) {
	c, err := cell.FromMatrix(cell.Mat3{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, cell.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1, c.A(), 1e-12)
	assert.InDelta(t, 2, c.B(), 1e-12)
	assert.InDelta(t, 3, c.C(), 1e-12)
	assert.InDelta(t, 90, c.Alpha(), 1e-12)
	assert.InDelta(t, 90, c.Beta(), 1e-12)
	assert.InDelta(t, 90, c.Gamma(), 1e-12)
	assert.InDelta(t, 6, c.Volume(), 1e-12)

	c, err = cell.FromMatrix(triclinic123Matrix(), cell.DefaultOptions())
	require.NoError(t, err)
	lengths := c.Lengths()
	angles := c.Angles()
	assert.InDelta(t, 1, lengths[0], 1e-9)
	assert.InDelta(t, 2, lengths[1], 1e-9)
	assert.InDelta(t, 3, lengths[2], 1e-9)
	assert.InDelta(t, 60, angles[0], 1e-9)
	assert.InDelta(t, 90, angles[1], 1e-9)
	assert.InDelta(t, 120, angles[2], 1e-9)
}

// TestFromMatrix_Errors covers the matrix-side error taxonomy: a zero
// row is invalid geometry, non-finite entries are a domain error, and
// the all-zero matrix is the degenerate vacuum cell rather than an
// error.
func TestFromMatrix_Errors(t *testing.T) {
	opts := cell.DefaultOptions()

	_, err := cell.FromMatrix(cell.Mat3{{1, 0, 0}, {0, 0, 0}, {0, 0, 3}}, opts)
	assert.ErrorIs(t, err, cell.ErrInvalidGeometry, "zero row in nonzero matrix")

	_, err = cell.FromMatrix(cell.Mat3{{math.NaN(), 0, 0}, {0, 2, 0}, {0, 0, 3}}, opts)
	assert.ErrorIs(t, err, cell.ErrDomain, "NaN entry")

	_, err = cell.FromMatrix(cell.Mat3{{1, 0, 0}, {0, math.Inf(1), 0}, {0, 0, 3}}, opts)
	assert.ErrorIs(t, err, cell.ErrDomain, "Inf entry")

	c, err := cell.FromMatrix(cell.Mat3{}, opts)
	require.NoError(t, err, "zero matrix is the vacuum cell")
	assert.True(t, c.IsVacuum())
	assert.Equal(t, 0.0, c.Volume())
}

// TestFromMatrixSlice_Shape verifies the dynamically shaped boundary:
// anything but 3 rows of 3 entries is ErrShapeMismatch.
func TestFromMatrixSlice_Shape(t *testing.T) {
	opts := cell.DefaultOptions()

	_, err := cell.FromMatrixSlice([][]float64{{1, 0, 0}, {0, 2, 0}}, opts)
	assert.ErrorIs(t, err, cell.ErrShapeMismatch, "two rows")

	_, err = cell.FromMatrixSlice([][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3, 4}}, opts)
	assert.ErrorIs(t, err, cell.ErrShapeMismatch, "four entries in a row")

	c, err := cell.FromMatrixSlice([][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 6, c.Volume(), 1e-12)
}

// TestRoundTrip checks that decompose(construct(lengths, angles))
// reproduces the inputs within 1e-6 relative tolerance, and that the
// canonical matrix survives params → matrix → params → matrix.
func TestRoundTrip(t *testing.T) {
	params := [][6]float64{
		{10, 10, 10, 90, 90, 90},
		{1, 2, 3, 60, 90, 120},
		{5, 7, 9, 80, 95, 105},
		{4, 4, 6, 120, 60, 70},
		{25.3, 18.1, 33.9, 88.5, 92.25, 95.75},
		{0.5, 0.25, 0.125, 45, 60, 75},
	}
	opts := cell.DefaultOptions()
	for _, p := range params {
		c1, err := cell.New(p[0], p[1], p[2], p[3], p[4], p[5], opts)
		require.NoError(t, err, "params %v", p)

		c2, err := cell.FromMatrix(c1.BoxMatrix(), opts)
		require.NoError(t, err, "params %v", p)

		l, a := c2.Lengths(), c2.Angles()
		for k := 0; k < 3; k++ {
			assert.InEpsilon(t, p[k], l[k], 1e-6, "length %d of %v", k, p)
			assert.InEpsilon(t, p[3+k], a[k], 1e-6, "angle %d of %v", k, p)
		}

		c3, err := cell.New(l[0], l[1], l[2], a[0], a[1], a[2], opts)
		require.NoError(t, err, "params %v", p)
		assertMat3InDelta(t, c1.BoxMatrix(), c3.BoxMatrix(), 1e-6)
	}
}

// TestSetters verifies recompute-on-write: each setter re-derives the
// dependent representation, and a failed setter leaves the cell
// untouched.
func TestSetters(t *testing.T) {
	c, err := cell.New(1, 2, 3, 90, 90, 90, cell.DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, c.SetLengths([3]float64{2, 3, 4}))
	assert.Equal(t, [3]float64{2, 3, 4}, c.Lengths())
	assertMat3InDelta(t, cell.Mat3{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}, c.BoxMatrix(), 1e-12)

	require.NoError(t, c.SetAngles([3]float64{60, 90, 120}))
	assert.Equal(t, [3]float64{60, 90, 120}, c.Angles())
	ref, err := cell.New(2, 3, 4, 60, 90, 120, cell.DefaultOptions())
	require.NoError(t, err)
	assertMat3InDelta(t, ref.BoxMatrix(), c.BoxMatrix(), 1e-9)

	require.NoError(t, c.SetMatrix(cell.Mat3{{5, 0, 0}, {0, 6, 0}, {0, 0, 7}}))
	l := c.Lengths()
	assert.InDelta(t, 5, l[0], 1e-12)
	assert.InDelta(t, 6, l[1], 1e-12)
	assert.InDelta(t, 7, l[2], 1e-12)

	// A rejected mutation must not leave partial state behind.
	before := c.BoxMatrix()
	assert.ErrorIs(t, c.SetAngles([3]float64{0, 90, 90}), cell.ErrInvalidGeometry)
	assert.Equal(t, before, c.BoxMatrix())
	assert.Equal(t, [3]float64{5, 6, 7}, c.Lengths())

	assert.ErrorIs(t, c.SetLengths([3]float64{-1, 6, 7}), cell.ErrInvalidGeometry)
	assert.Equal(t, before, c.BoxMatrix())
}

// TestString verifies the parameter rendering and the vacuum form.
func TestString(t *testing.T) {
	c := triclinic123(t)
	assert.Equal(t, "Cell(a=1, b=2, c=3, alpha=60, beta=90, gamma=120)", c.String())

	assert.Equal(t, "Cell()", cell.Vacuum(cell.DefaultOptions()).String())
	assert.Equal(t, "Cell()", cell.Vacuum(cell.Options{Vacuum: cell.MaxSentinel}).String())
}
