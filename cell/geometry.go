package cell

import "math"

// Volume returns the signed volume of the cell, the determinant of the
// box matrix computed by explicit cofactor expansion. Cells built by
// New always have positive volume; an arbitrary matrix supplied through
// FromMatrix may have either sign.
func (c *Cell) Volume() float64 {
	return det(c.matrix)
}

// IsVacuum reports whether the cell represents the absence of periodic
// boundaries, under the convention selected at construction:
//
//   - ZeroVolume: the volume is exactly zero.
//   - MaxSentinel: every edge length lies within four decimal orders of
//     magnitude of math.MaxFloat64.
func (c *Cell) IsVacuum() bool {
	if c.mode == MaxSentinel {
		return c.lengths[0] >= sentinelThreshold &&
			c.lengths[1] >= sentinelThreshold &&
			c.lengths[2] >= sentinelThreshold
	}
	return c.Volume() == 0
}

// BoundingEdges returns the 8 corner points of the cell, centered at
// the origin. Corner index i*4+j*2+k corresponds to the sign choices
// (i,j,k) over the fractional coordinates (±0.5, ±0.5, ±0.5), with 0
// meaning -0.5 and 1 meaning +0.5; the index order is part of the
// contract. Each corner is x·row0 + y·row1 + z·row2 of the box matrix.
func (c *Cell) BoundingEdges() [8][3]float64 {
	var edges [8][3]float64
	signs := [2]float64{-0.5, 0.5}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				idx := i*4 + j*2 + k
				x, y, z := signs[i], signs[j], signs[k]
				for col := 0; col < 3; col++ {
					edges[idx][col] = x*c.matrix[0][col] + y*c.matrix[1][col] + z*c.matrix[2][col]
				}
			}
		}
	}
	return edges
}

// Equal reports exact element-wise equality of the two box matrices.
func (c *Cell) Equal(other *Cell) bool {
	if other == nil {
		return false
	}
	return c.matrix == other.matrix
}

// IsClose reports whether the two cells agree entry-by-entry on their
// box matrices within |a-b| <= max(relTol*max(|a|,|b|), absTol). Two
// vacuum cells are always close: their lengths carry no geometric
// meaning, so numeric noise between two "no periodicity" markers is
// ignored. Use DefaultRelTol and DefaultAbsTol for the standard
// tolerances.
func (c *Cell) IsClose(other *Cell, relTol, absTol float64) bool {
	if other == nil {
		return false
	}
	if c.IsVacuum() && other.IsVacuum() {
		return true
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a, b := c.matrix[i][j], other.matrix[i][j]
			tol := relTol * math.Max(math.Abs(a), math.Abs(b))
			if tol < absTol {
				tol = absTol
			}
			if math.Abs(a-b) > tol {
				return false
			}
		}
	}
	return true
}
