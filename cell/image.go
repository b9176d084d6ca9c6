package cell

import "math"

// Image maps a single Cartesian position onto its minimum periodic
// image: the representative of its periodic equivalence class whose
// fractional coordinates lie in [-0.5, 0.5] around the origin.
//
// Ties exactly at the 0.5 boundary follow math.Round, which rounds
// half away from zero; the rule is fixed so results are reproducible.
// Orthorhombic cells (all three angles exactly 90°) wrap each axis
// independently as p - L·round(p/L); general triclinic cells convert
// to fractional coordinates through the cached inverse matrix, wrap,
// and convert back. A vacuum cell has no periodicity and returns the
// position unchanged. The cell itself is never mutated.
func (c *Cell) Image(pos [3]float64) [3]float64 {
	if c.IsVacuum() || !c.hasInv {
		return pos
	}
	if c.orthorhombic() {
		return c.imageOrtho(pos)
	}
	return c.imageTriclinic(pos)
}

// ImageAll maps every position in pos onto its minimum periodic image,
// preserving order and the N×3 shape. The algorithmic path (fast
// orthorhombic vs. general triclinic) is selected once for the whole
// batch, not per point. The input slice is left untouched; the result
// is freshly allocated.
func (c *Cell) ImageAll(pos [][3]float64) [][3]float64 {
	out := make([][3]float64, len(pos))
	if c.IsVacuum() || !c.hasInv {
		copy(out, pos)
		return out
	}
	if c.orthorhombic() {
		for i, p := range pos {
			out[i] = c.imageOrtho(p)
		}
		return out
	}
	for i, p := range pos {
		out[i] = c.imageTriclinic(p)
	}
	return out
}

// orthorhombic reports whether all three angles are exactly 90°.
// The comparison is exact on purpose: the fast path is an optimization
// for cells constructed as orthorhombic, not a tolerance judgement.
func (c *Cell) orthorhombic() bool {
	return c.angles[0] == 90 && c.angles[1] == 90 && c.angles[2] == 90
}

// imageOrtho wraps each axis independently.
func (c *Cell) imageOrtho(p [3]float64) [3]float64 {
	for k := 0; k < 3; k++ {
		p[k] -= c.lengths[k] * math.Round(p[k]/c.lengths[k])
	}
	return p
}

// imageTriclinic wraps through fractional coordinates: f = p·M⁻¹,
// f -= round(f), p' = f·M, with rows of M being the edge vectors.
func (c *Cell) imageTriclinic(p [3]float64) [3]float64 {
	var f [3]float64
	for j := 0; j < 3; j++ {
		f[j] = p[0]*c.inverse[0][j] + p[1]*c.inverse[1][j] + p[2]*c.inverse[2][j]
	}
	for j := 0; j < 3; j++ {
		f[j] -= math.Round(f[j])
	}
	var out [3]float64
	for j := 0; j < 3; j++ {
		out[j] = f[0]*c.matrix[0][j] + f[1]*c.matrix[1][j] + f[2]*c.matrix[2][j]
	}
	return out
}
