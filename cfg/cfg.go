// Package cfg loads periodic-cell parameters from a YAML configuration
// file and builds the corresponding cell.Cell. A configuration supplies
// either the six scalars (lengths + angles) or an explicit 3×3 box
// matrix, never both.
package cfg

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/arvikal/pbcell/cell"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration validation.
var (
	// ErrNoCell indicates the configuration supplies neither lengths nor
	// a box matrix.
	ErrNoCell = errors.New("cfg: either lengths or matrix must be set")
	// ErrAmbiguousCell indicates the configuration supplies both lengths
	// and a box matrix.
	ErrAmbiguousCell = errors.New("cfg: lengths and matrix are mutually exclusive")
	// ErrBadVacuumMode indicates an unknown vacuum convention name.
	ErrBadVacuumMode = errors.New(`cfg: vacuum must be "", "zero" or "sentinel"`)
)

// Cfg holds the cell parameters of a configuration file. It can be
// built by New or assembled by hand; hand-built values should be run
// through Check before use.
type Cfg struct {
	// Lengths are the cell edge lengths (a, b, c). Mutually exclusive
	// with Matrix.
	Lengths []float64 `yaml:"lengths"`

	// Angles are the cell angles (alpha, beta, gamma) in degrees.
	// Optional; when omitted alongside Lengths the cell is orthorhombic.
	Angles []float64 `yaml:"angles"`

	// Matrix is an explicit box matrix, rows as edge vectors. Mutually
	// exclusive with Lengths/Angles.
	Matrix [][]float64 `yaml:"matrix"`

	// Vacuum selects the vacuum-detection convention: "zero" (default)
	// or "sentinel".
	Vacuum string `yaml:"vacuum"`
}

// New opens and decodes the specified YAML configuration file and
// checks its integrity.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Cfg
	dec := yaml.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

// Check verifies that the configuration describes exactly one cell
// representation with well-shaped fields. Geometric validity (positive
// lengths, angle ranges) is left to the cell package.
func (c *Cfg) Check() error {
	hasLengths := len(c.Lengths) > 0
	hasMatrix := len(c.Matrix) > 0

	switch {
	case !hasLengths && !hasMatrix:
		return ErrNoCell
	case hasLengths && hasMatrix:
		return ErrAmbiguousCell
	}

	if hasLengths && len(c.Lengths) != 3 {
		return fmt.Errorf("lengths has %d entries, want 3: %w", len(c.Lengths), cell.ErrShapeMismatch)
	}
	if len(c.Angles) != 0 && len(c.Angles) != 3 {
		return fmt.Errorf("angles has %d entries, want 3: %w", len(c.Angles), cell.ErrShapeMismatch)
	}
	if hasMatrix && len(c.Angles) != 0 {
		return ErrAmbiguousCell
	}

	switch c.Vacuum {
	case "", "zero", "sentinel":
	default:
		return fmt.Errorf("%w, got %q", ErrBadVacuumMode, c.Vacuum)
	}
	return nil
}

// Cell builds the configured cell. Lengths without angles build an
// orthorhombic cell (all angles 90°).
func (c *Cfg) Cell() (*cell.Cell, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}

	opts := cell.DefaultOptions()
	if c.Vacuum == "sentinel" {
		opts.Vacuum = cell.MaxSentinel
	}

	if len(c.Matrix) > 0 {
		return cell.FromMatrixSlice(c.Matrix, opts)
	}

	angles := [3]float64{90, 90, 90}
	if len(c.Angles) == 3 {
		copy(angles[:], c.Angles)
	}
	return cell.New(c.Lengths[0], c.Lengths[1], c.Lengths[2],
		angles[0], angles[1], angles[2], opts)
}
