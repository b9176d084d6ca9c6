// Package xyz tokenizes XYZ-style trajectory frames into atom labels
// and raw N×3 coordinate arrays, the form consumed by the cell
// geometry engine. It is deliberately thin: one frame layout (atom
// count, comment, then "label x y z" lines), no format dispatch.
package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arvikal/pbcell/cell"
)

// ErrFormat indicates a malformed frame: a bad atom-count line, a
// truncated frame, or an atom line without a label and three
// coordinates.
var ErrFormat = errors.New("xyz: malformed frame")

// Frame is one trajectory frame: per-atom labels and Cartesian
// coordinates, index-aligned.
type Frame struct {
	Comment string
	Labels  []string
	Coords  [][3]float64
}

// Reader reads frames sequentially from an XYZ-style stream.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader wraps r for frame-by-frame reading.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadFrame reads the next frame. It returns io.EOF once the stream is
// exhausted at a frame boundary; a stream ending mid-frame is
// ErrFormat.
func (r *Reader) ReadFrame() (*Frame, error) {
	first, err := r.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	if strings.TrimSpace(first) == "" {
		// Tolerate blank separator lines between frames.
		return r.ReadFrame()
	}

	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("line %d: bad atom count %q: %w", r.line, strings.TrimSpace(first), ErrFormat)
	}

	comment, err := r.readLine()
	if err != nil {
		return nil, fmt.Errorf("line %d: missing comment line: %w", r.line, ErrFormat)
	}

	f := &Frame{
		Comment: strings.TrimSpace(comment),
		Labels:  make([]string, 0, n),
		Coords:  make([][3]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		l, err := r.readLine()
		if err != nil {
			return nil, fmt.Errorf("line %d: frame truncated after %d of %d atoms: %w", r.line, i, n, ErrFormat)
		}

		fields := strings.Fields(l)
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: want label and 3 coordinates, got %d fields: %w", r.line, len(fields), ErrFormat)
		}

		var xyz [3]float64
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(fields[1+k], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad coordinate %q: %w", r.line, fields[1+k], ErrFormat)
			}
			xyz[k] = v
		}

		f.Labels = append(f.Labels, fields[0])
		f.Coords = append(f.Coords, xyz)
	}
	return f, nil
}

// readLine reads up to the next newline, tracking the 1-based line
// number for error messages. A final line without a trailing newline is
// still returned.
func (r *Reader) readLine() (string, error) {
	l, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && l != "" {
			r.line++
			return l, nil
		}
		return "", err
	}
	r.line++
	return l, nil
}

// Wrap maps every coordinate of f through the minimum-image convention
// of c, returning a new frame that shares labels with f. Order and the
// N×3 shape are preserved; f itself is untouched.
func Wrap(c *cell.Cell, f *Frame) *Frame {
	return &Frame{
		Comment: f.Comment,
		Labels:  f.Labels,
		Coords:  c.ImageAll(f.Coords),
	}
}
