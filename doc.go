// Package pbcell is a periodic-boundary toolkit for molecular dynamics
// trajectory analysis — the unit cell, its geometry, and the thin
// boundaries that feed coordinates into it.
//
// 🚀 What is pbcell?
//
//	A small, correctness-focused library centered on one abstraction,
//	the periodic simulation cell:
//	  • Triclinic geometry: lengths/angles ↔ box matrix, both directions
//	  • Minimum-image mapping with an orthorhombic fast path
//	  • Volume, vacuum detection (two conventions), bounding corners
//	  • Exact and tolerance-based cell comparison
//
// ✨ Why choose pbcell?
//
//   - One representation, one precision – a single float64 row-major
//     box matrix, derived once per mutation and reused per query
//   - Explicit errors – sentinel error values, matched with errors.Is
//   - Pure Go – no cgo, no numeric runtime required
//
// Everything is organized under three subpackages:
//
//	cell/ — the geometry engine: Cell, Mat3, minimum-image mapping
//	cfg/  — YAML configuration → Cell (lengths+angles or explicit matrix)
//	xyz/  — XYZ-style frame tokenizer producing N×3 coordinate arrays
//
// Quick ASCII example:
//
//	      ┌────────┐
//	   ●──┼──→ ●    │   a position outside the box and its
//	      │        │   minimum image inside the primary cell
//	      └────────┘
//
//	go get github.com/arvikal/pbcell/cell
package pbcell
