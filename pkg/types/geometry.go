// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared across the conversion pipeline:
// curves as extracted from the drawing, classified surface pairs, the
// normalized airfoil, configuration, and the error kinds callers test with
// errors.Is.
package types

import "honnef.co/go/curve"

// Point is a 2D coordinate. Before normalization it is in the drawing's
// native units; after normalization x and y are in chord fractions.
type Point = curve.Point

// Curve is an ordered vertex sequence as traversed in the source drawing.
// Order defines adjacency along the contour but is not anchored to any
// canonical start point. Curves are produced once by extraction and never
// mutated afterwards.
type Curve []Point

// MeanY returns the arithmetic mean of the y coordinates, or 0 for an
// empty curve.
func (c Curve) MeanY() float64 {
	if len(c) == 0 {
		return 0
	}
	var sum float64
	for _, p := range c {
		sum += p.Y
	}
	return sum / float64(len(c))
}

// MinXIndex returns the index of the point with the smallest x coordinate,
// first occurrence winning on exact ties. Returns -1 for an empty curve.
func (c Curve) MinXIndex() int {
	if len(c) == 0 {
		return -1
	}
	idx := 0
	for i, p := range c {
		if p.X < c[idx].X {
			idx = i
		}
	}
	return idx
}

// SurfacePair is the two surfaces of a single-element airfoil. Both curves
// share one coordinate frame; after normalization the leading edge sits at
// (0,0) and the extreme x values span [0,1].
type SurfacePair struct {
	Upper Curve
	Lower Curve
}

// Points returns the union of both surfaces in upper-then-lower order.
func (p SurfacePair) Points() Curve {
	out := make(Curve, 0, len(p.Upper)+len(p.Lower))
	out = append(out, p.Upper...)
	out = append(out, p.Lower...)
	return out
}

// NormalizedAirfoil is the terminal pipeline value: a SurfacePair in the
// unit-chord frame with canonical per-surface ordering (upper TE→LE,
// lower LE→TE), plus the pre-normalization chord length for traceability
// and the observed trailing-edge points. Trailing edges are reported as
// drawn; a non-zero trailing-edge y is preserved, not forced to the axis.
type NormalizedAirfoil struct {
	SurfacePair

	// ChordLength is max(x)-min(x) in the drawing's native units.
	ChordLength float64

	// UpperTE and LowerTE are the maximum-x points of each normalized
	// surface.
	UpperTE Point
	LowerTE Point
}

// TotalPoints returns the number of points across both surfaces, counting
// the shared leading-edge point once per surface that holds it.
func (a NormalizedAirfoil) TotalPoints() int {
	return len(a.Upper) + len(a.Lower)
}
