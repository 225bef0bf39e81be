// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airfoil

import (
	"fmt"

	"honnef.co/go/curve"

	"github.com/pdiddy/dxfoil/pkg/types"
)

// extremes holds the result of the single scan over a surface pair's
// points: the x bounds and the leading-edge point. The leading edge is the
// first point at the exact minimum x in upper-then-lower order; capturing
// it during the same pass that computes minX avoids a floating-point
// equality re-scan.
type extremes struct {
	minX, maxX  float64
	leadingEdge types.Point
}

func scanExtremes(points types.Curve) extremes {
	e := extremes{
		minX:        points[0].X,
		maxX:        points[0].X,
		leadingEdge: points[0],
	}
	for _, p := range points[1:] {
		if p.X < e.minX {
			e.minX = p.X
			e.leadingEdge = p
		}
		if p.X > e.maxX {
			e.maxX = p.X
		}
	}
	return e
}

// Normalize remaps both surfaces into the unit-chord frame: the leading
// edge moves to (0,0) and every coordinate is divided by the chord length
// (max x minus min x over the union of both surfaces). The transform is a
// pure translate-then-scale affine; it never rotates, so camber-line skew
// and any non-zero trailing-edge y survive normalization unchanged.
//
// The returned airfoil has canonical per-surface ordering (see Order) and
// carries the pre-normalization chord length and the observed trailing-edge
// point of each surface. A zero chord (all points at one x) fails with
// ErrDegenerateGeometry rather than producing Inf coordinates.
func Normalize(pair types.SurfacePair) (types.NormalizedAirfoil, error) {
	points := pair.Points()
	if len(points) == 0 {
		return types.NormalizedAirfoil{}, fmt.Errorf(
			"%w: no points on either surface", types.ErrDegenerateGeometry)
	}

	e := scanExtremes(points)
	chord := e.maxX - e.minX
	if chord == 0 {
		return types.NormalizedAirfoil{}, fmt.Errorf(
			"%w: chord length is zero (all points at x=%g)",
			types.ErrDegenerateGeometry, e.minX)
	}

	aff := curve.Translate(curve.Vec(-e.leadingEdge.X, -e.leadingEdge.Y)).
		ThenScale(1/chord, 1/chord)

	ordered := Order(types.SurfacePair{
		Upper: transform(pair.Upper, aff),
		Lower: transform(pair.Lower, aff),
	})
	upperTE, lowerTE := TrailingEdges(ordered)

	return types.NormalizedAirfoil{
		SurfacePair: ordered,
		ChordLength: chord,
		UpperTE:     upperTE,
		LowerTE:     lowerTE,
	}, nil
}

func transform(c types.Curve, aff curve.Affine) types.Curve {
	out := make(types.Curve, len(c))
	for i, p := range c {
		out[i] = p.Transform(aff)
	}
	return out
}
