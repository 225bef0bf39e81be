// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package airfoil implements the geometric core of the converter:
// classifying extracted curves into upper and lower surfaces, normalizing
// them into the unit-chord frame with the leading edge at the origin, and
// imposing the canonical per-surface point ordering.
package airfoil

import (
	"fmt"

	"github.com/pdiddy/dxfoil/pkg/types"
)

// surfaceCase discriminates how the extracted curves map onto surfaces.
// Resolved once per conversion from the curve count.
type surfaceCase int

const (
	twoCurveCase surfaceCase = iota
	oneCurveCase
	invalidCase
)

func caseFor(curveCount int) surfaceCase {
	switch curveCount {
	case 2:
		return twoCurveCase
	case 1:
		return oneCurveCase
	default:
		return invalidCase
	}
}

// Classify decides which extracted curves represent the upper and lower
// surfaces.
//
// With two curves, the one with the greater mean y becomes the upper
// surface; on an exact mean-y tie the first curve in document order wins.
// With a single curve, the curve is split at its minimum-x vertex (the
// leading edge, first occurrence on ties): the prefix through and including
// that vertex becomes the upper surface and the suffix from that vertex the
// lower, so the two share exactly the leading-edge point. A closed loop is
// assumed to run one surface into the other through the leading edge; no
// y-sign check is made. Any other curve count is an ErrShape failure.
//
// No plausibility validation is performed beyond the count: garbage input
// yields garbage surfaces, not a crash.
func Classify(curves []types.Curve) (types.SurfacePair, error) {
	switch caseFor(len(curves)) {
	case twoCurveCase:
		upper, lower := curves[0], curves[1]
		if lower.MeanY() > upper.MeanY() {
			upper, lower = lower, upper
		}
		return types.SurfacePair{Upper: upper, Lower: lower}, nil

	case oneCurveCase:
		c := curves[0]
		le := c.MinXIndex()
		return types.SurfacePair{Upper: c[:le+1], Lower: c[le:]}, nil

	default:
		return types.SurfacePair{}, fmt.Errorf(
			"%w: expected 1 or 2 curves, found %d", types.ErrShape, len(curves))
	}
}
