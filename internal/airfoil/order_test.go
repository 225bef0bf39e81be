// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airfoil

import (
	"sort"
	"testing"

	"honnef.co/go/curve"

	"github.com/pdiddy/dxfoil/pkg/types"
)

func TestOrderSurfaces(t *testing.T) {
	pair := types.SurfacePair{
		Upper: types.Curve{curve.Pt(0, 0), curve.Pt(1, 0.01), curve.Pt(0.5, 0.05)},
		Lower: types.Curve{curve.Pt(1, -0.01), curve.Pt(0, 0), curve.Pt(0.5, -0.05)},
	}

	ordered := Order(pair)

	if !sort.SliceIsSorted(ordered.Upper, func(i, j int) bool {
		return ordered.Upper[i].X > ordered.Upper[j].X
	}) {
		t.Errorf("upper not in descending x order: %v", ordered.Upper)
	}
	if !sort.SliceIsSorted(ordered.Lower, func(i, j int) bool {
		return ordered.Lower[i].X < ordered.Lower[j].X
	}) {
		t.Errorf("lower not in ascending x order: %v", ordered.Lower)
	}

	// Input untouched.
	if pair.Upper[0] != curve.Pt(0, 0) {
		t.Errorf("input upper mutated: %v", pair.Upper)
	}
}

func TestOrderEqualXKeepsTraversalOrder(t *testing.T) {
	// Equal-x order is an accepted ambiguity; the implementation keeps
	// traversal order via stable sort, which is what we pin down here.
	pair := types.SurfacePair{
		Lower: types.Curve{curve.Pt(0, 0), curve.Pt(1, -0.01), curve.Pt(1, -0.02)},
	}

	ordered := Order(pair)

	if ordered.Lower[1].Y != -0.01 || ordered.Lower[2].Y != -0.02 {
		t.Errorf("equal-x points reordered: %v", ordered.Lower)
	}
}

func TestTrailingEdges(t *testing.T) {
	pair := types.SurfacePair{
		Upper: types.Curve{curve.Pt(1, 0.003), curve.Pt(0.5, 0.05), curve.Pt(0, 0)},
		Lower: types.Curve{curve.Pt(0, 0), curve.Pt(0.5, -0.05), curve.Pt(0.98, -0.002)},
	}

	upperTE, lowerTE := TrailingEdges(pair)

	if upperTE != curve.Pt(1, 0.003) {
		t.Errorf("upperTE = %v, want (1, 0.003)", upperTE)
	}
	if lowerTE != curve.Pt(0.98, -0.002) {
		t.Errorf("lowerTE = %v, want (0.98, -0.002)", lowerTE)
	}
}

func TestTrailingEdgesEmptySurface(t *testing.T) {
	upperTE, lowerTE := TrailingEdges(types.SurfacePair{})
	if upperTE != (types.Point{}) || lowerTE != (types.Point{}) {
		t.Errorf("trailing edges of empty pair = %v, %v, want zero points", upperTE, lowerTE)
	}
}
