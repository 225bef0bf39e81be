// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airfoil

import (
	"sort"

	"github.com/pdiddy/dxfoil/pkg/types"
)

// Order imposes the canonical per-surface point ordering: upper sorted by
// descending x (trailing edge first, leading edge last), lower by ascending
// x (leading edge first). Sorting is stable, so points sharing an x keep
// their original traversal order. The input pair is not modified.
func Order(pair types.SurfacePair) types.SurfacePair {
	upper := append(types.Curve(nil), pair.Upper...)
	lower := append(types.Curve(nil), pair.Lower...)

	sort.SliceStable(upper, func(i, j int) bool { return upper[i].X > upper[j].X })
	sort.SliceStable(lower, func(i, j int) bool { return lower[i].X < lower[j].X })

	return types.SurfacePair{Upper: upper, Lower: lower}
}

// TrailingEdges returns the maximum-x point of each surface. They are
// computed by max-by-x scans rather than by position in the sorted slices,
// so the result does not depend on sort tie-breaking.
func TrailingEdges(pair types.SurfacePair) (upperTE, lowerTE types.Point) {
	return maxByX(pair.Upper), maxByX(pair.Lower)
}

func maxByX(c types.Curve) types.Point {
	if len(c) == 0 {
		return types.Point{}
	}
	te := c[0]
	for _, p := range c[1:] {
		if p.X > te.X {
			te = p
		}
	}
	return te
}
