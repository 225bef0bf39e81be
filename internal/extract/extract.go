// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls ordered vertex sequences out of a parsed drawing.
// The DXF container itself is read by an external parser behind the
// Document interface; this package only decides which entities contribute
// curves and preserves their native vertex order.
package extract

import "github.com/pdiddy/dxfoil/pkg/types"

// Document exposes the polyline content of a parsed drawing. Implementations
// return the vertex list of every polyline-like entity (POLYLINE or
// LWPOLYLINE) in the drawing's entities section, in document order, with
// vertices in native traversal order.
type Document interface {
	Polylines() [][]types.Point
}

// Curves returns one Curve per polyline entity in doc, preserving document
// and vertex order. Entities with no vertices are dropped. No layer
// filtering, deduplication, or transformation is applied.
func Curves(doc Document) []types.Curve {
	var curves []types.Curve
	for _, vertices := range doc.Polylines() {
		if len(vertices) == 0 {
			continue
		}
		curves = append(curves, types.Curve(vertices))
	}
	return curves
}
