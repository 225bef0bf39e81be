// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"

	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
	"honnef.co/go/curve"

	"github.com/pdiddy/dxfoil/pkg/types"
)

// dxfDocument adapts a dxf-go document to the Document interface.
type dxfDocument struct {
	doc *document.DxfDocument
}

// Open parses the DXF file at path. Unreadable files and structurally
// invalid DXF content both surface as the ErrDocument kind.
func Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", types.ErrDocument, path, err)
	}
	defer f.Close()

	doc, err := document.DxfDocumentFromStream(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", types.ErrDocument, path, err)
	}
	return dxfDocument{doc: doc}, nil
}

// Polylines walks the entities section and collects POLYLINE and LWPOLYLINE
// vertex lists in document order. Only the x and y coordinates are kept;
// any elevation is ignored.
func (d dxfDocument) Polylines() [][]types.Point {
	if d.doc == nil || d.doc.Entities == nil {
		return nil
	}
	var polylines [][]types.Point
	for _, e := range d.doc.Entities.Entities {
		switch entity := e.(type) {
		case *entities.Polyline:
			pts := make([]types.Point, 0, len(entity.Vertices))
			for _, v := range entity.Vertices {
				pts = append(pts, curve.Pt(v.Location.X, v.Location.Y))
			}
			polylines = append(polylines, pts)
		case *entities.LWPolyline:
			pts := make([]types.Point, 0, len(entity.Points))
			for _, p := range entity.Points {
				pts = append(pts, curve.Pt(p.Point.X, p.Point.Y))
			}
			polylines = append(polylines, pts)
		}
	}
	return polylines
}
