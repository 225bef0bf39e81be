// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the whole conversion pipeline for one drawing:
// extract curves, classify surfaces, normalize, and serialize, reporting a
// human-readable summary to an io.Writer and returning a Result for
// callers that record or report conversions.
package convert

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/dxfoil/internal/airfoil"
	"github.com/pdiddy/dxfoil/internal/datfile"
	"github.com/pdiddy/dxfoil/internal/extract"
	"github.com/pdiddy/dxfoil/pkg/types"
)

// Result holds the outcome of a single successful conversion.
type Result struct {
	Airfoil     types.NormalizedAirfoil
	Label       string
	Format      datfile.Format
	SourcePath  string
	OutputPath  string
	ConvertedAt time.Time
}

// PointsWritten returns the number of coordinate lines in the output file.
// Selig elides the duplicated leading-edge point once; Lednicer writes
// both surfaces in full.
func (r *Result) PointsWritten() int {
	if r.Format == datfile.Selig && len(r.Airfoil.Lower) > 0 {
		return r.Airfoil.TotalPoints() - 1
	}
	return r.Airfoil.TotalPoints()
}

// File converts the DXF drawing at dxfPath into a .dat file at outPath,
// writing a summary of the conversion to w. The pipeline runs strictly
// forward and owns no state beyond the output file; any failure surfaces
// as one of the pkg/types error kinds before or during the single write.
func File(dxfPath, outPath string, format datfile.Format, w io.Writer) (*Result, error) {
	doc, err := extract.Open(dxfPath)
	if err != nil {
		return nil, err
	}
	return Document(doc, dxfPath, outPath, format, w)
}

// Document is File for an already-parsed drawing. Split out so the
// pipeline is testable without DXF fixtures.
func Document(doc extract.Document, dxfPath, outPath string, format datfile.Format, w io.Writer) (*Result, error) {
	pair, err := airfoil.Classify(extract.Curves(doc))
	if err != nil {
		return nil, err
	}

	foil, err := airfoil.Normalize(pair)
	if err != nil {
		return nil, err
	}

	if err := datfile.WriteFile(outPath, foil, format); err != nil {
		return nil, err
	}

	res := &Result{
		Airfoil:     foil,
		Label:       datfile.Label(outPath),
		Format:      format,
		SourcePath:  dxfPath,
		OutputPath:  outPath,
		ConvertedAt: time.Now().UTC(),
	}
	printSummary(w, res)
	return res, nil
}

// printSummary reports the conversion to the operator: point count, the
// normalized leading and trailing edges, and the chosen format. The
// summary is not part of the file contract.
func printSummary(w io.Writer, res *Result) {
	foil := res.Airfoil
	fmt.Fprintf(w, "saved %d points to %s\n", res.PointsWritten(), res.OutputPath)
	fmt.Fprintf(w, "LE at (0,0), TE at (%.4f,%.4f) and (%.4f,%.4f), chord %g drawing units\n",
		foil.UpperTE.X, foil.UpperTE.Y, foil.LowerTE.X, foil.LowerTE.Y, foil.ChordLength)
	fmt.Fprintf(w, "format: %s\n", res.Format)
}
