// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"

	"github.com/pdiddy/dxfoil/internal/datfile"
	"github.com/pdiddy/dxfoil/pkg/types"
)

// fakeDocument implements extract.Document with canned polylines.
type fakeDocument struct {
	polylines [][]types.Point
}

func (f fakeDocument) Polylines() [][]types.Point {
	return f.polylines
}

func exampleDocument() fakeDocument {
	return fakeDocument{polylines: [][]types.Point{
		{curve.Pt(0, 0), curve.Pt(0.5, 0.05), curve.Pt(1, 0)},
		{curve.Pt(0, 0), curve.Pt(0.5, -0.05), curve.Pt(1, 0)},
	}}
}

func TestDocumentEndToEnd(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "naca2412.dat")
	var summary bytes.Buffer

	res, err := Document(exampleDocument(), "in.dxf", outPath, datfile.Selig, &summary)
	require.NoError(t, err)

	assert.Equal(t, "naca2412", res.Label)
	assert.Equal(t, 5, res.PointsWritten())
	assert.Equal(t, 1.0, res.Airfoil.ChordLength)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 6, "label line plus 5 coordinate lines")
	assert.Equal(t, "naca2412", lines[0])

	out := summary.String()
	assert.Contains(t, out, "saved 5 points")
	assert.Contains(t, out, "TE at (1.0000,0.0000) and (1.0000,0.0000)")
	assert.Contains(t, out, "format: selig")
}

func TestDocumentLednicerPointCount(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "foil.dat")

	res, err := Document(exampleDocument(), "in.dxf", outPath, datfile.Lednicer, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 6, res.PointsWritten(), "lednicer writes both surfaces in full")
}

func TestDocumentShapeError(t *testing.T) {
	doc := fakeDocument{polylines: [][]types.Point{
		{curve.Pt(0, 0), curve.Pt(1, 0)},
		{curve.Pt(0, 0), curve.Pt(1, 1)},
		{curve.Pt(0, 1), curve.Pt(1, 1)},
	}}
	outPath := filepath.Join(t.TempDir(), "out.dat")

	_, err := Document(doc, "in.dxf", outPath, datfile.Selig, &bytes.Buffer{})
	require.ErrorIs(t, err, types.ErrShape)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output on classification failure")
}

func TestDocumentDegenerateGeometry(t *testing.T) {
	doc := fakeDocument{polylines: [][]types.Point{
		{curve.Pt(2, 0), curve.Pt(2, 1), curve.Pt(2, 2)},
	}}

	_, err := Document(doc, "in.dxf", filepath.Join(t.TempDir(), "out.dat"), datfile.Selig, &bytes.Buffer{})
	require.ErrorIs(t, err, types.ErrDegenerateGeometry)
}

func TestFileMissingInput(t *testing.T) {
	_, err := File("does-not-exist.dxf", filepath.Join(t.TempDir(), "out.dat"), datfile.Selig, &bytes.Buffer{})
	require.ErrorIs(t, err, types.ErrDocument)
}

func TestWriteReport(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "clark-y.dat")
	res, err := Document(exampleDocument(), "clark-y.dxf", outPath, datfile.Selig, &bytes.Buffer{})
	require.NoError(t, err)

	reportPath := filepath.Join(t.TempDir(), "clark-y.yaml")
	require.NoError(t, WriteReport(reportPath, res))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "label: clark-y")
	assert.Contains(t, content, "format: selig")
	assert.Contains(t, content, "upper_points: 3")
	assert.Contains(t, content, "lower_points: 3")
	assert.Contains(t, content, "chord_length: 1")
}

func TestBatch(t *testing.T) {
	// Batch walks real files, so exercise the directory handling with a
	// mix of ineligible and broken inputs.
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.dxf"), []byte("not a drawing"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	var log bytes.Buffer
	result, err := Batch(dir, outDir, datfile.Selig, &log)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Converted)
	assert.Equal(t, 1, result.Failed, "broken.dxf should fail, notes.txt ignored")
	assert.True(t, result.HasFailures())
	assert.Contains(t, log.String(), "failed:  broken")
	assert.Contains(t, log.String(), "Batch summary: 0 converted, 0 skipped, 1 failed (total: 1)")
}

func TestBatchSkipsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wing.dxf"), []byte("irrelevant"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "wing.dat"), []byte("existing"), 0o644))

	var log bytes.Buffer
	result, err := Batch(dir, outDir, datfile.Selig, &log)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.Contains(t, log.String(), "skipped: wing")
}

func TestBatchMissingDirectory(t *testing.T) {
	_, err := Batch(filepath.Join(t.TempDir(), "nope"), t.TempDir(), datfile.Selig, &bytes.Buffer{})
	require.Error(t, err)
}
