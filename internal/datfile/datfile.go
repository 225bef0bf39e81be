// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package datfile serializes a normalized airfoil into the two point-list
// text layouts consumed by airfoil-analysis tools: Selig (XFOIL) and
// Lednicer (XFLR5).
package datfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/dxfoil/pkg/types"
)

// Format selects the output layout.
type Format string

const (
	// Selig is a single continuous loop: trailing edge, upper surface,
	// leading edge, lower surface, trailing edge.
	Selig Format = "selig"

	// Lednicer lists the surfaces separately, each leading edge to
	// trailing edge, under a point-count header.
	Lednicer Format = "lednicer"
)

// ParseFormat maps a selector string to a Format. Matching is
// case-insensitive and accepts the single-letter aliases "s" and "l";
// the empty selector defaults to Selig. Anything else is an
// ErrUnsupportedFormat failure.
func ParseFormat(selector string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "", "selig", "s":
		return Selig, nil
	case "lednicer", "l":
		return Lednicer, nil
	default:
		return "", fmt.Errorf("%w: %q (want selig or lednicer)",
			types.ErrUnsupportedFormat, selector)
	}
}

// Label derives the airfoil label from an output path: the base name
// without its extension.
func Label(outPath string) string {
	base := filepath.Base(outPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// pointLine is the fixed numeric layout shared by both formats: two
// six-decimal fields, each preceded by two spaces.
const pointLine = "  %.6f  %.6f\n"

// Write serializes foil to w in the given format. The airfoil must already
// carry canonical ordering (upper TE→LE, lower LE→TE).
func Write(w io.Writer, foil types.NormalizedAirfoil, label string, format Format) error {
	bw := bufio.NewWriter(w)

	switch format {
	case Selig:
		writeSelig(bw, foil, label)
	case Lednicer:
		writeLednicer(bw, foil, label)
	default:
		return fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrIO, err)
	}
	return nil
}

// writeSelig emits the label, then one continuous loop: upper TE→LE
// followed by lower LE→TE with the lower surface's first point dropped,
// because both surfaces hold the leading edge and the duplicate is elided
// exactly once.
func writeSelig(w *bufio.Writer, foil types.NormalizedAirfoil, label string) {
	fmt.Fprintf(w, "%s\n", label)
	for _, p := range foil.Upper {
		fmt.Fprintf(w, pointLine, p.X, p.Y)
	}
	lower := foil.Lower
	if len(lower) > 0 {
		lower = lower[1:]
	}
	for _, p := range lower {
		fmt.Fprintf(w, pointLine, p.X, p.Y)
	}
}

// writeLednicer emits the uppercased label with the AIRFOIL suffix, the
// per-surface point counts as float-styled integers, then each surface
// LE→TE separated by blank lines. The upper surface is stored TE→LE, so it
// is walked in reverse.
func writeLednicer(w *bufio.Writer, foil types.NormalizedAirfoil, label string) {
	fmt.Fprintf(w, "%s AIRFOIL\n", strings.ToUpper(label))
	fmt.Fprintf(w, "       %d.       %d.\n\n", len(foil.Upper), len(foil.Lower))

	for i := len(foil.Upper) - 1; i >= 0; i-- {
		fmt.Fprintf(w, pointLine, foil.Upper[i].X, foil.Upper[i].Y)
	}
	fmt.Fprintln(w)
	for _, p := range foil.Lower {
		fmt.Fprintf(w, pointLine, p.X, p.Y)
	}
}

// WriteFile serializes foil to path, overwriting an existing file. The
// format is validated before the file is created or truncated, so an
// unsupported format leaves the output path untouched. The file is closed
// on every exit path; close and write failures surface as the ErrIO kind.
func WriteFile(path string, foil types.NormalizedAirfoil, format Format) error {
	switch format {
	case Selig, Lednicer:
	default:
		return fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrIO, path, err)
	}

	if err := Write(f, foil, Label(path), format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", types.ErrIO, path, err)
	}
	return nil
}
