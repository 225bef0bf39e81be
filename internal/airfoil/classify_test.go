// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airfoil

import (
	"errors"
	"strings"
	"testing"

	"honnef.co/go/curve"

	"github.com/pdiddy/dxfoil/pkg/types"
)

func TestClassifyTwoCurvesByMeanY(t *testing.T) {
	upper := types.Curve{curve.Pt(0, 0), curve.Pt(0.5, 0.05), curve.Pt(1, 0)}
	lower := types.Curve{curve.Pt(0, 0), curve.Pt(0.5, -0.05), curve.Pt(1, 0)}

	// The higher-mean-y curve wins regardless of document order.
	for name, input := range map[string][]types.Curve{
		"upper first": {upper, lower},
		"lower first": {lower, upper},
	} {
		t.Run(name, func(t *testing.T) {
			pair, err := Classify(input)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if pair.Upper.MeanY() <= pair.Lower.MeanY() {
				t.Errorf("upper mean y %g not above lower mean y %g",
					pair.Upper.MeanY(), pair.Lower.MeanY())
			}
			if pair.Upper[1].Y != 0.05 {
				t.Errorf("upper = %v, want the positive-camber curve", pair.Upper)
			}
		})
	}
}

func TestClassifyTwoCurvesMeanYTie(t *testing.T) {
	// Mean-y ties are an accepted ambiguity: the assignment must be a
	// permutation of the input, but which curve wins is not asserted.
	a := types.Curve{curve.Pt(0, 1), curve.Pt(1, -1)}
	b := types.Curve{curve.Pt(0, -1), curve.Pt(1, 1)}

	pair, err := Classify([]types.Curve{a, b})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	gotA := len(pair.Upper) == 2 && pair.Upper[0] == a[0]
	gotB := len(pair.Upper) == 2 && pair.Upper[0] == b[0]
	if !gotA && !gotB {
		t.Errorf("upper = %v, want one of the two input curves", pair.Upper)
	}
}

func TestClassifySingleCurveSplitsAtLeadingEdge(t *testing.T) {
	// Closed loop: TE, upper surface, LE, lower surface, back toward TE.
	loop := types.Curve{
		curve.Pt(1, 0.001),
		curve.Pt(0.5, 0.05),
		curve.Pt(0, 0),
		curve.Pt(0.5, -0.05),
		curve.Pt(1, -0.001),
	}

	pair, err := Classify([]types.Curve{loop})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if len(pair.Upper) != 3 {
		t.Fatalf("len(upper) = %d, want 3", len(pair.Upper))
	}
	if len(pair.Lower) != 3 {
		t.Fatalf("len(lower) = %d, want 3", len(pair.Lower))
	}

	// The surfaces share exactly the leading-edge vertex.
	le := curve.Pt(0, 0)
	if pair.Upper[len(pair.Upper)-1] != le {
		t.Errorf("upper does not end at the leading edge: %v", pair.Upper)
	}
	if pair.Lower[0] != le {
		t.Errorf("lower does not start at the leading edge: %v", pair.Lower)
	}
	shared := 0
	for _, up := range pair.Upper {
		for _, lp := range pair.Lower {
			if up == lp {
				shared++
			}
		}
	}
	if shared != 1 {
		t.Errorf("surfaces share %d points, want exactly 1", shared)
	}
}

func TestClassifySingleCurveMinXTieFirstOccurrence(t *testing.T) {
	c := types.Curve{
		curve.Pt(1, 0),
		curve.Pt(0, 0.01),
		curve.Pt(0.5, 0.02),
		curve.Pt(0, -0.01),
		curve.Pt(1, 0),
	}

	pair, err := Classify([]types.Curve{c})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	// First occurrence of the minimum x (index 1) is the split point.
	if len(pair.Upper) != 2 {
		t.Errorf("len(upper) = %d, want 2 (split at first min-x vertex)", len(pair.Upper))
	}
}

func TestClassifyWrongCurveCount(t *testing.T) {
	for _, count := range []int{0, 3, 5} {
		curves := make([]types.Curve, count)
		for i := range curves {
			curves[i] = types.Curve{curve.Pt(0, 0), curve.Pt(1, 0)}
		}

		_, err := Classify(curves)
		if !errors.Is(err, types.ErrShape) {
			t.Errorf("Classify with %d curves: err = %v, want ErrShape kind", count, err)
		}
		if err == nil || !strings.Contains(err.Error(), "expected 1 or 2 curves") {
			t.Errorf("Classify with %d curves: message %q missing count context", count, err)
		}
	}
}
