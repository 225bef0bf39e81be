// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the YAML conversion record written next to the output file on
// request. It duplicates the operator summary in machine-readable form.
type Report struct {
	Label       string     `yaml:"label"`
	Source      string     `yaml:"source"`
	Output      string     `yaml:"output"`
	Format      string     `yaml:"format"`
	ChordLength float64    `yaml:"chord_length"`
	UpperPoints int        `yaml:"upper_points"`
	LowerPoints int        `yaml:"lower_points"`
	LeadingEdge [2]float64 `yaml:"leading_edge"`
	UpperTE     [2]float64 `yaml:"upper_trailing_edge"`
	LowerTE     [2]float64 `yaml:"lower_trailing_edge"`
	ConvertedAt time.Time  `yaml:"converted_at"`
}

// NewReport builds a Report from a conversion result.
func NewReport(res *Result) Report {
	foil := res.Airfoil
	return Report{
		Label:       res.Label,
		Source:      res.SourcePath,
		Output:      res.OutputPath,
		Format:      string(res.Format),
		ChordLength: foil.ChordLength,
		UpperPoints: len(foil.Upper),
		LowerPoints: len(foil.Lower),
		LeadingEdge: [2]float64{0, 0},
		UpperTE:     [2]float64{foil.UpperTE.X, foil.UpperTE.Y},
		LowerTE:     [2]float64{foil.LowerTE.X, foil.LowerTE.Y},
		ConvertedAt: res.ConvertedAt,
	}
}

// WriteReport writes the YAML report for res to path.
func WriteReport(path string, res *Result) error {
	data, err := yaml.Marshal(NewReport(res))
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
