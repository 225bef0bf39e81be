// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dxfoil/internal/catalog"
	"github.com/pdiddy/dxfoil/internal/convert"
	"github.com/pdiddy/dxfoil/internal/datfile"
)

var convertCmd = &cobra.Command{
	Use:   "convert [drawing.dxf]",
	Short: "Convert a DXF airfoil drawing to a .dat point list",
	Long: `Convert extracts the polyline curves from a DXF drawing, classifies them
into upper and lower surfaces, normalizes them to a unit chord with the
leading edge at the origin, and writes a Selig or Lednicer .dat file.

With --batch the argument is a directory and every .dxf file in it is
converted; drawings whose output already exists are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output .dat path (default: input base name with .dat)")
	convertCmd.Flags().StringP("format", "f", "", "output layout: selig (s) or lednicer (l)")
	convertCmd.Flags().String("report", "", "also write a YAML conversion report to this path")
	convertCmd.Flags().Bool("batch", false, "treat the argument as a directory of .dxf files")
	convertCmd.Flags().String("out-dir", "", "output directory for batch conversions")
	convertCmd.Flags().Bool("no-catalog", false, "do not record the conversion in the catalog")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// The format selector is validated before anything is opened or
	// written, so an unsupported selector never touches the output path.
	selector, _ := cmd.Flags().GetString("format")
	if selector == "" {
		selector = cfg.Conversion.Format
	}
	format, err := datfile.ParseFormat(selector)
	if err != nil {
		return err
	}

	if batch, _ := cmd.Flags().GetBool("batch"); batch {
		return runConvertBatch(cmd, args[0], format)
	}

	dxfPath := args[0]
	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(dxfPath), filepath.Ext(dxfPath))
		outPath = filepath.Join(cfg.Conversion.OutputDir, base+".dat")
	} else if filepath.Ext(outPath) == "" {
		outPath += ".dat"
	}

	res, err := convert.File(dxfPath, outPath, format, os.Stdout)
	if err != nil {
		return err
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := convert.WriteReport(reportPath, res); err != nil {
			return err
		}
		fmt.Printf("report: %s\n", reportPath)
	}

	return recordConversions(cmd, []*convert.Result{res})
}

func runConvertBatch(cmd *cobra.Command, dir string, format datfile.Format) error {
	cfg := loadConfig()

	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = cfg.Conversion.OutputDir
	}

	result, err := convert.Batch(dir, outDir, format, os.Stdout)
	if err != nil {
		return err
	}
	if err := recordConversions(cmd, result.Results); err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d drawing(s) failed conversion", result.Failed)
	}
	return nil
}

// recordConversions writes successful conversions to the catalog unless it
// is disabled by config or flag. Catalog failures are reported but do not
// fail a conversion that already produced its output file.
func recordConversions(cmd *cobra.Command, results []*convert.Result) error {
	cfg := loadConfig()
	if noCatalog, _ := cmd.Flags().GetBool("no-catalog"); noCatalog || !cfg.Catalog.Enabled {
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	store, err := catalog.Open(cfg.Catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: catalog unavailable: %v\n", err)
		return nil
	}
	defer store.Close()

	for _, res := range results {
		entry := catalog.Entry{
			Label:       res.Label,
			SourcePath:  res.SourcePath,
			OutputPath:  res.OutputPath,
			Format:      string(res.Format),
			ChordLength: res.Airfoil.ChordLength,
			UpperPoints: len(res.Airfoil.Upper),
			LowerPoints: len(res.Airfoil.Lower),
			ConvertedAt: res.ConvertedAt,
		}
		if err := store.Record(context.Background(), entry); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return nil
}
