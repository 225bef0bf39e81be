// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dxfoil/internal/extract"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [drawing.dxf]",
	Short: "List the polyline curves found in a DXF drawing",
	Long: `Inspect opens a DXF drawing and lists every polyline curve it would feed
into a conversion: vertex count, mean y, and bounding box. Useful for
checking that a drawing contains only the airfoil outline before
converting it.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := extract.Open(args[0])
	if err != nil {
		return err
	}

	curves := extract.Curves(doc)
	if len(curves) == 0 {
		fmt.Println("no polyline curves found")
		return nil
	}

	for i, c := range curves {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range c {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
		fmt.Printf("curve %d: %d vertices, mean y %.4f, bbox (%.3f,%.3f)-(%.3f,%.3f)\n",
			i+1, len(c), c.MeanY(), minX, minY, maxX, maxY)
	}

	switch len(curves) {
	case 1:
		fmt.Println("1 curve: will be split at its minimum-x vertex")
	case 2:
		fmt.Println("2 curves: higher mean y becomes the upper surface")
	default:
		fmt.Printf("%d curves: conversion will fail (expected 1 or 2)\n", len(curves))
	}
	return nil
}
