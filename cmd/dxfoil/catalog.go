// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dxfoil/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the record of past conversions",
	Long: `Catalog manages the local SQLite record of past conversions. Use
subcommands to list recent conversions or export the full catalog as YAML.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversions, newest first",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(loadConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("catalog is empty")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-20s %-8s %3d+%3d pts  chord %-10g %s\n",
			e.ConvertedAt.Format("2006-01-02 15:04"),
			e.Label, e.Format, e.UpperPoints, e.LowerPoints,
			e.ChordLength, e.OutputPath)
	}
	return nil
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full catalog as YAML to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.Open(loadConfig().Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		return store.Export(context.Background(), os.Stdout)
	},
}

func init() {
	catalogListCmd.Flags().Int("limit", 20, "maximum number of entries to list")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
