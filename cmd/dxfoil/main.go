// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dxfoil CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dxfoil/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dxfoil CLI.
var rootCmd = &cobra.Command{
	Use:   "dxfoil",
	Short: "Convert DXF airfoil drawings to .dat point lists",
	Long: `dxfoil converts a 2D airfoil outline drawn as one or two polylines in a
DXF file into a normalized point-list .dat file for airfoil-analysis tools.

The drawing may contain either two polylines (upper and lower surface) or a
single closed polyline running through the leading edge. Points are
normalized to a unit chord with the leading edge at the origin; the actual
trailing-edge geometry is preserved rather than forced onto the axis.
Output is written in Selig (XFOIL) or Lednicer (XFLR5) layout.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dxfoil.yaml or ~/.config/dxfoil/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dxfoil")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dxfoil"))
		}
	}

	viper.SetEnvPrefix("DXFOIL")
	viper.AutomaticEnv()

	viper.SetDefault("conversion.format", "selig")
	viper.SetDefault("conversion.output_dir", ".")
	viper.SetDefault("catalog.enabled", true)
	viper.SetDefault("catalog.dir", "catalog")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the typed configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		Conversion: types.ConversionConfig{
			Format:    viper.GetString("conversion.format"),
			OutputDir: viper.GetString("conversion.output_dir"),
		},
		Catalog: types.CatalogConfig{
			Enabled: viper.GetBool("catalog.enabled"),
			Dir:     viper.GetString("catalog.dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
