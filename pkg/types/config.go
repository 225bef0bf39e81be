package types

// ConversionConfig holds defaults for the convert stage.
type ConversionConfig struct {
	// Format is the default output layout: "selig" or "lednicer"
	// (single-letter aliases accepted).
	Format string `json:"format" yaml:"format"`

	// OutputDir is where batch conversions place .dat files (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// Enabled controls whether successful conversions are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the catalog database (default "catalog").
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups all stage configurations.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
}
