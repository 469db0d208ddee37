package blend

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config gathers every knob of a blending run. It is constructed once at the
// boundary (defaults, then optional TOML file, then command-line flags) and
// passed by value into the pipeline, never mutated during a run.
type Config struct {
	// Dir is the folder holding one .xlsx or .csv file per fund.
	Dir string `toml:"dir"`
	// Sheet selects the sheet to read inside spreadsheet files.
	// Empty means the first sheet.
	Sheet string `toml:"sheet"`
	// CodeColumn is the header of the security code column.
	CodeColumn string `toml:"code_column"`
	// WeightColumn is the header of the weight-within-fund column.
	WeightColumn string `toml:"weight_column"`
	// Scheme is the cross-fund weighting policy.
	Scheme WeightingScheme `toml:"scheme"`
	// Output is the path of the resulting CSV file.
	Output string `toml:"output"`
	// TopN is the number of leading rows echoed to the console.
	TopN int `toml:"top"`
	// Pct also emits a total_weight_pct convenience column.
	Pct bool `toml:"pct"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Dir:          ".",
		CodeColumn:   "code",
		WeightColumn: "weight",
		Scheme:       WeightingScheme{Kind: SchemeEqual},
		Output:       "portfolio_weights.csv",
		TopN:         20,
		Pct:          true,
	}
}

// LoadConfig reads a TOML configuration file on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	return cfg, nil
}
