package workload

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/tabgo"
	"github.com/hupe1980/tabgo/table"
)

// Config holds the parameters of one workload run.
type Config struct {
	// Seed seeds both the data generator and the query threshold stream
	Seed int64 `json:"seed" yaml:"seed"`

	// Rows is the number of rows to generate and load
	Rows int `json:"rows" yaml:"rows"`

	// Cols is the number of columns to generate (at least 4)
	Cols int `json:"cols" yaml:"cols"`

	// Queries is the number of query mix iterations to run
	Queries int `json:"queries" yaml:"queries"`

	// MaxValue is the exclusive upper bound on generated cells and query
	// thresholds
	MaxValue int32 `json:"max_value" yaml:"max_value"`

	// Variant selects the storage variant: rowmajor, indexed, columnar
	Variant string `json:"variant" yaml:"variant"`

	// IndexColumn is the column the indexed variant puts its ordered
	// index on
	IndexColumn int `json:"index_column" yaml:"index_column"`
}

// DefaultConfig returns the shipped narrow workload: five columns, three
// million rows, twenty query mix iterations.
func DefaultConfig() *Config {
	return &Config{
		Seed:        1,
		Rows:        3_000_000,
		Cols:        5,
		Queries:     20,
		MaxValue:    1024,
		Variant:     tabgo.VariantColumnar,
		IndexColumn: 0,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Variant {
	case tabgo.VariantRowMajor, tabgo.VariantIndexed, tabgo.VariantColumnar:
		// Valid variants
	default:
		return fmt.Errorf("invalid variant: %s (must be rowmajor, indexed, or columnar)", c.Variant)
	}

	if c.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", c.Rows)
	}

	if c.Cols < table.MinColumns {
		return fmt.Errorf("cols must be at least %d, got %d", table.MinColumns, c.Cols)
	}

	if c.Queries <= 0 {
		return fmt.Errorf("queries must be positive, got %d", c.Queries)
	}

	if c.MaxValue <= 0 {
		return fmt.Errorf("max_value must be positive, got %d", c.MaxValue)
	}

	if c.IndexColumn < 0 || c.IndexColumn >= c.Cols {
		return fmt.Errorf("index_column must be in [0, %d), got %d", c.Cols, c.IndexColumn)
	}

	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file. Fields absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// ApplyEnv overlays configuration from environment variables.
// Environment variables use the TABGO_ prefix.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("TABGO_SEED"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Seed)
	}
	if v := os.Getenv("TABGO_ROWS"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Rows)
	}
	if v := os.Getenv("TABGO_COLS"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Cols)
	}
	if v := os.Getenv("TABGO_QUERIES"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Queries)
	}
	if v := os.Getenv("TABGO_MAX_VALUE"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.MaxValue)
	}
	if v := os.Getenv("TABGO_VARIANT"); v != "" {
		cfg.Variant = v
	}
	if v := os.Getenv("TABGO_INDEX_COLUMN"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.IndexColumn)
	}
}
