// Package config loads the YAML configuration of the dsprep command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dataset/dataio"
	"github.com/cwbudde/algo-dataset/normalize"
	"github.com/cwbudde/algo-dataset/split"
)

// Config holds all settings of one assembly run.
type Config struct {
	Debug           bool             `yaml:"debug"`
	FileType        dataio.Kind      `yaml:"file_type"`
	Classes         []string         `yaml:"classes"`
	Split           SplitConfig      `yaml:"split"`
	Policy          normalize.Policy `yaml:"policy"`
	FeatureShape    []int            `yaml:"feature_shape"`
	SamplesPerClass int              `yaml:"samples_per_class"`
	Workers         int              `yaml:"workers"`
	Spectrum        SpectrumConfig   `yaml:"spectrum"`
	Output          OutputConfig     `yaml:"output"`
	BatchSize       int              `yaml:"batch_size"`
	Seed            int64            `yaml:"seed"`
}

// SplitConfig selects the cut points. At most one field may be set; an
// empty SplitConfig yields a single partition.
type SplitConfig struct {
	Cuts      []int     `yaml:"cuts"`
	Half      bool      `yaml:"half"`
	Fractions []float64 `yaml:"fractions"`
}

// SpectrumConfig enables the magnitude-spectrum feature transform.
type SpectrumConfig struct {
	Enabled bool `yaml:"enabled"`
	Hann    bool `yaml:"hann"`
	Size    int  `yaml:"size"`
}

// OutputConfig sets where and how assembled partitions are written.
type OutputConfig struct {
	Dir    string      `yaml:"dir"`
	Format dataio.Kind `yaml:"format"`
}

// Load reads and parses the config file at path, applies defaults, expands
// paths relative to the config directory and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	for i := range cfg.Classes {
		cfg.Classes[i] = expandPath(cfg.Classes[i], configDir)
	}
	cfg.Output.Dir = expandPath(cfg.Output.Dir, configDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports every inconsistent setting.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Classes) == 0 {
		errs = append(errs, errors.New("config: classes must list at least one file"))
	}

	set := 0
	if len(c.Split.Cuts) > 0 {
		set++
	}
	if c.Split.Half {
		set++
	}
	if len(c.Split.Fractions) > 0 {
		set++
	}
	if set > 1 {
		errs = append(errs, errors.New("config: split accepts only one of cuts, half, fractions"))
	}

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("config: workers must be >= 1, got %d", c.Workers))
	}
	if c.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("config: batch_size must be >= 0, got %d", c.BatchSize))
	}
	switch c.Output.Format {
	case dataio.KindText, dataio.KindBinary, dataio.KindTable:
	default:
		errs = append(errs, fmt.Errorf("config: output.format must be text, binary or table, got %s", c.Output.Format))
	}
	if c.FileType == dataio.KindUnknown {
		errs = append(errs, errors.New("config: file_type unknown has no loader"))
	}

	return errors.Join(errs...)
}

// Resolve returns the cut points for classes of the given length.
func (s SplitConfig) Resolve(length int) (split.Cuts, error) {
	switch {
	case s.Half:
		return split.Half(), nil
	case len(s.Fractions) > 0:
		return split.Fractions(length, s.Fractions...)
	default:
		return split.Points(s.Cuts...), nil
	}
}

// expandPath converts a path to absolute. "~/" paths are relative to the
// home directory; other relative paths are relative to configDir.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return filepath.Join(configDir, path)
}
