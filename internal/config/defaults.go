package config

import "github.com/cwbudde/algo-dataset/dataio"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "out"
	}
	if cfg.Output.Format == dataio.KindAuto {
		cfg.Output.Format = dataio.KindBinary
	}
}
