package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// Config is the optional TOML configuration. Flags override its values.
//
//	plate_size = 384
//	seed = 42
//	excluded = "A1:A24, P1:P24"
//	log_level = "debug"
//	hide_labels = true
type Config struct {
	PlateSize  int    `toml:"plate_size"`
	Seed       uint64 `toml:"seed"`        // 0 picks a random seed per run
	Excluded   string `toml:"excluded"`    // range label, e.g. "A1:A12, H1"
	LogLevel   string `toml:"log_level"`   // debug, info, warn or error
	HideLabels bool   `toml:"hide_labels"` // show: hide row and column labels
}

// WithDefaults returns a copy of cfg with zero fields filled in.
func (cfg Config) WithDefaults() Config {
	out := cfg
	if out.PlateSize == 0 {
		out.PlateSize = int(plate.Size96)
	}
	if out.LogLevel == "" {
		out.LogLevel = "info"
	}
	return out
}

// Validate checks the plate size, log level and excluded range.
func (cfg Config) Validate() error {
	size := plate.Size(cfg.PlateSize)
	if _, err := plate.Dimensions(size); err != nil {
		return err
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid log_level %q", cfg.LogLevel)
	}
	if _, err := plate.ParseLabelRange(cfg.Excluded, size); err != nil {
		return errors.Wrap(errors.GetCode(err), err, "invalid excluded wells")
	}
	return nil
}

// ExcludedWells expands the excluded range for the configured plate size.
func (cfg Config) ExcludedWells() ([]int, error) {
	return plate.ParseLabelRange(cfg.Excluded, plate.Size(cfg.PlateSize))
}

// loadConfig reads the config at path. An empty path means the default
// location, where a missing file is not an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return Config{}.WithDefaults(), nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return Config{}.WithDefaults(), nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg.WithDefaults(), nil
}
