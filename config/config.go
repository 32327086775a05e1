// Package config reads proptab.toml configuration files.
//
// Configuration files are looked up in the given directory and in all of its parents.
// A file closer to the directory overrides the keys it defines and inherits the others.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of configuration files.
const FileName = "proptab.toml"

// Config is the configuration of the proptab command.
type Config struct {
	// Formulas with more variables are rejected, since their tables have 2^MaxVars rows.
	MaxVars int `toml:"max_vars"`
	// Color is one of "auto", "always" and "never".
	Color string `toml:"color"`
	// Format is the output format of tables, "text" or "yaml".
	Format string `toml:"format"`
	// Equivalence is the default method used to compare formulas: "table", "bdd" or "sat".
	Equivalence string `toml:"equivalence"`
}

// Default is the configuration used when no file is found.
var Default = Config{
	MaxVars:     16,
	Color:       "auto",
	Format:      "text",
	Equivalence: "table",
}

type config struct {
	cfg  Config
	meta toml.MetaData
}

func (cfg config) Merge(ocfg config) config {
	if ocfg.meta.IsDefined("max_vars") {
		cfg.cfg.MaxVars = ocfg.cfg.MaxVars
	}
	if ocfg.meta.IsDefined("color") {
		cfg.cfg.Color = ocfg.cfg.Color
	}
	if ocfg.meta.IsDefined("format") {
		cfg.cfg.Format = ocfg.cfg.Format
	}
	if ocfg.meta.IsDefined("equivalence") {
		cfg.cfg.Equivalence = ocfg.cfg.Equivalence
	}
	return cfg
}

// Validate checks every field of cfg holds an acceptable value.
func (cfg Config) Validate() error {
	if cfg.MaxVars < 0 || cfg.MaxVars > 26 {
		return fmt.Errorf("max_vars must be between 0 and 26, got %d", cfg.MaxVars)
	}
	if err := oneOf("color", cfg.Color, "auto", "always", "never"); err != nil {
		return err
	}
	if err := oneOf("format", cfg.Format, "text", "yaml"); err != nil {
		return err
	}
	return oneOf("equivalence", cfg.Equivalence, "table", "bdd", "sat")
}

func oneOf(key, val string, accepted ...string) error {
	for _, a := range accepted {
		if val == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for %s, expected one of %v", val, key, accepted)
}

func parseFile(path string) (config, error) {
	f, err := os.Open(path)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	var cfg Config
	meta, err := toml.DecodeReader(f, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("could not parse %q: %v", path, err)
	}
	return config{cfg, meta}, nil
}

// parseConfigs returns the configuration files found in dir and its parents, outermost first,
// preceded by the default configuration.
func parseConfigs(dir string) ([]config, error) {
	var out []config
	for dir != "" {
		conf, err := parseFile(filepath.Join(dir, FileName))
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			out = append(out, conf)
		}
		ndir := filepath.Dir(dir)
		if ndir == dir {
			break
		}
		dir = ndir
	}
	out = append(out, config{
		cfg:  Default,
		meta: toml.MetaData{}, // meta of the base config should never be accessed
	})
	for i := 0; i < len(out)/2; i++ {
		out[i], out[len(out)-1-i] = out[len(out)-1-i], out[i]
	}
	return out, nil
}

// Load returns the configuration applying to dir.
func Load(dir string) (Config, error) {
	confs, err := parseConfigs(dir)
	if err != nil {
		return Config{}, err
	}
	conf := confs[0]
	for _, oconf := range confs[1:] {
		conf = conf.Merge(oconf)
	}
	if err := conf.cfg.Validate(); err != nil {
		return Config{}, err
	}
	return conf.cfg, nil
}

// LoadFile returns the configuration in the given file, on top of the default one.
func LoadFile(path string) (Config, error) {
	conf, err := parseFile(path)
	if err != nil {
		return Config{}, err
	}
	base := config{cfg: Default}
	cfg := base.Merge(conf).cfg
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %q: %v", path, err)
	}
	return cfg, nil
}
