// Package config loads the demo harness settings.
//
// Sources, lowest precedence first: Default, an optional YAML file, then
// SOLID_* environment variables. Command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/solid/demo"
)

// VariantBoth selects the bad and the good snippet of each principle.
const VariantBoth = "both"

// Config selects which snippets run and how the harness logs.
type Config struct {
	Principles  []string `yaml:"principles"`
	Variant     string   `yaml:"variant"`
	Headers     bool     `yaml:"headers"`
	LogLevel    string   `yaml:"log_level"`
	LogFile     string   `yaml:"log_file"`
	Development bool     `yaml:"development"`
}

// Default runs every Good snippet with headers and warn-level logging.
func Default() Config {
	return Config{
		Variant:  string(demo.Good),
		Headers:  true,
		LogLevel: "warn",
	}
}

// Load returns Default overlaid with path (if non-empty) and the environment.
//
// The result is not validated: callers apply their own overrides (flags)
// first and then call Validate or Keys.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

// LoadFromEnv is Load without a file.
func LoadFromEnv() (Config, error) { return Load("") }

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("SOLID_PRINCIPLES"); v != "" {
		c.Principles = SplitList(v)
	}
	if v := getenv("SOLID_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := getenv("SOLID_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("SOLID_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if getenv("SOLID_ENV") == "development" {
		c.Development = true
	}
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks principle and variant names.
func (c Config) Validate() error {
	if _, err := c.SelectedPrinciples(); err != nil {
		return err
	}
	if _, err := c.SelectedVariants(); err != nil {
		return err
	}
	return nil
}

// SelectedPrinciples parses Principles; an empty list means all of them.
func (c Config) SelectedPrinciples() ([]demo.Principle, error) {
	if len(c.Principles) == 0 {
		return demo.Principles, nil
	}
	out := make([]demo.Principle, 0, len(c.Principles))
	for _, name := range c.Principles {
		p, err := demo.ParsePrinciple(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// SelectedVariants parses Variant, accepting VariantBoth.
func (c Config) SelectedVariants() ([]demo.Variant, error) {
	if strings.EqualFold(strings.TrimSpace(c.Variant), VariantBoth) {
		return demo.Variants, nil
	}
	v, err := demo.ParseVariant(c.Variant)
	if err != nil {
		return nil, err
	}
	return []demo.Variant{v}, nil
}

// Keys is the ordered selection of snippets to run.
func (c Config) Keys() ([]demo.Key, error) {
	ps, err := c.SelectedPrinciples()
	if err != nil {
		return nil, err
	}
	vs, err := c.SelectedVariants()
	if err != nil {
		return nil, err
	}
	return demo.Keys(ps, vs), nil
}
