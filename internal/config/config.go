// Package config holds the solver settings and loads them from an optional
// HCL file. The vault layout itself is fixed and never configurable.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vinser/orbvault/internal/logging"
	"github.com/vinser/orbvault/internal/search"
)

// Config is the resolved set of solver settings.
type Config struct {
	MaxDepth  int    // depth ceiling, 0 = unbounded
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
	Trace     bool   // print orb arithmetic per step
	Map       bool   // print the vault map with the route
	TUI       bool   // run the interactive view
	About     bool   // print the puzzle description and exit
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MaxDepth:  search.DefaultMaxDepth,
		LogLevel:  "warn",
		LogFormat: logging.FormatText,
	}
}

// Validate checks settings that cannot be checked while decoding.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}

// File mirrors the HCL config file. Every block and attribute is optional;
// nil means "not set".
type File struct {
	Search *SearchBlock `hcl:"search,block"`
	Log    *LogBlock    `hcl:"log,block"`
	Output *OutputBlock `hcl:"output,block"`
}

type SearchBlock struct {
	MaxDepth *int `hcl:"max_depth,optional"`
}

type LogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type OutputBlock struct {
	Trace *bool `hcl:"trace,optional"`
	Map   *bool `hcl:"map,optional"`
}

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Load parses the HCL file at path.
func Load(path string) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("error accessing config %s: %w", path, err)
	}
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	return decode(f, diags, path)
}

// Parse decodes HCL source; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*File, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	return decode(f, diags, filename)
}

func decode(f *hcl.File, diags hcl.Diagnostics, name string) (*File, error) {
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", name, diags)
	}
	var file File
	if diags := gohcl.DecodeBody(f.Body, nil, &file); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", name, diags)
	}
	return &file, nil
}

// ApplyTo overrides the fields of c that the file sets.
func (f *File) ApplyTo(c *Config) {
	if f.Search != nil && f.Search.MaxDepth != nil {
		c.MaxDepth = *f.Search.MaxDepth
	}
	if f.Log != nil {
		if f.Log.Level != nil {
			c.LogLevel = *f.Log.Level
		}
		if f.Log.Format != nil {
			c.LogFormat = *f.Log.Format
		}
	}
	if f.Output != nil {
		if f.Output.Trace != nil {
			c.Trace = *f.Output.Trace
		}
		if f.Output.Map != nil {
			c.Map = *f.Output.Map
		}
	}
}
