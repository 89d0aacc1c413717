package flags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vinser/orbvault/internal/config"
)

// ExitError carries the process exit code for a command-line problem.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Flags stores the parsed command-line options
type Flags struct {
	MaxDepth  int
	Config    string
	LogLevel  string
	LogFormat string
	Trace     bool
	Map       bool
	TUI       bool
	About     bool

	fsv *FlagSetWithVisit
}

// Parse parses command-line arguments. It returns nil flags and a nil error
// when help was requested and the program should exit cleanly.
func Parse(name string, args []string, output io.Writer) (*Flags, error) {
	f := &Flags{}
	def := config.Default()

	fsv := NewFlagSetWithVisit(name, output)
	fsv.IntVar(&f.MaxDepth, "max-depth", "d", def.MaxDepth, "Give up after paths of this many steps, 0 searches forever")
	fsv.StringVar(&f.Config, "config", "c", "", "Path to an HCL config file")
	fsv.StringVar(&f.LogLevel, "log-level", "l", def.LogLevel, "Log level: debug, info, warn or error")
	fsv.StringVar(&f.LogFormat, "log-format", "", def.LogFormat, "Log format: text or json")
	fsv.BoolVar(&f.Trace, "trace", "t", false, "Print how the orb weight changes on every step")
	fsv.BoolVar(&f.Map, "map", "m", false, "Print the vault map with the route taken")
	fsv.BoolVar(&f.TUI, "tui", "", false, "Run the interactive view")
	fsv.BoolVar(&f.About, "about", "a", false, "Describe the vault puzzle and exit")

	if err := fsv.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	if rest := fsv.Args(); len(rest) > 0 {
		fsv.Usage()
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(rest, " "))}
	}

	f.LogLevel = strings.ToLower(f.LogLevel)
	switch f.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log level: %s. Use 'debug', 'info', 'warn' or 'error'", f.LogLevel)}
	}
	f.LogFormat = strings.ToLower(f.LogFormat)
	if f.MaxDepth < 0 {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid max depth: %d", f.MaxDepth)}
	}

	f.fsv = fsv
	return f, nil
}

// Resolve builds the effective settings: defaults, then the config file if
// one was given, then every flag set explicitly on the command line.
func (f *Flags) Resolve() (config.Config, error) {
	c := config.Default()
	if f.Config != "" {
		file, err := config.Load(f.Config)
		if err != nil {
			return c, err
		}
		file.ApplyTo(&c)
	}
	f.ApplyTo(&c)
	if err := c.Validate(); err != nil {
		return c, &ExitError{Code: 2, Message: err.Error()}
	}
	return c, nil
}

// ApplyTo copies the explicitly set flags into c.
func (f *Flags) ApplyTo(c *config.Config) {
	set := func(name string) bool { return f.fsv != nil && f.fsv.IsCustom(name) }
	if set("max-depth") {
		c.MaxDepth = f.MaxDepth
	}
	if set("log-level") {
		c.LogLevel = f.LogLevel
	}
	if set("log-format") {
		c.LogFormat = f.LogFormat
	}
	if set("trace") {
		c.Trace = f.Trace
	}
	if set("map") {
		c.Map = f.Map
	}
	c.TUI = f.TUI
	c.About = f.About
}
