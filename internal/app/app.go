// Package app wires the command line, config, logging and the solver.
package app

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/vinser/orbvault/internal/config"
	"github.com/vinser/orbvault/internal/flags"
	"github.com/vinser/orbvault/internal/logging"
	"github.com/vinser/orbvault/internal/model/about"
	"github.com/vinser/orbvault/internal/model/solve"
	"github.com/vinser/orbvault/internal/report"
	"github.com/vinser/orbvault/internal/search"
)

// aboutWidth is the wrap width of the printed about page.
const aboutWidth = 80

// Run parses args and does what they ask for. Report output goes to stdout,
// usage text and logs go to stderr.
func Run(name string, args []string, stdout, stderr io.Writer) error {
	fl, err := flags.Parse(name, args, stderr)
	if err != nil {
		return err
	}
	if fl == nil {
		return nil // help was printed
	}
	cfg, err := fl.Resolve()
	if err != nil {
		return err
	}

	logOut := stderr
	if cfg.TUI {
		// Log lines would tear the alternate screen.
		logOut = io.Discard
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return &flags.ExitError{Code: 2, Message: err.Error()}
	}
	logger.WithFields(log.Fields{
		"max_depth": cfg.MaxDepth,
		"trace":     cfg.Trace,
		"map":       cfg.Map,
		"tui":       cfg.TUI,
	}).Debug("configuration resolved")

	switch {
	case cfg.About:
		_, err := fmt.Fprint(stdout, about.Render(aboutWidth, ""))
		return err
	case cfg.TUI:
		return runTUI(cfg, logger)
	}
	return Solve(stdout, cfg, logger)
}

// Solve searches the vault, announcing each depth on w, then writes the
// solution and the optional trace and map.
func Solve(w io.Writer, cfg config.Config, logger log.FieldLogger) error {
	d := search.NewDriver(cfg.MaxDepth, logger)
	var werr error
	d.OnDepth = func(depth int) {
		if werr == nil {
			werr = report.Progress(w, depth)
		}
	}

	res, err := d.Solve()
	if werr != nil {
		return werr
	}
	if err != nil {
		logger.WithField("frontiers", d.Stats().FrontierSizes).Warn("search gave up")
		return err
	}
	logger.WithFields(log.Fields{
		"depth":     res.Stats.Depth,
		"evaluated": res.Stats.Evaluated,
	}).Info("search finished")

	if err := report.Solution(w, res.Path); err != nil {
		return err
	}
	if cfg.Trace {
		fmt.Fprintln(w)
		if err := report.Trace(w, res.Path); err != nil {
			return err
		}
	}
	if cfg.Map {
		if _, err := fmt.Fprintf(w, "\n%s\n", report.Map(res.Path)); err != nil {
			return err
		}
	}
	return nil
}

func runTUI(cfg config.Config, logger log.FieldLogger) error {
	p := tea.NewProgram(solve.New(search.NewDriver(cfg.MaxDepth, logger), cfg.Trace), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(solve.Model); ok {
		return m.Err()
	}
	return nil
}
