package flags

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/orbvault/internal/config"
)

func TestParseResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want config.Config
	}{
		{
			name: "no arguments",
			args: nil,
			want: config.Default(),
		},
		{
			name: "long flags",
			args: []string{"-max-depth=6", "-log-level=DEBUG", "-log-format=json", "-trace", "-map"},
			want: config.Config{MaxDepth: 6, LogLevel: "debug", LogFormat: "json", Trace: true, Map: true},
		},
		{
			name: "short aliases",
			args: []string{"-d", "5", "-l=info", "-t", "-m"},
			want: config.Config{MaxDepth: 5, LogLevel: "info", LogFormat: "text", Trace: true, Map: true},
		},
		{
			name: "double dash forms",
			args: []string{"--max-depth=0", "--tui", "--a"},
			want: config.Config{MaxDepth: 0, LogLevel: "warn", LogFormat: "text", TUI: true, About: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			f, err := Parse("orbvault", tc.args, &out)
			require.NoError(t, err)
			require.NotNil(t, f)

			got, err := f.Resolve()
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	f, err := Parse("orbvault", []string{"-h"}, &out)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Contains(t, out.String(), "Usage of orbvault:")
	assert.Contains(t, out.String(), "-d, -max-depth")
	assert.Contains(t, out.String(), "(default 32)")
	assert.Contains(t, out.String(), "      -tui")
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-fast"}, "flag provided but not defined: -fast"},
		{"bad level", []string{"-l", "loud"}, "invalid log level: loud. Use 'debug', 'info', 'warn' or 'error'"},
		{"negative depth", []string{"-d=-1"}, "invalid max depth: -1"},
		{"positional", []string{"north"}, "unexpected arguments: north"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("orbvault", tc.args, &bytes.Buffer{})
			require.Error(t, err)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Equal(t, tc.wantMsg, exitErr.Message)
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbvault.hcl")
	src := `
search {
  max_depth = 6
}
log {
  format = "json"
}
output {
  trace = true
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	f, err := Parse("orbvault", []string{"-c", path, "-d", "9"}, &bytes.Buffer{})
	require.NoError(t, err)
	got, err := f.Resolve()
	require.NoError(t, err)

	want := config.Config{MaxDepth: 9, LogLevel: "warn", LogFormat: "json", Trace: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveErrors(t *testing.T) {
	f, err := Parse("orbvault", []string{"-c", filepath.Join(t.TempDir(), "missing.hcl")}, &bytes.Buffer{})
	require.NoError(t, err)
	_, err = f.Resolve()
	assert.True(t, errors.Is(err, config.ErrNotFound))

	f, err = Parse("orbvault", []string{"-log-format", "xml"}, &bytes.Buffer{})
	require.NoError(t, err)
	_, err = f.Resolve()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestExpandAliases(t *testing.T) {
	fsv := NewFlagSetWithVisit("x", &bytes.Buffer{})
	var d int
	fsv.IntVar(&d, "max-depth", "d", 0, "")
	got := fsv.expandAliases([]string{"-d", "3", "--d=4", "-other", "--", "-d"})
	assert.Equal(t, []string{"-max-depth", "3", "-max-depth=4", "-other", "--", "-d"}, got)
}
