package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
	"github.com/veldhuis/lbx/internal/formatter"
	"github.com/veldhuis/lbx/internal/shared"
	tu "github.com/veldhuis/lbx/internal/testing"
)

// runApp executes the assembled command tree against args, capturing help
// output and the exit code cli would hand to the operating system.
func runApp(t *testing.T, output *bytes.Buffer, args ...string) (string, int) {
	t.Helper()

	exitCode := 0
	prevExiter := cli.OsExiter
	cli.OsExiter = func(code int) { exitCode = code }
	defer func() { cli.OsExiter = prevExiter }()

	runner := NewRunner(RunnerOpts{
		Output: output,
		Logger: shared.NewLogger(&bytes.Buffer{}),
	})

	app := buildApp(runner)
	var help bytes.Buffer
	app.Writer = &help

	_ = app.Run(context.Background(), append([]string{"lbx"}, args...))
	return help.String(), exitCode
}

func TestApp(t *testing.T) {
	t.Run("zero arguments prints usage and exits non-zero", func(t *testing.T) {
		var output bytes.Buffer
		help, code := runApp(t, &output)

		if code != 1 {
			t.Errorf("expected exit code 1, got %d", code)
		}
		if !strings.Contains(help, "USAGE") {
			t.Errorf("expected usage text, got %q", help)
		}
		if output.Len() != 0 {
			t.Errorf("expected no data output, got %q", output.String())
		}
	})

	t.Run("two arguments prints usage and exits non-zero", func(t *testing.T) {
		path := tu.TempListens(t, `[]`)

		var output bytes.Buffer
		help, code := runApp(t, &output, path, path)

		if code != 1 {
			t.Errorf("expected exit code 1, got %d", code)
		}
		if !strings.Contains(help, "USAGE") {
			t.Errorf("expected usage text, got %q", help)
		}
		if output.Len() != 0 {
			t.Errorf("expected no data output, got %q", output.String())
		}
	})

	t.Run("one argument converts to the output writer", func(t *testing.T) {
		path := tu.TempListens(t, `[{"listened_at": 100, "track_metadata": {"track_name": "A", "artist_name": "B", "release_name": "C"}}]`)

		var output bytes.Buffer
		_, code := runApp(t, &output, path)

		if code != 0 {
			t.Errorf("expected exit code 0, got %d", code)
		}
		want := formatter.Header + "\n100\tA\tB\tC\n"
		if output.String() != want {
			t.Errorf("expected %q, got %q", want, output.String())
		}
	})

	t.Run("convert without a file prints subcommand usage", func(t *testing.T) {
		var output bytes.Buffer
		help, code := runApp(t, &output, "convert")

		if code != 1 {
			t.Errorf("expected exit code 1, got %d", code)
		}
		if !strings.Contains(help, "convert") {
			t.Errorf("expected convert usage text, got %q", help)
		}
		if output.Len() != 0 {
			t.Errorf("expected no data output, got %q", output.String())
		}
	})

	t.Run("check without a file prints subcommand usage", func(t *testing.T) {
		var output bytes.Buffer
		_, code := runApp(t, &output, "check")

		if code != 1 {
			t.Errorf("expected exit code 1, got %d", code)
		}
		if output.Len() != 0 {
			t.Errorf("expected no report output, got %q", output.String())
		}
	})

	t.Run("init writes an editable config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		var output bytes.Buffer
		_, code := runApp(t, &output, "init", "--output", path)

		if code != 0 {
			t.Errorf("expected exit code 0, got %d", code)
		}
		tu.AssertFileExists(t, path)
		if !strings.Contains(tu.MustReadFile(t, path), "extra_markers") {
			t.Error("expected the example config to mention extra_markers")
		}
	})
}
