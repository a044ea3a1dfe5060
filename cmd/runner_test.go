package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/veldhuis/lbx/internal/formatter"
	"github.com/veldhuis/lbx/internal/models"
	"github.com/veldhuis/lbx/internal/shared"
	tu "github.com/veldhuis/lbx/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("register exposes the command tree", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := make(map[string]bool)
		for _, cmd := range commands {
			names[cmd.Name] = true
		}

		for _, want := range []string{"convert", "check", "stats", "init"} {
			if !names[want] {
				t.Errorf("expected %s command to be registered", want)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
		})

		t.Run("check report round-trips", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			report := &models.Report{
				Total:          4,
				Kept:           2,
				SkippedNull:    1,
				SkippedCorrupt: 1,
				MarkerHits:     map[string]int{"cancel-control": 1},
			}
			if err := runner.writeJSON(report, true); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}

			var decoded models.Report
			if err := json.Unmarshal(output.Bytes(), &decoded); err != nil {
				t.Fatalf("report output is not valid JSON: %v", err)
			}
			if decoded.Total != report.Total || decoded.Kept != report.Kept {
				t.Errorf("expected %+v, got %+v", report, decoded)
			}
			if decoded.MarkerHits["cancel-control"] != 1 {
				t.Errorf("marker hits lost in round trip: %+v", decoded.MarkerHits)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("formats into the output writer", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("kept %d rows\n", 3); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "kept 3 rows\n" {
				t.Errorf("unexpected output %q", output.String())
			}
		})

		t.Run("propagates write failures", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writePlain("x"); err == nil {
				t.Error("expected error from failing writer")
			}
		})
	})

	t.Run("convert", func(t *testing.T) {
		t.Run("writes TSV to the runner output", func(t *testing.T) {
			path := tu.TempListens(t, `[{"listened_at": 100, "track_metadata": {"track_name": "A", "artist_name": "B", "release_name": "C"}}]`)

			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.convert(path, ""); err != nil {
				t.Fatalf("convert failed: %v", err)
			}

			want := formatter.Header + "\n100\tA\tB\tC\n"
			if output.String() != want {
				t.Errorf("expected %q, got %q", want, output.String())
			}
		})

		t.Run("propagates data errors", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.convert("does/not/exist.json", "")
			if !errors.Is(err, shared.ErrUnreadableFile) {
				t.Errorf("expected ErrUnreadableFile, got %v", err)
			}
			if output.Len() != 0 {
				t.Error("expected no data output on failure")
			}
		})

		t.Run("explicit config path must load", func(t *testing.T) {
			path := tu.TempListens(t, `[]`)
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.convert(path, "does/not/exist.toml")
			if !errors.Is(err, shared.ErrMissingConfig) {
				t.Errorf("expected ErrMissingConfig, got %v", err)
			}
		})
	})
}
