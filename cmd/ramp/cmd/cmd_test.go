package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/ramp/pkg/errors"
)

const servoPreset = `version: v1
ramps:
  - name: servo
    origin: 0
    target: 180
    duration: 1s
    loop: once-forward
  - name: blink
    target: 255
    duration: 250
    loop: forth-and-back
    easing: sinusoidal-inout
    grain: 1
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RAMP_MODE", "")
	t.Setenv("RAMP_LOG_LEVEL", "1")
	t.Setenv("RAMP_LOG_FILE", "")
	t.Setenv("RAMP_LOG_STDOUT", "")

	var stdout, stderr bytes.Buffer
	err := execute(args, &stdout, &stderr)
	return stdout.String(), err
}

func writePreset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(servoPreset), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCurves(t *testing.T) {
	out, err := run(t, "curves")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"linear", "elastic-inout", "ease-in-out"} {
		if !strings.Contains(out, name+"\n") {
			t.Errorf("curves output missing %q", name)
		}
	}
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample", "linear", "--steps", "4")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[3], "0.500") || !strings.Contains(lines[3], "0.500000") {
		t.Errorf("midpoint line = %q", lines[3])
	}
}

func TestSampleErrors(t *testing.T) {
	if _, err := run(t, "sample", "wobbly"); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("unknown curve error = %v", err)
	}
	if _, err := run(t, "sample", "linear", "--steps", "0"); err == nil {
		t.Error("expected an error for zero steps")
	}
	if _, err := run(t, "sample"); err == nil {
		t.Error("expected an error without a curve argument")
	}
}

func TestSimulate(t *testing.T) {
	path := writePreset(t)
	out, err := run(t, "simulate", "--preset", path, "--name", "servo", "--tick", "100ms", "--for", "1200ms")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "# servo run ") {
		t.Errorf("header = %q", lines[0])
	}
	// header, column names, then one row per sample from 0 to 1200ms
	if len(lines) != 2+13 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if row := lines[7]; !strings.Contains(row, "500") || !strings.Contains(row, "90.000") {
		t.Errorf("500ms row = %q", row)
	}
	if last := lines[len(lines)-1]; !strings.Contains(last, "180.000") || !strings.Contains(last, "finished") {
		t.Errorf("last row = %q", last)
	}
}

func TestSimulateDefaultsToFirstPreset(t *testing.T) {
	out, err := run(t, "simulate", "--preset", writePreset(t), "--for", "100ms")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "# servo run ") {
		t.Errorf("output = %q", out)
	}
}

func TestSimulateErrors(t *testing.T) {
	path := writePreset(t)
	tests := []struct {
		name string
		args []string
		kind errors.ErrorKind
	}{
		{"no preset flag", []string{"simulate"}, errors.KindUnknown},
		{"missing file", []string{"simulate", "--preset", filepath.Join(t.TempDir(), "nope.yaml")}, errors.KindConfig},
		{"unknown name", []string{"simulate", "--preset", path, "--name", "nope"}, errors.KindConfig},
		{"jitter too large", []string{"simulate", "--preset", path, "--tick", "10ms", "--jitter", "10ms"}, errors.KindInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.kind != errors.KindUnknown && !errors.IsKind(err, tt.kind) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestPlotAndSheet(t *testing.T) {
	dir := t.TempDir()
	path := writePreset(t)
	tests := []struct {
		name string
		args []string
	}{
		{"trace", []string{"plot", "--preset", path, "--name", "blink", "--jitter", "5ms", "-o", filepath.Join(dir, "blink.png")}},
		{"curves", []string{"plot", "--curves", "linear,back-out,bounce-out", "-o", filepath.Join(dir, "curves.png")}},
		{"sheet", []string{"sheet", "--columns", "5", "-o", filepath.Join(dir, "sheet.png")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			file := strings.TrimSpace(out)
			info, err := os.Stat(file)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() == 0 {
				t.Errorf("%s is empty", file)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestFailedCommandLogsAndClosesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "ramp.log")
	t.Setenv("RAMP_MODE", "DEV")
	t.Setenv("RAMP_LOG_LEVEL", "1")
	t.Setenv("RAMP_LOG_FILE", logFile)
	t.Setenv("RAMP_LOG_STDOUT", "")
	t.Cleanup(func() { errors.SetHandler(nil) })

	s := &session{}
	var stdout, stderr bytes.Buffer
	args := []string{"sample", "wobbly", "--env-file", filepath.Join(t.TempDir(), "missing.env")}
	if err := executeSession(s, args, &stdout, &stderr); err == nil {
		t.Fatal("expected an error for an unknown curve")
	}
	if !s.logClosed || s.logCloser != nil {
		t.Error("log file should be closed after a failed command")
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	// DEV mode installs a verbose handler, which adds the kind.
	for _, want := range []string{`"message":"ramp_error"`, `"op":"easing.Lookup"`, `"kind":"invalid-argument"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log file missing %s:\n%s", want, out)
		}
	}
}
