// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/contrastpick/internal/cli"
	"github.com/jmylchreest/contrastpick/internal/config"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	// Keep the environment from leaking into results.
	for _, key := range []string{config.EnvBackground, config.EnvAlgorithm, config.EnvWidth} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvNoColour, "1")

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestForegroundCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "simple on white", args: []string{"foreground", "#FFFFFF"}, want: "#ffffff  #000\n"},
		{name: "simple on black", args: []string{"foreground", "#000000"}, want: "#000000  #FFF\n"},
		{name: "w3c on green", args: []string{"foreground", "-a", "w3c", "#00ff00"}, want: "#00ff00  #000\n"},
		{name: "simple on green", args: []string{"fg", "00ff00"}, want: "#00ff00  #FFF\n"},
		{name: "shorthand", args: []string{"foreground", "#bbb"}, want: "#bbbbbb  #000\n"},
		{name: "boundary 186", args: []string{"foreground", "#bababa"}, want: "#bababa  #FFF\n"},
		{name: "both algorithms", args: []string{"foreground", "--all", "#00ff00"}, want: "#00ff00  simple #FFF  w3c #000\n"},
		{name: "several colours", args: []string{"foreground", "#fff", "#000"}, want: "#ffffff  #000\n#000000  #FFF\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestForegroundCommandEnvAlgorithm(t *testing.T) {
	var outBuf bytes.Buffer
	t.Setenv(config.EnvAlgorithm, "w3c")

	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"foreground", "#00ff00"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if got := outBuf.String(); got != "#00ff00  #000\n" {
		t.Errorf("output = %q, want the w3c result", got)
	}

	// An explicit flag wins over the environment.
	outBuf.Reset()
	rootCmd = cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"foreground", "-a", "simple", "#00ff00"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if got := outBuf.String(); got != "#00ff00  #FFF\n" {
		t.Errorf("output = %q, want the simple result", got)
	}
}

func TestForegroundCommandJSON(t *testing.T) {
	out, _, err := run(t, "", "foreground", "-f", "json", "-a", "w3c", "#000")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0]["foreground"] != "#FFF" || got[0]["algorithm"] != "w3c" || got[0]["background"] != "#000000" {
		t.Errorf("unexpected result: %v", got[0])
	}
}

func TestForegroundCommandTable(t *testing.T) {
	out, _, err := run(t, "", "foreground", "--all", "-f", "table", "#767676")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	for _, want := range []string{"BACKGROUND", "ALGORITHM", "#767676", "simple", "w3c"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestForegroundCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "not a colour", args: []string{"foreground", "not-a-color"}, wantErr: "invalid colour format"},
		{name: "two digits", args: []string{"foreground", "#12"}, wantErr: "invalid colour format"},
		{name: "five digits", args: []string{"foreground", "#12345"}, wantErr: "invalid colour format"},
		{name: "unknown algorithm", args: []string{"foreground", "-a", "apca", "#fff"}, wantErr: "unknown algorithm"},
		{name: "unknown format", args: []string{"foreground", "-f", "yaml", "#fff"}, wantErr: "unsupported format"},
		{name: "no arguments", args: []string{"foreground"}, wantErr: "requires at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			if err == nil {
				t.Fatal("Execute() expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLuminanceCommand(t *testing.T) {
	out, _, err := run(t, "", "luminance", "#000", "#fff", "#ff0000")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	want := "#000000  0.0000\n#ffffff  1.0000\n#ff0000  0.2126\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	if _, _, err := run(t, "", "luminance", "#12345"); err == nil {
		t.Error("Execute() accepted an invalid colour")
	}
}

func TestContrastCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "black and white", args: []string{"contrast", "#000", "#fff"}, want: "21.00:1\n"},
		{name: "either order", args: []string{"contrast", "#fff", "#000"}, want: "21.00:1\n"},
		{name: "same colour", args: []string{"contrast", "#777", "#777777"}, want: "1.00:1\n"},
		{name: "raw", args: []string{"contrast", "--raw", "1", "0"}, want: "21.00:1\n"},
		{name: "raw reversed", args: []string{"contrast", "--raw", "0", "1"}, want: "0.05:1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}

	if _, _, err := run(t, "", "contrast", "--raw", "2", "0"); err == nil {
		t.Error("Execute() accepted a luminance above 1")
	}
}

func TestRGBCommand(t *testing.T) {
	out, _, err := run(t, "", "rgb", "#03F", "AABBCC", "aabbcc")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	want := "#0033ff  rgb(0, 51, 255)\n#aabbcc  rgb(170, 187, 204)\n#aabbcc  rgb(170, 187, 204)\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestColourOutputRespectsNoColour(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "foreground swatch", args: []string{"foreground", "--swatch", "#336699"}, want: "#336699  #FFF\n"},
		{name: "foreground swatch all", args: []string{"foreground", "--swatch", "--all", "#00ff00"}, want: "#00ff00  simple #FFF  w3c #000\n"},
		{name: "rgb preview", args: []string{"rgb", "--preview", "#336699"}, want: "#336699  rgb(51, 102, 153)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
			if strings.Contains(out, "\x1b[") {
				t.Errorf("output contains escape sequences with NO_COLOR set: %q", out)
			}
		})
	}
}

func TestPreviewCommand(t *testing.T) {
	out, _, err := run(t, "", "preview", "--width", "40", "--text", "hello world", "#000")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !strings.Contains(out, "background #000000  foreground #FFF") {
		t.Errorf("output missing summary:\n%s", out)
	}
	if !strings.Contains(out, "| hello world") {
		t.Errorf("output missing sample text:\n%s", out)
	}
}

func TestPreviewCommandPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	_, _, err := run(t, "", "preview", "-q", "--png", path, "--width", "120", "#336699")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("preview file not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("preview file is not a png: %v", err)
	}
	if img.Bounds().Dx() != 120 {
		t.Errorf("png width = %d, want 120", img.Bounds().Dx())
	}
}

func TestPreviewCommandPNGTooNarrow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	_, _, err := run(t, "", "preview", "-q", "--png", path, "--width", "10", "#336699")
	if err == nil {
		t.Fatal("Execute() accepted a png width narrower than one character")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("failed render left %s behind (stat error: %v)", path, statErr)
	}
}

func TestDemoCommand(t *testing.T) {
	out, _, err := run(t, "#000\nt\nq\n", "demo", "--width", "40")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	for _, want := range []string{
		"background #ffffff  foreground #000  algorithm simple",
		"background #000000  foreground #FFF  algorithm simple",
		"background #000000  foreground #FFF  algorithm W3C",
		"[Use W3C algorithm] > ",
		"[Use simple algorithm] > ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDemoCommandInvalidBackground(t *testing.T) {
	if _, _, err := run(t, "", "demo", "-b", "#12"); err == nil {
		t.Error("Execute() accepted an invalid initial background")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "contrastpick version ") {
		t.Errorf("output = %q", out)
	}
}
