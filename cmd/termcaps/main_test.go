// ABOUTME: Tests for CLI settings resolution, provider choice and report output
// ABOUTME: Report output is captured by pointing the ProcessTerminal at buffers

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/termrt/internal/config"
	"github.com/mauromedda/termrt/pkg/tui/capability"
	"github.com/mauromedda/termrt/pkg/tui/exithook"
	"github.com/mauromedda/termrt/pkg/tui/terminal"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings_FlagOverridesFileAndEnv(t *testing.T) {
	t.Setenv(config.EnvBackend, "hosted-posix")
	path := writeSettings(t, "backend: native-posix\ndefault_width: 100\n")

	cfg, err := loadSettings(cliArgs{config: path, backend: "fallback"})
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.Backend != "fallback" {
		t.Errorf("Backend = %q, want fallback", cfg.Backend)
	}
	if cfg.DefaultWidth != 100 {
		t.Errorf("DefaultWidth = %d, want 100", cfg.DefaultWidth)
	}
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	t.Setenv(config.EnvBackend, "hosted-posix")
	path := writeSettings(t, "backend: native-posix\n")

	cfg, err := loadSettings(cliArgs{config: path})
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.Backend != "hosted-posix" {
		t.Errorf("Backend = %q, want hosted-posix", cfg.Backend)
	}
}

func TestLoadSettings_InvalidBackend(t *testing.T) {
	path := writeSettings(t, "backend: teletype\n")

	if _, err := loadSettings(cliArgs{config: path}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestNewProvider_Forced(t *testing.T) {
	t.Parallel()

	p, err := newProvider(&config.Settings{Backend: "fallback"})
	if err != nil {
		t.Fatalf("newProvider: %v", err)
	}
	if p == capability.Default() {
		t.Fatal("forced backend must not share the process provider")
	}
	if p.Kind() != capability.KindFallback {
		t.Errorf("Kind = %v, want fallback", p.Kind())
	}
}

func TestNewProvider_Auto(t *testing.T) {
	t.Parallel()

	p, err := newProvider(&config.Settings{Backend: "auto"})
	if err != nil {
		t.Fatalf("newProvider: %v", err)
	}
	if p != capability.Default() {
		t.Error("auto backend should use the process provider")
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "tty", width: 6, want: "tty   "},
		{in: "\u4e16\u754c", width: 6, want: "\u4e16\u754c  "},
		{in: "overflowing", width: 4, want: "overflowing "},
	}
	for _, tt := range tests {
		if got := padRight(tt.in, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPrintReport_Fallback(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	caps := capability.NewProvider(capability.Fallback{})
	term := terminal.NewProcessTerminal(caps,
		terminal.WithOutput(&stdout, &stderr),
		terminal.WithExitHooks(exithook.NewRegistry()),
		terminal.WithInterceptors(terminal.StripStyles()),
	)

	cfg := &config.Settings{DefaultWidth: 120, DefaultHeight: 40}
	if err := printReport(term, cfg); err != nil {
		t.Fatalf("printReport: %v", err)
	}

	out := stdout.String()
	if out != ansi.Strip(out) {
		t.Errorf("report contains escape sequences: %q", out)
	}
	for _, want := range []string{"backend", "fallback", "layout uses 120x40", "stdout interactive"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}
