// ABOUTME: CLI entry point reporting terminal capabilities with cursor crash recovery
// ABOUTME: Loads settings, selects a backend, prints through the interceptor chain

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	// termfix must be imported before any package that renders with lipgloss.
	_ "github.com/mauromedda/termrt/internal/termfix"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/termrt/internal/config"
	tlog "github.com/mauromedda/termrt/internal/log"
	"github.com/mauromedda/termrt/pkg/tui/capability"
	"github.com/mauromedda/termrt/pkg/tui/codepoint"
	"github.com/mauromedda/termrt/pkg/tui/exithook"
	"github.com/mauromedda/termrt/pkg/tui/procenv"
	"github.com/mauromedda/termrt/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Faint(true)
	yesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("termcaps %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		procenv.PrintStderr("error: "+err.Error(), true)
		exithook.Run()
		os.Exit(1)
	}
}

// run performs initialization and the requested demonstrations.
func run(args cliArgs) error {
	defer exithook.Run()
	stopSignals := exithook.NotifyOnSignal(exithook.Default(), nil)
	defer stopSignals()

	cfg, err := loadSettings(args)
	if err != nil {
		return err
	}
	if args.verbose || cfg.Verbose {
		tlog.SetLevel(tlog.LevelDebug)
	}

	caps, err := newProvider(cfg)
	if err != nil {
		return err
	}
	term := terminal.NewProcessTerminal(caps)
	defer terminal.RestoreOnPanic(term.Cursor(), exithook.Default())

	if cfg.ShouldStripStyles(term.Interactive()) {
		term.AddInterceptor(terminal.StripStyles())
	}
	if args.prefix != "" {
		term.AddInterceptor(terminal.Prefix(args.prefix))
	}

	if err := printReport(term, cfg); err != nil {
		return err
	}

	if args.spin > 0 {
		if err := spin(context.Background(), term, args.spin, cfg.RestoreCursor()); err != nil {
			return err
		}
	}

	if args.password {
		if err := promptSecret(term); err != nil {
			return err
		}
	}
	return nil
}

// loadSettings reads the settings file(s), then applies environment and
// flag overrides.
func loadSettings(args cliArgs) (*config.Settings, error) {
	var (
		cfg *config.Settings
		err error
	)
	if args.config != "" {
		cfg, err = config.LoadFile(args.config)
	} else {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("getting working directory: %w", wdErr)
		}
		cfg, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(procenv.Getenv); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if args.backend != "" {
		cfg.Backend = args.backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// newProvider returns the process provider, or one pinned to the backend
// forced by settings.
func newProvider(cfg *config.Settings) (*capability.Provider, error) {
	kind, forced, err := cfg.BackendKind()
	if err != nil {
		return nil, err
	}
	if !forced {
		return capability.Default(), nil
	}
	return capability.NewProvider(capability.SelectKind(kind, capability.Load)), nil
}

func printReport(term *terminal.ProcessTerminal, cfg *config.Settings) error {
	caps := term.Capabilities()
	platform := capability.Detect()

	sizeText := "unknown"
	if s, ok := caps.TerminalSize(); ok {
		sizeText = fmt.Sprintf("%dx%d", s.Columns, s.Rows)
	} else {
		fb := cfg.FallbackSize()
		sizeText += fmt.Sprintf(" (layout uses %dx%d)", fb.Columns, fb.Rows)
	}
	termEnv, ok := procenv.Getenv("TERM")
	if !ok {
		termEnv = "(unset)"
	}

	rows := [][2]string{
		{"backend", caps.Kind().String()},
		{"platform", fmt.Sprintf("%s/%s native=%v", platform.OS, runtime.GOARCH, platform.Native)},
		{"stdout interactive", yesNo(caps.StdoutInteractive())},
		{"stdin interactive", yesNo(caps.StdinInteractive())},
		{"terminal size", sizeText},
		{"TERM", termEnv},
		{"debugger", yesNo(procenv.RunningUnderDebugAgent())},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("terminal capabilities"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(padRight(row[0], 20)))
		b.WriteString(row[1])
	}
	return term.Println(b.String())
}

func yesNo(b bool) string {
	if b {
		return yesStyle.Render("yes")
	}
	return noStyle.Render("no")
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if w := codepoint.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s + " "
}

func promptSecret(term *terminal.ProcessTerminal) error {
	reader := terminal.NewStdinReader()

	if err := term.Print(terminal.PrintRequest{Text: "secret: "}); err != nil {
		return err
	}
	secret, ok, err := reader.ReadLine(true)
	if err != nil {
		return fmt.Errorf("reading secret: %w", err)
	}
	if !ok {
		return term.Println("\nno input")
	}
	return term.Println(fmt.Sprintf("\nread %d characters", codepoint.Count(secret)))
}
