package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/tacogips/vitesetup/internal/app"
)

// troubleshootingHints are shown when the generator or package manager fails.
var troubleshootingHints = []string{
	"Check internet connection",
	"Node.js 18+ required",
	"Try: npm cache clean --force",
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// isTerminalWriter reports whether w is a terminal-backed file.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// colorEnabled decides whether output written to f should be colored.
func colorEnabled(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isTerminal(f) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// isInteractive reports whether prompts can be shown.
func isInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// configureOutput applies the color decision to pterm.
func configureOutput(color bool) {
	if color {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

// printInfo prints an informational message
func printInfo(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(w, msg)
}

// printSuccess prints a success message
func printSuccess(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	pterm.Success.WithWriter(w).Println(msg)
}

// printWarning prints a warning message
func printWarning(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	pterm.Warning.WithWriter(w).Println(msg)
}

// printProgress prints a progress indicator
func printProgress(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	if globalColor {
		fmt.Fprintf(w, "%s %s\n", pterm.FgMagenta.Sprint("→"), msg)
	} else {
		fmt.Fprintf(w, "→ %s\n", msg)
	}
}

// printFailure prints the diagnostic block for a failed command.
// It is printed even in quiet mode.
func printFailure(w io.Writer, err error) {
	p := newPalette(w, globalColor)

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.danger.Render(rule(30)))
	fmt.Fprintln(w, p.danger.Bold(true).Render("  ✗ Setup Failed"))
	fmt.Fprintln(w, p.danger.Render(rule(30)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.muted.Render("  "+err.Error()))
	fmt.Fprintln(w)

	if !needsTroubleshooting(err) {
		return
	}
	fmt.Fprintln(w, p.warn.Render("  Troubleshooting:"))
	for _, hint := range troubleshootingHints {
		fmt.Fprintln(w, p.muted.Render("    • "+hint))
	}
	fmt.Fprintln(w)
}

func needsTroubleshooting(err error) bool {
	var appErr *app.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Type == app.GenerateFailed || appErr.Type == app.InstallFailed
}

// stageReporter renders app stage progress as pterm spinners on a terminal
// and as plain status lines otherwise.
type stageReporter struct {
	w       io.Writer
	animate bool
	spinner *pterm.SpinnerPrinter
}

func newStageReporter(w io.Writer, animate bool) *stageReporter {
	return &stageReporter{w: w, animate: animate && !globalQuiet}
}

func (r *stageReporter) StageStarted(stage app.Stage) {
	if globalQuiet || !r.animate {
		return
	}
	sp, err := pterm.DefaultSpinner.
		WithWriter(r.w).
		WithRemoveWhenDone(false).
		Start(stage.Label() + "...")
	if err == nil {
		r.spinner = sp
	}
}

func (r *stageReporter) StageFinished(res app.StageResult) {
	msg := res.Stage.Label()
	if res.Detail != "" {
		msg += " (" + res.Detail + ")"
	}

	sp := r.spinner
	r.spinner = nil
	if globalQuiet && res.Status != app.StageFailed {
		if sp != nil {
			_ = sp.Stop()
		}
		return
	}

	switch res.Status {
	case app.StageDone:
		if sp != nil {
			sp.Success(msg)
			return
		}
		printSuccess(r.w, msg)
	case app.StageWarning:
		if sp != nil {
			sp.Warning(msg)
		} else {
			printWarning(r.w, msg)
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(r.w, "    %s\n", w)
		}
	case app.StageFailed:
		if sp != nil {
			sp.Fail(res.Stage.Label())
			return
		}
		pterm.Error.WithWriter(r.w).Println(res.Stage.Label())
	case app.StagePlanned:
		printProgress(r.w, res.Stage.Label()+": "+res.Detail)
	}
}
