package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tacogips/vitesetup/internal/app"
)

type palette struct {
	primary lipgloss.Style
	accent  lipgloss.Style
	text    lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	danger  lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

func newPalette(w io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return palette{
		primary: r.NewStyle().Foreground(lipgloss.Color("#8B5CF6")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("#A78BFA")),
		text:    r.NewStyle().Foreground(lipgloss.Color("#E0E7FF")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		danger:  r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C4B5FD")).
			Padding(0, 2),
	}
}

func rule(n int) string {
	return strings.Repeat("━", n)
}

// printBanner prints the startup banner.
func printBanner(w io.Writer) {
	if globalQuiet {
		return
	}
	p := newPalette(w, globalColor)

	lines := []string{
		p.primary.Bold(true).Render("vitesetup"),
		"",
		p.text.Render("Everything configured.") + " " + p.primary.Bold(true).Render("Just start coding."),
		"",
		p.ok.Render("✓ Tailwind CSS v4") + "  " + p.muted.Render("- Pre-configured & ready"),
		p.ok.Render("✓ Router") + "           " + p.muted.Render("- Wired into the entry point"),
		p.ok.Render("✓ Folder Structure") + " " + p.muted.Render("- Organized & clean"),
	}
	fmt.Fprintln(w, p.box.Render(strings.Join(lines, "\n")))
	fmt.Fprintln(w)
}

// printCreateSummary prints what was set up and how to start.
func printCreateSummary(w io.Writer, result *app.CreateResult, runScript string) {
	if globalQuiet {
		return
	}
	p := newPalette(w, globalColor)
	check := p.ok.Render("     ✓ ")

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.ok.Render(rule(43)))
	fmt.Fprintln(w, p.ok.Bold(true).Render("  ✓ Project Ready! Everything Configured!"))
	fmt.Fprintln(w, p.ok.Render(rule(43)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.primary.Render("  What's included:"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, check+p.text.Render(result.Variant.DisplayName+" via Vite"))
	if result.Styling.Succeeded() {
		fmt.Fprintln(w, check+p.text.Render("Tailwind CSS v4 with Vite plugin"))
	}
	if result.Routing.Succeeded() {
		fmt.Fprintln(w, check+p.text.Render(result.Variant.RouterPackage+" wired into the entry point"))
	}
	fmt.Fprintln(w, check+p.text.Render("Organized folder structure"))

	if warnings := result.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.warn.Render("  Needs attention:"))
		for _, warning := range warnings {
			fmt.Fprintln(w, p.muted.Render("     • "+warning))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.primary.Render("  Start coding:"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.accent.Render("     cd ")+p.text.Render(cdTarget(result.ProjectRoot)))
	fmt.Fprintln(w, p.accent.Render("     "+runScript+" dev"))
	fmt.Fprintln(w)
}

// cdTarget returns projectRoot relative to the working directory when possible.
func cdTarget(projectRoot string) string {
	wd, err := os.Getwd()
	if err != nil {
		return projectRoot
	}
	rel, err := filepath.Rel(wd, projectRoot)
	if err != nil {
		return projectRoot
	}
	return rel
}
