package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/liangyc/courtwatch/internal/filter"
	"github.com/liangyc/courtwatch/internal/runner"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Options controls text rendering.
type Options struct {
	// Verbose includes the per-site decision trace.
	Verbose bool
	// Color enables ANSI severity coloring of trace outcomes.
	Color bool
}

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
)

// WriteReport writes the run result in the specified format
func WriteReport(w io.Writer, report *runner.Report, format OutputFormat, opts Options) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report, opts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the full report as JSON
func writeJSON(w io.Writer, report *runner.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeText outputs the accepted announcements as an aligned listing,
// followed by the decision trace when verbose.
func writeText(w io.Writer, report *runner.Report, opts Options) error {
	if len(report.Announcements) == 0 {
		fmt.Fprintln(w, "No matching announcements found.")
	} else {
		fmt.Fprintf(w, "%d matching announcements:\n\n", len(report.Announcements))

		// Site names mix CJK and Latin text; pad by display width so the
		// columns line up in a terminal.
		siteWidth := 0
		for _, a := range report.Announcements {
			if wd := runewidth.StringWidth(a.Site); wd > siteWidth {
				siteWidth = wd
			}
		}

		for _, a := range report.Announcements {
			fmt.Fprintf(w, "  %s  %s  %s\n    %s\n",
				a.Date.Format("2006-01-02"),
				runewidth.FillRight(a.Site, siteWidth),
				a.Title,
				a.URL)
		}
	}

	if opts.Verbose {
		writeTrace(w, report, opts)
	}
	return nil
}

// writeTrace renders every site's fetch history and per-candidate decisions.
func writeTrace(w io.Writer, report *runner.Report, opts Options) {
	for _, tr := range report.Traces {
		fmt.Fprintf(w, "\n%s:\n", tr.Site)

		for _, page := range tr.Pages {
			fmt.Fprintf(w, "  page %s\n", page)
		}
		for _, e := range tr.Errors {
			fmt.Fprintf(w, "  %s\n", colorize(opts, ansiRed, "ERROR "+e))
		}
		if tr.Fatal != "" {
			fmt.Fprintf(w, "  %s\n", colorize(opts, ansiRed, "FATAL "+tr.Fatal))
		}

		for _, d := range tr.Decisions {
			label := colorize(opts, outcomeColor(d.Outcome), string(d.Outcome))
			fmt.Fprintf(w, "  %s %s (%s)\n", label, d.Candidate.Title, d.Reason)
		}
	}
}

func outcomeColor(outcome filter.Outcome) string {
	switch outcome {
	case filter.Accepted:
		return ansiGreen
	case filter.RejectedNoKeyword:
		return ansiYellow
	default:
		return ansiRed
	}
}

func colorize(opts Options, color, s string) string {
	if !opts.Color {
		return s
	}
	return color + s + ansiReset
}
