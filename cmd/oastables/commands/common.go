// Package commands provides CLI command handlers for oastables.
package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/oastables"
	"github.com/erraggy/oastables/extract"
	"github.com/erraggy/oastables/loader"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(strings.TrimRight(string(bytes), "\n"))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// parseArgs parses args and reports whether the command should stop
// because help was requested.
func parseArgs(fs *flag.FlagSet, args []string) (stop bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return true, err
	}
	return false, nil
}

// newLogger returns a debug-level slog logger on stderr when verbose is set,
// otherwise a no-op logger.
func newLogger(verbose bool) loader.Logger {
	if !verbose {
		return loader.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return loader.NewSlogAdapter(slog.New(handler))
}

// loadAndExtract loads specPath and extracts every section.
func loadAndExtract(specPath string, lenient bool, logger loader.Logger) (*loader.Result, *extract.Result, error) {
	l := loader.New()
	l.Lenient = lenient
	l.Logger = logger

	res, err := l.Load(specPath)
	if err != nil {
		return nil, nil, err
	}
	e := extract.New()
	e.Logger = logger
	return res, e.Extract(res.Document), nil
}

// OutputSpecHeader outputs the common specification header to stderr.
func OutputSpecHeader(res *loader.Result) {
	Writef(os.Stderr, "oastables version: %s\n", oastables.Version())
	Writef(os.Stderr, "Specification: %s\n", res.SourcePath)
	Writef(os.Stderr, "OAS Version: %s\n", res.Version)
	Writef(os.Stderr, "Source Size: %s\n", loader.FormatBytes(res.SourceSize))
	Writef(os.Stderr, "Load Time: %v\n", res.LoadTime)
	if res.Salvaged {
		Writef(os.Stderr, "Note: document was salvaged from surrounding text (--lenient)\n")
	}
}

// OutputSectionStats outputs the row count of every section to stderr.
func OutputSectionStats(result *extract.Result) {
	for _, s := range result.Stats() {
		Writef(os.Stderr, "  %-12s %d\n", s.Name+":", s.Rows)
	}
}

// RenderSummaryTable renders a table of results.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with headers is rendered.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		for i, h := range headers {
			if i > 0 {
				_, _ = fmt.Fprint(w, "  ")
			}
			_, _ = fmt.Fprintf(w, "%-*s", widths[i], strings.ToUpper(h))
		}
		_, _ = fmt.Fprintln(w)
	}

	for _, row := range rows {
		for i, cell := range row {
			if quiet {
				if i > 0 {
					_, _ = fmt.Fprint(w, "\t")
				}
				_, _ = fmt.Fprint(w, cell)
			} else {
				if i > 0 {
					_, _ = fmt.Fprint(w, "  ")
				}
				_, _ = fmt.Fprintf(w, "%-*s", widths[i], cell)
			}
		}
		_, _ = fmt.Fprintln(w)
	}
}

// RenderDetail renders a value as JSON or YAML.
func RenderDetail(w io.Writer, node any, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(node, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(node)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
