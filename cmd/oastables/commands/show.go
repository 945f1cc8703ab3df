package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/oastables/extract"
)

// ShowFlags contains flags for the show command
type ShowFlags struct {
	Format  string
	Lenient bool
	Quiet   bool
	Verbose bool
	Limit   int
}

// SetupShowFlags creates and configures a FlagSet for the show command.
func SetupShowFlags() (*flag.FlagSet, *ShowFlags) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	flags := &ShowFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Lenient, "lenient", false, "salvage the JSON object between the first '{' and the last '}' when strict parsing fails")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without a header")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without a header")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug details to stderr")
	fs.IntVar(&flags.Limit, "limit", 0, "show at most N rows (0 for all)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oastables show [flags] <section> <file>\n\n")
		Writef(output, "Print one section of an OpenAPI JSON document.\n\n")
		Writef(output, "Sections: %s\n\n", strings.Join(extract.Sections(), ", "))
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oastables show endpoints petstore.json\n")
		Writef(output, "  oastables show -q parameters petstore.json | cut -f4\n")
		Writef(output, "  oastables show --format json security petstore.json\n")
	}

	return fs, flags
}

// HandleShow executes the show command
func HandleShow(args []string) error {
	fs, flags := SetupShowFlags()
	if stop, err := parseArgs(fs, args); stop {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("show command requires a section and a file path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	section := strings.ToLower(fs.Arg(0))
	if extract.Columns(section) == nil {
		return fmt.Errorf("unknown section '%s'. Valid sections: %s", fs.Arg(0), strings.Join(extract.Sections(), ", "))
	}

	_, result, err := loadAndExtract(fs.Arg(1), flags.Lenient, newLogger(flags.Verbose))
	if err != nil {
		return err
	}
	table, _ := result.Table(section)

	rows := table.Rows
	if flags.Limit > 0 && flags.Limit < len(rows) {
		rows = rows[:flags.Limit]
	}

	if flags.Format != FormatText {
		records := (&extract.Table{Name: table.Name, Columns: table.Columns, Rows: rows}).Records()
		return RenderDetail(os.Stdout, records, flags.Format)
	}

	if len(rows) == 0 {
		if !flags.Quiet {
			Writef(os.Stderr, "No %s found.\n", section)
		}
		return nil
	}
	RenderSummaryTable(os.Stdout, table.Columns, rows, flags.Quiet)
	if !flags.Quiet && len(rows) < table.Len() {
		Writef(os.Stderr, "\nShowing %d of %d rows.\n", len(rows), table.Len())
	}
	return nil
}
