package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oastables/export"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Output   string
	ExcelBOM bool
	Format   string
	Quiet    bool
	Verbose  bool
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file (default <dir>/"+export.DefaultMergeName+")")
	fs.StringVar(&flags.Output, "output", "", "output file (default <dir>/"+export.DefaultMergeName+")")
	fs.BoolVar(&flags.ExcelBOM, "excel-bom", false, "prefix the merged file with a UTF-8 byte order mark")
	fs.StringVar(&flags.Format, "format", FormatText, "report format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only print the output path")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only print the output path")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oastables merge [flags] [dir]\n\n")
		Writef(output, "Combine every *.csv file in dir (default: current directory), in name order,\n")
		Writef(output, "into one CSV file. The first column, %s, names the file each row came from.\n", export.SourceFileColumn)
		Writef(output, "The header is taken from the first non-empty file.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oastables merge\n")
		Writef(output, "  oastables merge -o all_tables.csv petstore_tables\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()
	if stop, err := parseArgs(fs, args); stop {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("merge command accepts at most one directory")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	dir := "."
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}
	output := flags.Output
	if output == "" {
		output = filepath.Join(dir, export.DefaultMergeName)
	}

	res, err := export.Merge(dir, output,
		export.WithExcelBOM(flags.ExcelBOM),
		export.WithLogger(newLogger(flags.Verbose)),
	)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(res, flags.Format)
	}
	if !flags.Quiet {
		Writef(os.Stderr, "Merged %d file(s), %d row(s)\n", len(res.Sources), res.Rows)
		for _, name := range res.Skipped {
			Writef(os.Stderr, "Skipped empty file: %s\n", name)
		}
	}
	Writef(os.Stdout, "%s\n", res.Output)
	return nil
}
