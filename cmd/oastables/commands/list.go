package commands

import (
	"flag"
	"fmt"

	"github.com/erraggy/oastables/export"
	"github.com/erraggy/oastables/extract"
	"github.com/erraggy/oastables/loader"
)

// SetupListFlags creates and configures a FlagSet for the list command.
func SetupListFlags() (*flag.FlagSet, *ExportFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ExportFlags{}

	fs.StringVar(&flags.OutputDir, "o", ".", "output directory")
	fs.StringVar(&flags.OutputDir, "output-dir", ".", "output directory")
	fs.StringVar(&flags.Output, "output", "", "CSV file name (default <source-stem>.csv)")
	bindCommonExportFlags(fs, flags)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oastables list [flags] <file>\n\n")
		Writef(output, "Write one CSV row per endpoint (path and HTTP method) of an OpenAPI JSON document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oastables list petstore.json\n")
		Writef(output, "  oastables list --output endpoints.csv -o reports petstore.json\n")
		Writef(output, "  oastables list --lenient --excel-bom downloaded.json\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()
	if stop, err := parseArgs(fs, args); stop {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("list command requires exactly one file path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	return runExport(specPath, flags, func(logger loader.Logger, result *extract.Result) (*export.Manifest, error) {
		return export.New(
			export.WithOutputDir(flags.OutputDir),
			export.WithListName(flags.Output),
			export.WithExcelBOM(flags.ExcelBOM),
			export.WithLogger(logger),
		).WriteList(result, specPath)
	})
}
