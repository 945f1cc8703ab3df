package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oastables/export"
	"github.com/erraggy/oastables/extract"
	"github.com/erraggy/oastables/internal/fileutil"
	"github.com/erraggy/oastables/loader"
)

// ExportFlags contains flags for the export and list commands
type ExportFlags struct {
	OutputDir string
	Workbook  string
	Output    string
	ExcelBOM  bool
	Lenient   bool
	Format    string
	Quiet     bool
	Verbose   bool
}

// exportReport is the structured (json/yaml) result of export and list.
type exportReport struct {
	Source    string                `json:"source" yaml:"source"`
	Version   string                `json:"version" yaml:"version"`
	OutputDir string                `json:"output_dir" yaml:"output_dir"`
	Sections  []extract.SectionStat `json:"sections" yaml:"sections"`
	Files     []export.File         `json:"files" yaml:"files"`
}

// SetupExportFlags creates and configures a FlagSet for the export command.
// Returns the FlagSet and an ExportFlags struct with bound flag variables.
func SetupExportFlags() (*flag.FlagSet, *ExportFlags) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	flags := &ExportFlags{}

	fs.StringVar(&flags.OutputDir, "o", "", "output directory (default <source-stem>_tables)")
	fs.StringVar(&flags.OutputDir, "output-dir", "", "output directory (default <source-stem>_tables)")
	fs.StringVar(&flags.Workbook, "workbook", "", "workbook file name (default <source-stem>_tables.xlsx)")
	bindCommonExportFlags(fs, flags)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oastables export [flags] <file>\n\n")
		Writef(output, "Write every section of an OpenAPI JSON document to its own CSV file\n")
		Writef(output, "plus a workbook with one sheet per section.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nOutput files:\n")
		Writef(output, "  endpoints.csv, parameters.csv, responses.csv, tags.csv,\n")
		Writef(output, "  models.csv, schemas.csv, security.csv, <source-stem>_tables.xlsx\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  oastables export petstore.json\n")
		Writef(output, "  oastables export -o out --workbook api.xlsx petstore.json\n")
		Writef(output, "  oastables export --format json -q petstore.json\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Export successful\n")
		Writef(output, "  1    Source missing, malformed, or output not writable\n")
	}

	return fs, flags
}

func bindCommonExportFlags(fs *flag.FlagSet, flags *ExportFlags) {
	fs.BoolVar(&flags.ExcelBOM, "excel-bom", false, "prefix CSV files with a UTF-8 byte order mark")
	fs.BoolVar(&flags.Lenient, "lenient", false, "salvage the JSON object between the first '{' and the last '}' when strict parsing fails")
	fs.StringVar(&flags.Format, "format", FormatText, "report format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only print written file paths")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only print written file paths")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug details to stderr")
}

// HandleExport executes the export command
func HandleExport(args []string) error {
	fs, flags := SetupExportFlags()
	if stop, err := parseArgs(fs, args); stop {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("export command requires exactly one file path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	outputDir := flags.OutputDir
	if outputDir == "" {
		outputDir = fileutil.Stem(specPath) + "_tables"
	}

	return runExport(specPath, flags, func(logger loader.Logger, result *extract.Result) (*export.Manifest, error) {
		return export.New(
			export.WithOutputDir(outputDir),
			export.WithWorkbookName(flags.Workbook),
			export.WithExcelBOM(flags.ExcelBOM),
			export.WithLogger(logger),
		).WriteFull(result, specPath)
	})
}

// runExport loads and extracts specPath, runs write and reports the result.
func runExport(specPath string, flags *ExportFlags, write func(loader.Logger, *extract.Result) (*export.Manifest, error)) error {
	logger := newLogger(flags.Verbose)

	res, result, err := loadAndExtract(specPath, flags.Lenient, logger)
	if err != nil {
		return err
	}

	manifest, err := write(logger, result)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(exportReport{
			Source:    res.SourcePath,
			Version:   res.Version,
			OutputDir: manifest.OutputDir,
			Sections:  result.Stats(),
			Files:     manifest.Files,
		}, flags.Format)
	}

	if !flags.Quiet {
		OutputSpecHeader(res)
		Writef(os.Stderr, "Sections:\n")
		OutputSectionStats(result)
		Writef(os.Stderr, "\nWrote %d file(s) to %s\n", len(manifest.Files), filepath.Clean(manifest.OutputDir))
	}
	for _, path := range manifest.Paths() {
		Writef(os.Stdout, "%s\n", path)
	}
	return nil
}
