package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/oastables/extract"
	"github.com/erraggy/oastables/internal/fileutil"
	"github.com/erraggy/oastables/loader"
	"github.com/erraggy/oastables/oaserrors"
)

// Exporter writes extract.Result tables to disk.
type Exporter struct {
	outputDir    string
	workbookName string
	listName     string
	excelBOM     bool
	logger       loader.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithOutputDir sets the directory all files are written to. It is created
// when missing. Defaults to the current directory.
func WithOutputDir(dir string) Option {
	return func(e *Exporter) {
		e.outputDir = dir
	}
}

// WithWorkbookName overrides the workbook file name used by WriteFull.
func WithWorkbookName(name string) Option {
	return func(e *Exporter) {
		e.workbookName = name
	}
}

// WithListName overrides the CSV file name used by WriteList.
func WithListName(name string) Option {
	return func(e *Exporter) {
		e.listName = name
	}
}

// WithExcelBOM enables a UTF-8 byte order mark at the start of every CSV file.
func WithExcelBOM(enabled bool) Option {
	return func(e *Exporter) {
		e.excelBOM = enabled
	}
}

// WithLogger sets the logger that receives one entry per written file.
func WithLogger(l loader.Logger) Option {
	return func(e *Exporter) {
		e.logger = l
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{outputDir: "."}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = loader.OrNop(e.logger)
	return e
}

// OutputDir returns the directory files are written to.
func (e *Exporter) OutputDir() string {
	return e.outputDir
}

// ListName returns the CSV file name WriteList uses for sourcePath.
func (e *Exporter) ListName(sourcePath string) string {
	if e.listName != "" {
		return e.listName
	}
	return fileutil.Stem(sourcePath) + ".csv"
}

// WorkbookName returns the workbook file name WriteFull uses for sourcePath.
func (e *Exporter) WorkbookName(sourcePath string) string {
	if e.workbookName != "" {
		return e.workbookName
	}
	return fileutil.Stem(sourcePath) + "_tables.xlsx"
}

// WriteList writes the endpoints table to a single CSV file.
func (e *Exporter) WriteList(result *extract.Result, sourcePath string) (*Manifest, error) {
	if err := e.ensureDir(); err != nil {
		return nil, err
	}
	m := newManifest(sourcePath, e.outputDir)

	table, _ := result.Table(extract.SectionEndpoints)
	path := filepath.Join(e.outputDir, e.ListName(sourcePath))
	if err := e.writeCSV(path, table); err != nil {
		return m, err
	}
	m.add(path, FormatCSV, table.Name, table.Len())
	return m, nil
}

// WriteFull writes one CSV file per table and a workbook with one sheet per table.
// Files written before a failure are listed in the returned Manifest.
func (e *Exporter) WriteFull(result *extract.Result, sourcePath string) (*Manifest, error) {
	if err := e.ensureDir(); err != nil {
		return nil, err
	}
	m := newManifest(sourcePath, e.outputDir)

	tables := result.Tables()
	total := 0
	for _, table := range tables {
		path := filepath.Join(e.outputDir, table.Name+".csv")
		if err := e.writeCSV(path, table); err != nil {
			return m, err
		}
		m.add(path, FormatCSV, table.Name, table.Len())
		total += table.Len()
	}

	path := filepath.Join(e.outputDir, e.WorkbookName(sourcePath))
	if err := e.writeWorkbook(path, tables); err != nil {
		return m, err
	}
	m.add(path, FormatWorkbook, "", total)
	return m, nil
}

func (e *Exporter) ensureDir() error {
	if err := os.MkdirAll(e.outputDir, fileutil.DirMode); err != nil {
		return &oaserrors.WriteError{Path: e.outputDir, Cause: err}
	}
	return nil
}

// writeFile creates path and streams content into it through fill.
func (e *Exporter) writeFile(path, section string, fill func(io.Writer) error) error {
	clean, err := fileutil.SanitizeOutputPath(path)
	if err != nil {
		return &oaserrors.WriteError{Path: path, Section: section, Cause: err}
	}
	f, err := os.OpenFile(clean, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileutil.ReadableByAll)
	if err != nil {
		return &oaserrors.WriteError{Path: path, Section: section, Cause: err}
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return &oaserrors.WriteError{Path: path, Section: section, Cause: err}
	}
	if err := f.Close(); err != nil {
		return &oaserrors.WriteError{Path: path, Section: section, Cause: err}
	}
	return nil
}
