package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oastables/internal/fileutil"
	"github.com/erraggy/oastables/oaserrors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SourceFileColumn is the header of the column Merge prepends to every row.
const SourceFileColumn = "SourceFile"

// DefaultMergeName is the conventional merged file name.
const DefaultMergeName = "merged_output.csv"

// MergeResult describes one Merge run.
type MergeResult struct {
	Output  string   `json:"output" yaml:"output"`
	Header  []string `json:"header" yaml:"header"`
	Sources []string `json:"sources" yaml:"sources"`
	// Skipped lists empty CSV files.
	Skipped []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Rows    int      `json:"rows" yaml:"rows"`
}

// Merge combines every *.csv file in dir, in name order, into output.
// The merged header is SourceFile followed by the first file's header; each
// data row is prefixed with the base name of the file it came from. The output
// file itself and files without a header row are skipped.
func Merge(dir, output string, opts ...Option) (*MergeResult, error) {
	e := New(opts...)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &oaserrors.NotFoundError{Path: dir, Cause: err}
	}
	outAbs, err := filepath.Abs(output)
	if err != nil {
		return nil, &oaserrors.WriteError{Path: output, Cause: err}
	}

	res := &MergeResult{Output: output}
	var rows [][]string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".csv") {
			continue
		}
		path := filepath.Join(dir, name)
		if abs, err := filepath.Abs(path); err == nil && abs == outAbs {
			continue
		}

		records, err := readCSV(path)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			e.logger.Debug("skipping empty csv", "path", path)
			res.Skipped = append(res.Skipped, name)
			continue
		}
		if res.Header == nil {
			res.Header = append([]string{SourceFileColumn}, records[0]...)
		}
		for _, rec := range records[1:] {
			rows = append(rows, append([]string{name}, rec...))
		}
		res.Sources = append(res.Sources, name)
	}

	if res.Header == nil {
		return nil, &oaserrors.NotFoundError{Path: dir, Message: "no CSV files with a header row"}
	}
	res.Rows = len(rows)

	if err := os.MkdirAll(filepath.Dir(output), fileutil.DirMode); err != nil {
		return nil, &oaserrors.WriteError{Path: output, Cause: err}
	}
	err = e.writeFile(output, "", func(w io.Writer) error {
		return e.encodeCSV(w, res.Header, rows)
	})
	if err != nil {
		return nil, err
	}
	e.logger.Info("merged csv files", "output", output, "sources", len(res.Sources), "rows", res.Rows)
	return res, nil
}

// readCSV reads every record of a CSV file, dropping a leading byte order mark.
// Rows may have differing field counts.
func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.NotFoundError{Path: path, Cause: err}
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, &oaserrors.MalformedInputError{Path: path, Message: "invalid text encoding", Cause: err}
	}

	r := csv.NewReader(bytes.NewReader(decoded))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		mi := &oaserrors.MalformedInputError{Path: path, Message: "invalid CSV", Cause: err}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			mi.Line, mi.Column = pe.Line, pe.Column
		}
		return nil, mi
	}
	return records, nil
}

// String summarises the merge for display.
func (r *MergeResult) String() string {
	return fmt.Sprintf("%s: %d rows from %d files", r.Output, r.Rows, len(r.Sources))
}
