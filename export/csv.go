package export

import (
	"encoding/csv"
	"io"

	"github.com/erraggy/oastables/extract"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func (e *Exporter) writeCSV(path string, table *extract.Table) error {
	err := e.writeFile(path, table.Name, func(w io.Writer) error {
		return e.encodeCSV(w, table.Columns, table.Rows)
	})
	if err != nil {
		return err
	}
	e.logger.Info("wrote csv", "path", path, "section", table.Name, "rows", table.Len())
	return nil
}

// encodeCSV writes a header row followed by rows, optionally behind a UTF-8 BOM.
func (e *Exporter) encodeCSV(w io.Writer, header []string, rows [][]string) error {
	if !e.excelBOM {
		return writeRecords(w, header, rows)
	}
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	if err := writeRecords(bw, header, rows); err != nil {
		return err
	}
	return bw.Close()
}

func writeRecords(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
