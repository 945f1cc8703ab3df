package export

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/erraggy/oastables/extract"
	"github.com/erraggy/oastables/oaserrors"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates with every new file.
const defaultSheet = "Sheet1"

func (e *Exporter) writeWorkbook(path string, tables []*extract.Table) error {
	f, err := e.buildWorkbook(tables)
	if err != nil {
		return &oaserrors.WriteError{Path: path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	err = e.writeFile(path, "", func(w io.Writer) error {
		return f.Write(w)
	})
	if err != nil {
		return err
	}
	e.logger.Info("wrote workbook", "path", path, "sheets", len(tables))
	return nil
}

// buildWorkbook lays out one sheet per table. The header row is bold and frozen.
// Cells longer than excelize.TotalCellChars are truncated by excelize; the CSV
// files keep the full value.
func (e *Exporter) buildWorkbook(tables []*extract.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	fail := func(err error) (*excelize.File, error) {
		_ = f.Close()
		return nil, fmt.Errorf("export: building workbook: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fail(err)
	}

	for i, table := range tables {
		if i == 0 {
			err = f.SetSheetName(defaultSheet, table.Name)
		} else {
			_, err = f.NewSheet(table.Name)
		}
		if err != nil {
			return fail(err)
		}
		if err := e.fillSheet(f, table, bold); err != nil {
			return fail(err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func (e *Exporter) fillSheet(f *excelize.File, table *extract.Table, headerStyle int) error {
	header := append([]string(nil), table.Columns...)
	if err := f.SetSheetRow(table.Name, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(table.Name, 1, 1, headerStyle); err != nil {
		return err
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := append([]string(nil), row...)
		for col, v := range values {
			if n := utf8.RuneCountInString(v); n > excelize.TotalCellChars {
				e.logger.Warn("workbook cell truncated",
					"sheet", table.Name, "row", i+2, "column", col+1, "length", n)
			}
		}
		if err := f.SetSheetRow(table.Name, cell, &values); err != nil {
			return err
		}
	}
	return f.SetPanes(table.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
