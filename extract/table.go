package extract

// Table is a section rendered as string cells.
// Every row has exactly len(Columns) cells.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Records returns the rows as column-name to value maps.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

type record interface {
	values() []string
}

func newTable[T record](name string, columns []string, records []T) *Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.values())
	}
	return &Table{Name: name, Columns: append([]string(nil), columns...), Rows: rows}
}

// SectionStat is the row count of one section.
type SectionStat struct {
	Name string `json:"name" yaml:"name"`
	Rows int    `json:"rows" yaml:"rows"`
}
