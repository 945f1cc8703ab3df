package export

// Output formats recorded in a Manifest.
const (
	FormatCSV      = "csv"
	FormatWorkbook = "xlsx"
)

// Manifest lists the files written by one export run, in write order.
type Manifest struct {
	Source    string `json:"source" yaml:"source"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Files     []File `json:"files" yaml:"files"`
}

// File is one written file.
type File struct {
	Path   string `json:"path" yaml:"path"`
	Format string `json:"format" yaml:"format"`
	// Section is empty for the workbook, which holds every section.
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
	// Rows counts data rows, excluding headers.
	Rows int `json:"rows" yaml:"rows"`
}

func newManifest(source, dir string) *Manifest {
	return &Manifest{Source: source, OutputDir: dir}
}

func (m *Manifest) add(path, format, section string, rows int) {
	m.Files = append(m.Files, File{Path: path, Format: format, Section: section, Rows: rows})
}

// Paths returns the path of every written file.
func (m *Manifest) Paths() []string {
	paths := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
