package extract

import (
	"github.com/erraggy/oastables/document"
	"github.com/erraggy/oastables/loader"
)

// maxRefHops bounds how many local $ref links are followed for one value.
const maxRefHops = 32

// Extractor builds record sequences from a document tree.
type Extractor struct {
	// Logger receives a debug entry for every skipped entry. Nil means no logging.
	Logger loader.Logger
}

// Result holds the records of every section.
type Result struct {
	Endpoints  []Operation
	Parameters []Parameter
	Responses  []Response
	Tags       []Tag
	Models     []ModelProperty
	Schemas    []Schema
	Security   []SecurityScheme
}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract is a convenience wrapper around New().Extract(doc).
func Extract(doc *document.Node) *Result {
	return New().Extract(doc)
}

// Extract walks doc and returns the records of every section.
// It never fails: a nil or non-object doc yields an empty Result.
func (e *Extractor) Extract(doc *document.Node) *Result {
	w := &walker{root: doc, log: loader.OrNop(e.Logger)}
	return &Result{
		Endpoints:  w.endpoints(),
		Parameters: w.parameters(),
		Responses:  w.responses(),
		Tags:       w.tags(),
		Models:     w.models(),
		Schemas:    w.schemas(),
		Security:   w.security(),
	}
}

// Tables returns every section as a Table, in export order.
func (r *Result) Tables() []*Table {
	return []*Table{
		newTable(SectionEndpoints, operationColumns, r.Endpoints),
		newTable(SectionParameters, parameterColumns, r.Parameters),
		newTable(SectionResponses, responseColumns, r.Responses),
		newTable(SectionTags, tagColumns, r.Tags),
		newTable(SectionModels, modelColumns, r.Models),
		newTable(SectionSchemas, schemaColumns, r.Schemas),
		newTable(SectionSecurity, securityColumns, r.Security),
	}
}

// Table returns the named section.
func (r *Result) Table(name string) (*Table, bool) {
	for _, t := range r.Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Stats returns the row count of every section, in export order.
func (r *Result) Stats() []SectionStat {
	return []SectionStat{
		{Name: SectionEndpoints, Rows: len(r.Endpoints)},
		{Name: SectionParameters, Rows: len(r.Parameters)},
		{Name: SectionResponses, Rows: len(r.Responses)},
		{Name: SectionTags, Rows: len(r.Tags)},
		{Name: SectionModels, Rows: len(r.Models)},
		{Name: SectionSchemas, Rows: len(r.Schemas)},
		{Name: SectionSecurity, Rows: len(r.Security)},
	}
}

// Columns returns the header of the named section, or nil.
func Columns(section string) []string {
	var cols []string
	switch section {
	case SectionEndpoints:
		cols = operationColumns
	case SectionParameters:
		cols = parameterColumns
	case SectionResponses:
		cols = responseColumns
	case SectionTags:
		cols = tagColumns
	case SectionModels:
		cols = modelColumns
	case SectionSchemas:
		cols = schemaColumns
	case SectionSecurity:
		cols = securityColumns
	default:
		return nil
	}
	return append([]string(nil), cols...)
}

// walker carries the document root for $ref lookups.
type walker struct {
	root *document.Node
	log  loader.Logger
}

// resolve follows local $ref links from n. It returns the target node (nil if
// a link is external, missing or cyclic) and the first ref seen, if any.
func (w *walker) resolve(n *document.Node) (*document.Node, string) {
	first := ""
	seen := make(map[string]bool)
	cur := n
	for range maxRefHops {
		ref, ok := cur.Ref()
		if !ok {
			return cur, first
		}
		if first == "" {
			first = ref
		}
		if seen[ref] {
			w.log.Debug("cyclic reference", "ref", ref)
			return nil, first
		}
		seen[ref] = true
		cur = w.root.Pointer(ref)
		if cur == nil {
			w.log.Debug("unresolved reference", "ref", ref)
			return nil, first
		}
	}
	return nil, first
}

// str returns the cell text of key in n.
func str(n *document.Node, key string) string {
	return n.Get(key).String()
}

// flag returns the boolean value of key in n, false when absent or not a boolean.
func flag(n *document.Node, key string) bool {
	b, _ := n.Get(key).AsBool()
	return b
}

// stringList returns the cell text of every scalar item of an array node.
// A lone scalar is treated as a one-element list.
func stringList(n *document.Node) []string {
	if n.IsScalar() {
		return []string{n.String()}
	}
	var out []string
	for _, item := range n.Items() {
		if item.IsScalar() {
			out = append(out, item.String())
		}
	}
	return out
}
