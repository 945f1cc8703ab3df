package extract

import (
	"fmt"
	"strings"

	"github.com/erraggy/oastables/document"
	"github.com/erraggy/oastables/internal/httputil"
)

// opContext is one operation together with the path item that owns it.
type opContext struct {
	path   string
	method string
	item   *document.Node
	op     *document.Node
}

func (c opContext) operationID() string {
	return str(c.op, "operationId")
}

// eachOperation calls fn for every (path, method) pair in document order.
func (w *walker) eachOperation(fn func(opContext)) {
	for _, pm := range w.root.Get("paths").Members() {
		item, _ := w.resolve(pm.Value)
		if !item.IsObject() {
			w.log.Debug("skipping path item that is not an object", "path", pm.Key)
			continue
		}
		for _, mm := range item.Members() {
			if !httputil.IsMethod(mm.Key) {
				continue
			}
			if !mm.Value.IsObject() {
				w.log.Debug("skipping operation that is not an object", "path", pm.Key, "method", mm.Key)
				continue
			}
			fn(opContext{path: pm.Key, method: strings.ToLower(mm.Key), item: item, op: mm.Value})
		}
	}
}

func (w *walker) endpoints() []Operation {
	var out []Operation
	w.eachOperation(func(c opContext) {
		op := Operation{
			Path:        c.path,
			Method:      c.method,
			OperationID: c.operationID(),
			Summary:     str(c.op, "summary"),
			Description: str(c.op, "description"),
			Tags:        stringList(c.op.Get("tags")),
			Deprecated:  flag(c.op, "deprecated"),
			RequestBody: w.requestBody(c.op),
			Consumes:    stringList(w.inherited(c.op, "consumes")),
			Produces:    stringList(w.inherited(c.op, "produces")),
			Security:    flattenSecurity(w.inherited(c.op, "security")),
			URLTemplate: w.urlTemplate(c.path),
		}
		for _, p := range w.mergedParameters(c) {
			op.Parameters = append(op.Parameters, str(p.node, "name"))
		}
		for _, r := range w.responseEntries(c) {
			op.Responses = append(op.Responses, r.code)
		}
		out = append(out, op)
	})
	return out
}

// inherited returns op[key], falling back to the document-level value.
// A present but empty operation value overrides the document value.
func (w *walker) inherited(op *document.Node, key string) *document.Node {
	if op.Has(key) {
		return op.Get(key)
	}
	return w.root.Get(key)
}

// flattenSecurity renders a list of security requirement objects.
func flattenSecurity(reqs *document.Node) []string {
	var out []string
	for _, req := range reqs.Items() {
		for _, m := range req.Members() {
			scopes := stringList(m.Value)
			if len(scopes) == 0 {
				out = append(out, m.Key)
				continue
			}
			out = append(out, fmt.Sprintf("%s(%s)", m.Key, strings.Join(scopes, listSeparator)))
		}
	}
	return out
}

// urlTemplate builds the full URL of a path from OAS 2.0 host/basePath/schemes,
// or from the first OAS 3.x server.
func (w *walker) urlTemplate(path string) string {
	if host := str(w.root, "host"); host != "" {
		scheme := "https"
		if schemes := stringList(w.root.Get("schemes")); len(schemes) > 0 {
			scheme = schemes[0]
		}
		return scheme + "://" + host + str(w.root, "basePath") + path
	}
	servers := w.root.Get("servers").Items()
	if len(servers) == 0 {
		return ""
	}
	if base := str(servers[0], "url"); base != "" {
		return strings.TrimRight(base, "/") + path
	}
	return ""
}

// requestBody summarises an OAS 3.x requestBody as "required (media, ...)".
func (w *walker) requestBody(op *document.Node) string {
	body, ref := w.resolve(op.Get("requestBody"))
	if !body.IsObject() {
		return ref
	}
	summary := "optional"
	if flag(body, "required") {
		summary = "required"
	}
	if media := body.Get("content").Keys(); len(media) > 0 {
		summary += " (" + strings.Join(media, listSeparator) + ")"
	}
	return summary
}

// paramEntry is one parameter after $ref resolution.
type paramEntry struct {
	node  *document.Node // resolved parameter object, nil if the ref did not resolve
	ref   string
	level string
}

func (p paramEntry) key() string {
	return str(p.node, "name") + "\x00" + str(p.node, "in")
}

func (w *walker) paramEntries(c opContext, list *document.Node, level string) []paramEntry {
	var out []paramEntry
	for i, item := range list.Items() {
		if !item.IsObject() {
			w.log.Debug("skipping parameter that is not an object",
				"path", c.path, "method", c.method, "level", level, "index", i)
			continue
		}
		node, ref := w.resolve(item)
		if node != nil && !node.IsObject() {
			w.log.Debug("skipping parameter reference to a non-object", "ref", ref)
			continue
		}
		out = append(out, paramEntry{node: node, ref: ref, level: level})
	}
	return out
}

// mergedParameters combines path-level and operation-level parameters.
// Operation parameters replace path parameters with the same name and location;
// the surviving path parameters come first.
func (w *walker) mergedParameters(c opContext) []paramEntry {
	pathLevel := w.paramEntries(c, c.item.Get("parameters"), "path")
	opLevel := w.paramEntries(c, c.op.Get("parameters"), "operation")

	overridden := make(map[string]bool, len(opLevel))
	for _, p := range opLevel {
		if p.node != nil {
			overridden[p.key()] = true
		}
	}

	merged := make([]paramEntry, 0, len(pathLevel)+len(opLevel))
	for _, p := range pathLevel {
		if p.node != nil && overridden[p.key()] {
			continue
		}
		merged = append(merged, p)
	}
	return append(merged, opLevel...)
}

func (w *walker) parameters() []Parameter {
	var out []Parameter
	w.eachOperation(func(c opContext) {
		for _, entry := range w.mergedParameters(c) {
			out = append(out, w.parameter(c, entry))
		}
	})
	return out
}

func (w *walker) parameter(c opContext, entry paramEntry) Parameter {
	p := Parameter{
		Path:        c.path,
		Method:      c.method,
		OperationID: c.operationID(),
		Level:       entry.level,
	}
	n := entry.node
	if n == nil {
		p.SchemaRef = entry.ref
		return p
	}

	schema := n.Get("schema")
	items := n.Get("items")
	if items == nil {
		items = schema.Get("items")
	}
	enum := n.Get("enum")
	if enum == nil {
		enum = schema.Get("enum")
	}
	if enum == nil {
		enum = items.Get("enum")
	}

	p.Name = str(n, "name")
	p.In = str(n, "in")
	p.Required = flag(n, "required")
	p.Type = firstNonEmpty(str(n, "type"), str(schema, "type"))
	p.Format = firstNonEmpty(str(n, "format"), str(schema, "format"))
	p.Description = str(n, "description")
	p.CollectionFormat = firstNonEmpty(str(n, "collectionFormat"), str(n, "style"))
	p.ItemsType = str(items, "type")
	p.ItemsFormat = str(items, "format")
	p.Enum = stringList(enum)
	p.SchemaRef = str(schema, "$ref")
	p.SchemaType = str(schema, "type")
	return p
}

// responseEntry is one status code of an operation's responses map.
type responseEntry struct {
	code string
	node *document.Node // resolved response object, nil if the ref did not resolve
}

func (w *walker) responseEntries(c opContext) []responseEntry {
	var out []responseEntry
	for _, m := range c.op.Get("responses").Members() {
		if httputil.IsExtension(m.Key) {
			continue
		}
		if !m.Value.IsObject() {
			w.log.Debug("skipping response that is not an object",
				"path", c.path, "method", c.method, "status", m.Key)
			continue
		}
		node, _ := w.resolve(m.Value)
		out = append(out, responseEntry{code: m.Key, node: node})
	}
	return out
}

func (w *walker) responses() []Response {
	var out []Response
	w.eachOperation(func(c opContext) {
		for _, entry := range w.responseEntries(c) {
			r := Response{
				Path:        c.path,
				Method:      c.method,
				OperationID: c.operationID(),
				StatusCode:  entry.code,
				Description: str(entry.node, "description"),
			}

			schema := entry.node.Get("schema")
			content := entry.node.Get("content")
			if schema == nil {
				for _, media := range content.Members() {
					if s := media.Value.Get("schema"); s != nil {
						schema = s
						break
					}
				}
			}
			r.MediaTypes = content.Keys()
			r.SchemaType = str(schema, "type")
			r.SchemaFormat = str(schema, "format")
			r.SchemaRef = str(schema, "$ref")
			r.ItemsType = str(schema.Get("items"), "type")
			r.ItemsRef = str(schema.Get("items"), "$ref")
			out = append(out, r)
		}
	})
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
