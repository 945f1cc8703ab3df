package extract

import "github.com/erraggy/oastables/document"

func (w *walker) tags() []Tag {
	var out []Tag
	for i, n := range w.root.Get("tags").Items() {
		if !n.IsObject() {
			w.log.Debug("skipping tag that is not an object", "index", i)
			continue
		}
		docs := n.Get("externalDocs")
		out = append(out, Tag{
			Name:                    str(n, "name"),
			Description:             str(n, "description"),
			ExternalDocsDescription: str(docs, "description"),
			ExternalDocsURL:         str(docs, "url"),
		})
	}
	return out
}

// namedSchemas returns the OAS 2.0 definitions followed by the OAS 3.x
// component schemas, skipping non-object values.
func (w *walker) namedSchemas() []document.Member {
	var out []document.Member
	for _, section := range []*document.Node{
		w.root.Get("definitions"),
		w.root.Lookup("components", "schemas"),
	} {
		for _, m := range section.Members() {
			if !m.Value.IsObject() {
				w.log.Debug("skipping schema that is not an object", "schema", m.Key)
				continue
			}
			out = append(out, m)
		}
	}
	return out
}

func (w *walker) models() []ModelProperty {
	var out []ModelProperty
	for _, schema := range w.namedSchemas() {
		required := make(map[string]bool)
		for _, name := range stringList(schema.Value.Get("required")) {
			required[name] = true
		}
		for _, prop := range schema.Value.Get("properties").Members() {
			p := prop.Value
			if !p.IsObject() {
				w.log.Debug("skipping property that is not an object",
					"schema", schema.Key, "property", prop.Key)
				continue
			}
			items := p.Get("items")
			example := p.Get("example")
			if example == nil {
				example = p.Get("examples")
			}
			out = append(out, ModelProperty{
				ModelName:    schema.Key,
				PropertyName: prop.Key,
				Type:         str(p, "type"),
				Format:       str(p, "format"),
				Required:     required[prop.Key],
				Description:  str(p, "description"),
				Enum:         stringList(p.Get("enum")),
				ItemsType:    str(items, "type"),
				ItemsFormat:  str(items, "format"),
				ItemsRef:     str(items, "$ref"),
				Ref:          str(p, "$ref"),
				XMLName:      str(p.Get("xml"), "name"),
				XMLWrapped:   str(p.Get("xml"), "wrapped"),
				Example:      example.String(),
			})
		}
	}
	return out
}

func (w *walker) schemas() []Schema {
	var out []Schema
	for _, m := range w.namedSchemas() {
		s := m.Value
		out = append(out, Schema{
			ModelName:      m.Key,
			Type:           str(s, "type"),
			Description:    str(s, "description"),
			RequiredFields: stringList(s.Get("required")),
			PropertyCount:  s.Get("properties").Len(),
			Ref:            str(s, "$ref"),
			XMLName:        str(s.Get("xml"), "name"),
		})
	}
	return out
}

func (w *walker) security() []SecurityScheme {
	var out []SecurityScheme
	for _, section := range []*document.Node{
		w.root.Get("securityDefinitions"),
		w.root.Lookup("components", "securitySchemes"),
	} {
		for _, m := range section.Members() {
			n, ref := w.resolve(m.Value)
			if !n.IsObject() {
				w.log.Debug("skipping security scheme that is not an object", "scheme", m.Key, "ref", ref)
				continue
			}
			out = append(out, securityScheme(m.Key, n))
		}
	}
	return out
}

func securityScheme(name string, n *document.Node) SecurityScheme {
	s := SecurityScheme{
		Name:             name,
		Type:             str(n, "type"),
		Scheme:           str(n, "scheme"),
		BearerFormat:     str(n, "bearerFormat"),
		In:               str(n, "in"),
		ParameterName:    str(n, "name"),
		AuthorizationURL: str(n, "authorizationUrl"),
		TokenURL:         str(n, "tokenUrl"),
		OpenIDConnectURL: str(n, "openIdConnectUrl"),
	}
	if flow := str(n, "flow"); flow != "" {
		s.Flows = append(s.Flows, flow)
	}
	seen := make(map[string]bool)
	addScopes := func(scopes *document.Node) {
		for _, sc := range scopes.Members() {
			if seen[sc.Key] {
				continue
			}
			seen[sc.Key] = true
			s.Scopes = append(s.Scopes, sc.Key+":"+sc.Value.String())
		}
	}
	addScopes(n.Get("scopes"))

	// OAS 3.x: one entry per flow; the first URL of each kind wins.
	for _, f := range n.Get("flows").Members() {
		s.Flows = append(s.Flows, f.Key)
		if s.AuthorizationURL == "" {
			s.AuthorizationURL = str(f.Value, "authorizationUrl")
		}
		if s.TokenURL == "" {
			s.TokenURL = str(f.Value, "tokenUrl")
		}
		addScopes(f.Value.Get("scopes"))
	}
	return s
}
