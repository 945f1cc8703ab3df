package extract

import (
	"strconv"
	"strings"
)

// Section names, in export order.
const (
	SectionEndpoints  = "endpoints"
	SectionParameters = "parameters"
	SectionResponses  = "responses"
	SectionTags       = "tags"
	SectionModels     = "models"
	SectionSchemas    = "schemas"
	SectionSecurity   = "security"
)

// Sections returns every section name in export order.
func Sections() []string {
	return []string{
		SectionEndpoints,
		SectionParameters,
		SectionResponses,
		SectionTags,
		SectionModels,
		SectionSchemas,
		SectionSecurity,
	}
}

// listSeparator joins scalar lists into a single cell.
const listSeparator = ", "

// Operation is one (path, method) pair.
type Operation struct {
	Path        string
	Method      string
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool
	// Parameters holds the merged parameter names.
	Parameters []string
	// Responses holds the response status codes, including "default".
	Responses []string
	// RequestBody summarises an OAS 3.x requestBody, e.g. "required (application/json)".
	RequestBody string
	Consumes    []string
	Produces    []string
	// Security holds the effective requirements as "scheme(scope, scope)".
	Security    []string
	URLTemplate string
}

// APIGroup returns the first tag, or "".
func (o Operation) APIGroup() string {
	if len(o.Tags) == 0 {
		return ""
	}
	return o.Tags[0]
}

var operationColumns = []string{
	"path", "method", "operation_id", "summary", "description", "tags", "api_group",
	"deprecated", "parameters", "responses", "request_body", "consumes", "produces",
	"security", "url_template",
}

func (o Operation) values() []string {
	return []string{
		o.Path,
		o.Method,
		o.OperationID,
		o.Summary,
		o.Description,
		strings.Join(o.Tags, listSeparator),
		o.APIGroup(),
		strconv.FormatBool(o.Deprecated),
		strings.Join(o.Parameters, listSeparator),
		strings.Join(o.Responses, listSeparator),
		o.RequestBody,
		strings.Join(o.Consumes, listSeparator),
		strings.Join(o.Produces, listSeparator),
		strings.Join(o.Security, listSeparator),
		o.URLTemplate,
	}
}

// Parameter is one merged parameter of one operation.
type Parameter struct {
	Path             string
	Method           string
	OperationID      string
	Name             string
	In               string
	Required         bool
	Type             string
	Format           string
	Description      string
	CollectionFormat string
	ItemsType        string
	ItemsFormat      string
	Enum             []string
	SchemaRef        string
	SchemaType       string
	// Level is "path" or "operation", depending on where the parameter was declared.
	Level string
}

var parameterColumns = []string{
	"path", "method", "operation_id", "name", "in", "required", "type", "format",
	"description", "collection_format", "items_type", "items_format", "enum",
	"schema_ref", "schema_type", "level",
}

func (p Parameter) values() []string {
	return []string{
		p.Path,
		p.Method,
		p.OperationID,
		p.Name,
		p.In,
		strconv.FormatBool(p.Required),
		p.Type,
		p.Format,
		p.Description,
		p.CollectionFormat,
		p.ItemsType,
		p.ItemsFormat,
		strings.Join(p.Enum, listSeparator),
		p.SchemaRef,
		p.SchemaType,
		p.Level,
	}
}

// Response is one status code of one operation.
type Response struct {
	Path         string
	Method       string
	OperationID  string
	StatusCode   string
	Description  string
	SchemaType   string
	SchemaFormat string
	SchemaRef    string
	ItemsType    string
	ItemsRef     string
	MediaTypes   []string
}

var responseColumns = []string{
	"path", "method", "operation_id", "status_code", "description", "schema_type",
	"schema_format", "schema_ref", "items_type", "items_ref", "media_types",
}

func (r Response) values() []string {
	return []string{
		r.Path,
		r.Method,
		r.OperationID,
		r.StatusCode,
		r.Description,
		r.SchemaType,
		r.SchemaFormat,
		r.SchemaRef,
		r.ItemsType,
		r.ItemsRef,
		strings.Join(r.MediaTypes, listSeparator),
	}
}

// Tag is one top-level tag object.
type Tag struct {
	Name                    string
	Description             string
	ExternalDocsDescription string
	ExternalDocsURL         string
}

var tagColumns = []string{"name", "description", "external_docs_description", "external_docs_url"}

func (t Tag) values() []string {
	return []string{t.Name, t.Description, t.ExternalDocsDescription, t.ExternalDocsURL}
}

// ModelProperty is one declared property of one named schema.
type ModelProperty struct {
	ModelName    string
	PropertyName string
	Type         string
	Format       string
	Required     bool
	Description  string
	Enum         []string
	ItemsType    string
	ItemsFormat  string
	ItemsRef     string
	Ref          string
	XMLName      string
	XMLWrapped   string
	Example      string
}

var modelColumns = []string{
	"model_name", "property_name", "type", "format", "required", "description", "enum",
	"items_type", "items_format", "items_ref", "ref", "xml_name", "xml_wrapped", "example",
}

func (m ModelProperty) values() []string {
	return []string{
		m.ModelName,
		m.PropertyName,
		m.Type,
		m.Format,
		strconv.FormatBool(m.Required),
		m.Description,
		strings.Join(m.Enum, listSeparator),
		m.ItemsType,
		m.ItemsFormat,
		m.ItemsRef,
		m.Ref,
		m.XMLName,
		m.XMLWrapped,
		m.Example,
	}
}

// Schema is one named schema, with or without properties.
type Schema struct {
	ModelName      string
	Type           string
	Description    string
	RequiredFields []string
	PropertyCount  int
	Ref            string
	XMLName        string
}

var schemaColumns = []string{
	"model_name", "type", "description", "required_fields", "property_count", "ref", "xml_name",
}

func (s Schema) values() []string {
	return []string{
		s.ModelName,
		s.Type,
		s.Description,
		strings.Join(s.RequiredFields, listSeparator),
		strconv.Itoa(s.PropertyCount),
		s.Ref,
		s.XMLName,
	}
}

// SecurityScheme is one named security scheme.
type SecurityScheme struct {
	Name             string
	Type             string
	Scheme           string
	BearerFormat     string
	In               string
	ParameterName    string
	Flows            []string
	AuthorizationURL string
	TokenURL         string
	// Scopes holds "scope:description" pairs across all flows.
	Scopes           []string
	OpenIDConnectURL string
}

var securityColumns = []string{
	"name", "type", "scheme", "bearer_format", "in", "parameter_name", "flows",
	"authorization_url", "token_url", "scopes", "open_id_connect_url",
}

func (s SecurityScheme) values() []string {
	return []string{
		s.Name,
		s.Type,
		s.Scheme,
		s.BearerFormat,
		s.In,
		s.ParameterName,
		strings.Join(s.Flows, listSeparator),
		s.AuthorizationURL,
		s.TokenURL,
		strings.Join(s.Scopes, listSeparator),
		s.OpenIDConnectURL,
	}
}
