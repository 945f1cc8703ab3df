package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/oastables/document"
	"github.com/erraggy/oastables/oaserrors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxFileSize is the largest source accepted when MaxFileSize is unset (100 MiB).
const DefaultMaxFileSize int64 = 100 << 20

// sectionKeys are the top-level keys that mark a document as OpenAPI-shaped.
var sectionKeys = []string{"paths", "definitions", "components", "tags", "securityDefinitions"}

// Loader reads and shape-checks OpenAPI JSON documents.
type Loader struct {
	// Lenient retries a failed parse on the text between the first '{' and the last '}'.
	Lenient bool
	// MaxFileSize caps the size of a source file in bytes. Zero means DefaultMaxFileSize.
	MaxFileSize int64
	// Logger receives diagnostics. Nil means no logging.
	Logger Logger
}

// Result holds a loaded document and facts about its source.
type Result struct {
	// Document is the root object of the source.
	Document *document.Node
	// SourcePath is the file path, or the source name given for in-memory data.
	SourcePath string
	// SourceSize is the size of the raw source in bytes.
	SourceSize int64
	// Version is the "swagger" or "openapi" value, or "unknown".
	Version string
	// LoadTime is how long reading and parsing took.
	LoadTime time.Duration
	// Salvaged is true when the document only parsed in lenient mode.
	Salvaged bool
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{MaxFileSize: DefaultMaxFileSize}
}

// Load reads the file at path and parses it.
func (l *Loader) Load(path string) (*Result, error) {
	start := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		return nil, &oaserrors.NotFoundError{Path: path, Cause: err}
	}
	if info.IsDir() {
		return nil, &oaserrors.NotFoundError{Path: path, Message: "is a directory"}
	}
	if limit := l.maxFileSize(); info.Size() > limit {
		return nil, &oaserrors.MalformedInputError{
			Path:    path,
			Message: fmt.Sprintf("file size %d exceeds limit of %d bytes", info.Size(), limit),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &oaserrors.NotFoundError{Path: path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, &oaserrors.NotFoundError{Path: path, Message: "read failed", Cause: err}
	}

	res, err := l.parse(raw, path)
	if err != nil {
		return nil, err
	}
	res.LoadTime = time.Since(start)
	return res, nil
}

// LoadReader reads all of r and parses it under the given source name.
func (l *Loader) LoadReader(r io.Reader, name string) (*Result, error) {
	start := time.Now()
	raw, err := io.ReadAll(io.LimitReader(r, l.maxFileSize()+1))
	if err != nil {
		return nil, &oaserrors.NotFoundError{Path: name, Message: "read failed", Cause: err}
	}
	if int64(len(raw)) > l.maxFileSize() {
		return nil, &oaserrors.MalformedInputError{
			Path:    name,
			Message: fmt.Sprintf("input exceeds limit of %d bytes", l.maxFileSize()),
		}
	}
	res, err := l.parse(raw, name)
	if err != nil {
		return nil, err
	}
	res.LoadTime = time.Since(start)
	return res, nil
}

// LoadBytes parses in-memory data under the given source name.
func (l *Loader) LoadBytes(data []byte, name string) (*Result, error) {
	return l.LoadReader(bytes.NewReader(data), name)
}

func (l *Loader) maxFileSize() int64 {
	if l.MaxFileSize <= 0 {
		return DefaultMaxFileSize
	}
	return l.MaxFileSize
}

func (l *Loader) parse(raw []byte, name string) (*Result, error) {
	log := OrNop(l.Logger).With("source", name)

	data, err := decodeText(raw)
	if err != nil {
		return nil, &oaserrors.MalformedInputError{Path: name, Message: "undecodable text", Cause: err}
	}

	root, err := document.Parse(data)
	salvaged := false
	if err != nil && l.Lenient {
		if body := salvage(data); body != nil {
			if retry, retryErr := document.Parse(body); retryErr == nil {
				log.Warn("parsed document after trimming surrounding text", "error", err)
				root, err, salvaged = retry, nil, true
			}
		}
	}
	if err != nil {
		malformed := &oaserrors.MalformedInputError{Path: name, Message: "invalid JSON", Cause: err}
		var syn *document.SyntaxError
		if errors.As(err, &syn) {
			malformed.Line = syn.Line
			malformed.Column = syn.Column
			malformed.Cause = errors.New(syn.Msg)
		}
		return nil, malformed
	}

	if err := checkShape(root); err != nil {
		return nil, &oaserrors.MalformedInputError{Path: name, Message: err.Error()}
	}

	res := &Result{
		Document:   root,
		SourcePath: name,
		SourceSize: int64(len(raw)),
		Version:    detectVersion(root),
		Salvaged:   salvaged,
	}
	log.Debug("loaded document", "bytes", res.SourceSize, "version", res.Version)
	return res, nil
}

// decodeText strips a byte order mark and converts UTF-16 input to UTF-8.
// Invalid UTF-8 sequences are replaced rather than rejected.
func decodeText(raw []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, raw)
	return out, err
}

// salvage returns the text between the first '{' and the last '}', or nil.
func salvage(data []byte) []byte {
	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')
	if start < 0 || end <= start {
		return nil
	}
	if start == 0 && end == len(bytes.TrimRight(data, " \t\r\n"))-1 {
		return nil // nothing to trim, a retry would fail the same way
	}
	return data[start : end+1]
}

func checkShape(root *document.Node) error {
	if !root.IsObject() {
		return fmt.Errorf("document root is %s, expected object", root.Kind())
	}
	for _, key := range sectionKeys {
		if root.Has(key) {
			return nil
		}
	}
	return fmt.Errorf("no OpenAPI sections found (expected one of %v)", sectionKeys)
}

func detectVersion(root *document.Node) string {
	for _, key := range []string{"openapi", "swagger"} {
		if v := root.Get(key); v.IsScalar() {
			return v.String()
		}
	}
	return "unknown"
}
