package loader

import (
	"io"

	"github.com/erraggy/oastables/internal/options"
	"github.com/erraggy/oastables/oaserrors"
)

// Option configures LoadWithOptions.
type Option func(*loadConfig) error

type loadConfig struct {
	filePath   *string
	reader     io.Reader
	bytes      []byte
	sourceName string

	lenient     bool
	maxFileSize int64
	logger      Logger
}

// LoadWithOptions loads a document from exactly one input source:
// WithFilePath, WithReader or WithBytes.
func LoadWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	l := New()
	l.Lenient = cfg.lenient
	if cfg.maxFileSize > 0 {
		l.MaxFileSize = cfg.maxFileSize
	}
	l.Logger = cfg.logger

	switch {
	case cfg.filePath != nil:
		return l.Load(*cfg.filePath)
	case cfg.reader != nil:
		return l.LoadReader(cfg.reader, cfg.name("LoadReader.json"))
	default:
		return l.LoadBytes(cfg.bytes, cfg.name("LoadBytes.json"))
	}
}

func (c *loadConfig) name(fallback string) string {
	if c.sourceName != "" {
		return c.sourceName
	}
	return fallback
}

func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"no input source: use WithFilePath, WithReader or WithBytes",
		"multiple input sources: use only one of WithFilePath, WithReader or WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, &oaserrors.ConfigError{Option: "input", Message: err.Error()}
	}
	return cfg, nil
}

// WithFilePath loads from a file on disk.
func WithFilePath(path string) Option {
	return func(c *loadConfig) error {
		c.filePath = &path
		return nil
	}
}

// WithReader loads from r.
func WithReader(r io.Reader) Option {
	return func(c *loadConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "must not be nil"}
		}
		c.reader = r
		return nil
	}
}

// WithBytes loads from in-memory data.
func WithBytes(data []byte) Option {
	return func(c *loadConfig) error {
		if data == nil {
			data = []byte{}
		}
		c.bytes = data
		return nil
	}
}

// WithSourceName sets the name reported for reader and byte inputs.
func WithSourceName(name string) Option {
	return func(c *loadConfig) error {
		c.sourceName = name
		return nil
	}
}

// WithLenient enables salvage of documents wrapped in surrounding text.
func WithLenient(enabled bool) Option {
	return func(c *loadConfig) error {
		c.lenient = enabled
		return nil
	}
}

// WithMaxFileSize caps the source size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(c *loadConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "maxFileSize", Value: size, Message: "must not be negative"}
		}
		c.maxFileSize = size
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(l Logger) Option {
	return func(c *loadConfig) error {
		c.logger = l
		return nil
	}
}
