package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SyntaxError describes why data could not be decoded as a single JSON value.
type SyntaxError struct {
	// Msg describes the problem
	Msg string
	// Offset is the byte offset where the problem was detected
	Offset int64
	// Line and Column are 1-based and derived from Offset
	Line   int
	Column int
}

// Error returns a human-readable error message.
func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return e.Msg
}

// Parse decodes data as exactly one JSON value.
// Object key order is preserved. Trailing non-whitespace data is an error.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeValue(dec)
	if err != nil {
		return nil, syntaxError(data, dec, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, syntaxError(data, dec, errors.New("unexpected data after top-level value"))
	}
	return root, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
		}
	case string:
		return &Node{kind: KindString, text: v}, nil
	case json.Number:
		return &Node{kind: KindNumber, text: v.String()}, nil
	case bool:
		return &Node{kind: KindBool, boolean: v}, nil
	case nil:
		return &Node{kind: KindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	obj := &Node{kind: KindObject, index: make(map[string]int)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.set(key, value)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	arr := &Node{kind: KindArray}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.items = append(arr.items, item)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return arr, nil
}

// syntaxError locates err in data. The decoder's own offsets are not always
// absolute, so the position comes from a full-buffer validation pass.
func syntaxError(data []byte, dec *json.Decoder, err error) *SyntaxError {
	if len(bytes.TrimSpace(data)) == 0 {
		return &SyntaxError{Msg: "empty document"}
	}
	var v any
	var jsonErr *json.SyntaxError
	if uerr := json.Unmarshal(data, &v); errors.As(uerr, &jsonErr) {
		return newSyntaxError(data, jsonErr.Offset, jsonErr.Error())
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return newSyntaxError(data, int64(len(data)), "unexpected end of JSON input")
	}
	return newSyntaxError(data, dec.InputOffset(), err.Error())
}

func newSyntaxError(data []byte, offset int64, msg string) *SyntaxError {
	line, col := Position(data, offset)
	return &SyntaxError{Msg: msg, Offset: offset, Line: line, Column: col}
}

// Position converts a byte offset into a 1-based line and column.
func Position(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	column = int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, column
}
