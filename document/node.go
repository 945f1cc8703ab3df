package document

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Kind identifies the variant held by a Node.
type Kind uint8

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is a JSON number, kept as its source text.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is an ordered list of nodes.
	KindArray
	// KindObject is an ordered list of key/value members.
	KindObject
)

// String returns the lower-case JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object node.
type Member struct {
	Key   string
	Value *Node
}

// Node is one value in a decoded document.
// Nodes are immutable once decoding has finished.
type Node struct {
	kind    Kind
	text    string // string value or number literal
	boolean bool
	items   []*Node
	members []Member
	index   map[string]int
}

// Kind returns the node's variant. A nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// IsObject reports whether n is an object.
func (n *Node) IsObject() bool { return n != nil && n.kind == KindObject }

// IsArray reports whether n is an array.
func (n *Node) IsArray() bool { return n != nil && n.kind == KindArray }

// IsNull reports whether n is absent or the null literal.
func (n *Node) IsNull() bool { return n == nil || n.kind == KindNull }

// IsScalar reports whether n is a string, number or boolean.
func (n *Node) IsScalar() bool {
	if n == nil {
		return false
	}
	return n.kind == KindString || n.kind == KindNumber || n.kind == KindBool
}

// Get returns the value stored under key, or nil when n is not an object or
// has no such key.
func (n *Node) Get(key string) *Node {
	if !n.IsObject() {
		return nil
	}
	i, ok := n.index[key]
	if !ok {
		return nil
	}
	return n.members[i].Value
}

// Has reports whether n is an object containing key.
func (n *Node) Has(key string) bool {
	if !n.IsObject() {
		return false
	}
	_, ok := n.index[key]
	return ok
}

// Lookup follows a chain of object keys, returning nil as soon as one is missing.
func (n *Node) Lookup(keys ...string) *Node {
	cur := n
	for _, k := range keys {
		cur = cur.Get(k)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Members returns the object's members in source order, or nil.
func (n *Node) Members() []Member {
	if !n.IsObject() {
		return nil
	}
	return n.members
}

// Keys returns the object's keys in source order, or nil.
func (n *Node) Keys() []string {
	if !n.IsObject() {
		return nil
	}
	keys := make([]string, len(n.members))
	for i, m := range n.members {
		keys[i] = m.Key
	}
	return keys
}

// Items returns the array's elements, or nil.
func (n *Node) Items() []*Node {
	if !n.IsArray() {
		return nil
	}
	return n.items
}

// Len returns the number of members or elements, and 0 for scalars.
func (n *Node) Len() int {
	switch {
	case n.IsObject():
		return len(n.members)
	case n.IsArray():
		return len(n.items)
	default:
		return 0
	}
}

// AsString returns the value of a string node.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.text, true
}

// AsBool returns the value of a boolean node.
func (n *Node) AsBool() (bool, bool) {
	if n == nil || n.kind != KindBool {
		return false, false
	}
	return n.boolean, true
}

// AsNumber returns the source text of a number node.
func (n *Node) AsNumber() (string, bool) {
	if n == nil || n.kind != KindNumber {
		return "", false
	}
	return n.text, true
}

// String renders n as a single table cell.
// Strings and numbers render as their text, booleans as "true"/"false", and
// null or absent nodes as "". Arrays of scalars are joined with ", "; any other
// container renders as compact JSON in source order.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	switch n.kind {
	case KindString, KindNumber:
		return n.text
	case KindBool:
		if n.boolean {
			return "true"
		}
		return "false"
	case KindArray:
		parts := make([]string, 0, len(n.items))
		for _, item := range n.items {
			if !item.IsScalar() && !item.IsNull() {
				return n.compactJSON()
			}
			parts = append(parts, item.String())
		}
		return strings.Join(parts, ", ")
	case KindObject:
		return n.compactJSON()
	default:
		return ""
	}
}

// MarshalJSON encodes n as compact JSON, keeping object keys in source order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) compactJSON() string {
	data, err := n.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func (n *Node) appendJSON(buf *bytes.Buffer) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if n.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(n.text)
	case KindString:
		return appendQuoted(buf, n.text)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range n.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendQuoted(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// appendQuoted writes s as a JSON string without HTML escaping.
func appendQuoted(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// set adds or replaces a member. A repeated key keeps its first position and
// takes the last value.
func (n *Node) set(key string, value *Node) {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if i, ok := n.index[key]; ok {
		n.members[i].Value = value
		return
	}
	n.index[key] = len(n.members)
	n.members = append(n.members, Member{Key: key, Value: value})
}
