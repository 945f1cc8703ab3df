package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Node {
	t.Helper()
	n, err := Parse([]byte(src))
	require.NoError(t, err)
	return n
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	root := mustParse(t, `{"zeta": 1, "alpha": 2, "mid": {"b": true, "a": null}}`)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, root.Keys())
	assert.Equal(t, []string{"b", "a"}, root.Get("mid").Keys())
}

func TestParse_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	root := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)

	assert.Equal(t, []string{"a", "b"}, root.Keys())
	assert.Equal(t, "3", root.Get("a").String())
}

func TestParse_Kinds(t *testing.T) {
	root := mustParse(t, `{"s": "x", "n": 1.50, "t": true, "f": false, "z": null, "a": [1], "o": {}}`)

	tests := []struct {
		key  string
		kind Kind
	}{
		{"s", KindString},
		{"n", KindNumber},
		{"t", KindBool},
		{"f", KindBool},
		{"z", KindNull},
		{"a", KindArray},
		{"o", KindObject},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.kind, root.Get(tt.key).Kind())
		})
	}
	assert.Equal(t, "1.50", root.Get("n").String(), "numbers keep their source text")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n ", 0},
		{"truncated", "{\n  \"paths\": ", 2},
		{"trailing comma", "{\"a\": 1,}", 1},
		{"bad literal", "{\n\"a\": tru}", 2},
		{"trailing data", "{} {}", 1},
		{"missing colon", `{"a" 1}`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			var syn *SyntaxError
			require.ErrorAs(t, err, &syn)
			assert.Equal(t, tt.line, syn.Line)
		})
	}
}

func TestNode_NilSafety(t *testing.T) {
	var n *Node

	assert.Nil(t, n.Get("x"))
	assert.Nil(t, n.Lookup("a", "b"))
	assert.Nil(t, n.Members())
	assert.Nil(t, n.Items())
	assert.False(t, n.Has("x"))
	assert.True(t, n.IsNull())
	assert.Equal(t, "", n.String())
	assert.Equal(t, 0, n.Len())

	_, ok := n.AsString()
	assert.False(t, ok)
}

func TestNode_WrongKindAccessors(t *testing.T) {
	root := mustParse(t, `{"list": [1, 2], "name": "pet"}`)

	assert.Nil(t, root.Get("list").Get("x"), "Get on an array reports absence")
	assert.Nil(t, root.Get("name").Items(), "Items on a string reports absence")
	_, ok := root.Get("list").AsString()
	assert.False(t, ok)
	assert.Equal(t, 2, root.Get("list").Len())
}

func TestNode_String(t *testing.T) {
	root := mustParse(t, `{
		"tags": ["pet", "store"],
		"mixed": [1, {"a": "<b>"}],
		"obj": {"z": 1, "a": [true, null]}
	}`)

	assert.Equal(t, "pet, store", root.Get("tags").String())
	assert.Equal(t, `[1,{"a":"<b>"}]`, root.Get("mixed").String())
	assert.Equal(t, `{"z":1,"a":[true,null]}`, root.Get("obj").String())
}

func TestNode_Pointer(t *testing.T) {
	root := mustParse(t, `{
		"definitions": {"Pet": {"type": "object"}, "a/b": {"type": "string"}},
		"list": [{"name": "first"}]
	}`)

	assert.Equal(t, "object", root.Pointer("#/definitions/Pet").Get("type").String())
	assert.Equal(t, "string", root.Pointer("#/definitions/a~1b").Get("type").String())
	assert.Equal(t, "first", root.Pointer("#/list/0/name").String())
	assert.Same(t, root, root.Pointer("#"))
	assert.Nil(t, root.Pointer("#/definitions/Missing"))
	assert.Nil(t, root.Pointer("#/list/9"))
	assert.Nil(t, root.Pointer("other.json#/definitions/Pet"))
}

func TestPosition(t *testing.T) {
	data := []byte("ab\ncd\nef")

	line, col := Position(data, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = Position(data, 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	line, col = Position(data, 100)
	assert.Equal(t, 3, line)
	assert.Equal(t, 3, col)
}
