package document

import (
	"net/url"
	"strconv"
	"strings"
)

// Pointer resolves a local JSON reference such as "#/definitions/Pet" against n.
// It returns nil for external references or paths that do not exist.
func (n *Node) Pointer(ref string) *Node {
	if !strings.HasPrefix(ref, "#") {
		return nil
	}
	frag := ref[1:]
	if unescaped, err := url.PathUnescape(frag); err == nil {
		frag = unescaped
	}
	if frag == "" {
		return n
	}
	if !strings.HasPrefix(frag, "/") {
		return nil
	}

	cur := n
	for _, token := range strings.Split(frag[1:], "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")
		switch {
		case cur.IsObject():
			cur = cur.Get(token)
		case cur.IsArray():
			i, err := strconv.Atoi(token)
			if err != nil || i < 0 || i >= len(cur.items) {
				return nil
			}
			cur = cur.items[i]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Ref returns the "$ref" string of an object node, if it has one.
func (n *Node) Ref() (string, bool) {
	return n.Get("$ref").AsString()
}
