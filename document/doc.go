// Package document provides an order-preserving tree representation of a JSON
// OpenAPI document.
//
// A decoded document is a tree of [Node] values, each tagged with a [Kind]
// (null, bool, number, string, array or object). Object members keep the order
// in which their keys appear in the source, so anything derived from the tree
// (rows, sheets, reports) is deterministic relative to the input.
//
// Every accessor is safe to call on a nil *Node and on a node of the wrong
// kind; it simply reports absence. This lets callers write explicit capability
// checks without guarding each step:
//
//	root, err := document.Parse(data)
//	if err != nil {
//		return err
//	}
//	for _, m := range root.Get("paths").Members() {
//		if !m.Value.IsObject() {
//			continue
//		}
//		summary, _ := m.Value.Get("get").Get("summary").AsString()
//		fmt.Println(m.Key, summary)
//	}
//
// Numbers keep their source text, so "1.0" is rendered as "1.0" and large
// integers are never rounded through float64.
//
// Local JSON references are followed with [Node.Pointer]:
//
//	pet := root.Pointer("#/definitions/Pet")
package document
