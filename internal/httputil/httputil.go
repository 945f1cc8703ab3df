// Package httputil provides HTTP method and OpenAPI key helpers.
package httputil

import "strings"

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

var methods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
}

// IsMethod reports whether key names an operation in a path item.
// The comparison is case-insensitive.
func IsMethod(key string) bool {
	return methods[strings.ToLower(key)]
}

// IsExtension reports whether key is a specification extension ("x-...").
func IsExtension(key string) bool {
	return len(key) >= 2 && (key[0] == 'x' || key[0] == 'X') && key[1] == '-'
}
