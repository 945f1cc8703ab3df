// Package oaserrors provides structured error types for oastables.
//
// Import path: github.com/erraggy/oastables/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a missing source apart from a broken one or from an
// unwritable destination.
//
// # Error Types
//
//   - [NotFoundError]: the source path does not resolve to a readable file
//   - [MalformedInputError]: the source is not well-formed JSON, or carries none
//     of the recognized OpenAPI sections
//   - [WriteError]: an output directory or file could not be written
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrNotFound]: Matches any [NotFoundError]
//   - [ErrMalformedInput]: Matches any [MalformedInputError]
//   - [ErrWrite]: Matches any [WriteError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	res, err := loader.New().Load("api.json")
//	if errors.Is(err, oaserrors.ErrMalformedInput) {
//	    var malformed *oaserrors.MalformedInputError
//	    if errors.As(err, &malformed) {
//	        fmt.Printf("syntax error at line %d\n", malformed.Line)
//	    }
//	}
//
// # Error Chaining
//
// All error types support chaining via the Cause field and Unwrap() method:
//
//	var writeErr *oaserrors.WriteError
//	if errors.As(err, &writeErr) && errors.Is(writeErr.Cause, fs.ErrPermission) {
//	    // output directory is read-only
//	}
package oaserrors
