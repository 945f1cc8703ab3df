// Package options provides shared utilities for option validation across packages.
package options

import "errors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return errors.New(noSourceMsg)
	case count > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
