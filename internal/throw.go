package internal

import "github.com/pkg/errors"

// Drawing is a stack of small helpers that all assume a valid triangle and a
// working font. Rather than thread errors through every one of them, they
// panic with a RenderError, and the public Render recovers it.

type RenderError struct {
	error
}

// Panic with a RenderError.
func Fatalf(format string, args ...interface{}) {
	panic(RenderError{errors.Errorf(format, args...)})
}

// Convert a recovered RenderError into an error. Any other panic value,
// runtime errors included, is re-raised.
func HandleRenderPanicRecover(r interface{}) error {
	if r != nil {
		if renderError, ok := r.(RenderError); ok {
			return renderError.error
		}
		panic(r)
	}
	return nil
}
