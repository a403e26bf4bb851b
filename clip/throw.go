package clip

import "github.com/pkg/errors"

// Threading error returns through the sweep loop, the splitting recursion
// and the classification chain would add a ton of complexity to the code.
// Every error here is an invariant violation rather than a user-recoverable
// condition, so we use panics, and the public API recovers to convert to an
// error.

type ClipError struct{ error }

// Panic with a ClipError.
func fatalf(format string, args ...interface{}) {
	panic(ClipError{errors.Errorf(format, args...)})
}

func HandleClipPanicRecover(r interface{}) error {
	if r != nil {
		if clipError, ok := r.(ClipError); ok {
			return clipError
		}
		panic(r)
	}
	return nil
}
