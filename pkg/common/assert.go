package common

import "fmt"

// Must panics if v is not nil. An optional message (with format arguments)
// is prepended to the error.
func Must(v error, msgAndArgs ...any) {
	if v != nil {
		if len(msgAndArgs) > 0 {
			msg := msgAndArgs[0].(string) + ": %w"
			args := append(msgAndArgs[1:], v)
			panic(fmt.Errorf(msg, args...))
		}
		panic(v)
	}
}

// MustValue returns v or panics like Must if err is not nil.
func MustValue[T any](v T, err error, msgAndArgs ...any) T {
	Must(err, msgAndArgs...)
	return v
}
