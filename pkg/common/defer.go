package common

import "io"

func IgnoreError(when func() error) {
	if when != nil {
		_ = when()
	}
}

func IgnoreCloseError(when io.Closer) {
	if when != nil {
		IgnoreError(when.Close)
	}
}
