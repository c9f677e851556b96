package glibc

// Source reports the version string of the GNU C library. ok is false if
// there is no GNU C library to ask.
type Source interface {
	LibcVersion() (version string, ok bool)
}

// ProcessSource asks the GNU C library the current process is linked
// against. Processes without cgo or outside of linux never have one.
var ProcessSource Source = processSource{}

// Absent is a Source without any GNU C library.
var Absent Source = SourceFunc(func() (string, bool) {
	return "", false
})

// Fixed is a Source which always reports itself as version.
type Fixed string

func (this Fixed) LibcVersion() (string, bool) {
	return string(this), true
}

type SourceFunc func() (version string, ok bool)

func (this SourceFunc) LibcVersion() (string, bool) {
	return this()
}
