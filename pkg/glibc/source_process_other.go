//go:build !linux || !cgo

package glibc

type processSource struct{}

func (processSource) LibcVersion() (string, bool) {
	return "", false
}
