package glibc

import (
	log "github.com/echocat/slf4g"
)

// Matcher checks the version reported by Source against a required one.
type Matcher struct {
	Source Source
	Logger log.Logger
}

// HaveCompatible reports whether the GNU C library has exactly the given major
// version and at least the given minor version. A missing library is not
// compatible. A version string which is not of the form <major>.<minor> means
// the environment is broken and causes a panic.
func (this Matcher) HaveCompatible(major, minimumMinor int) bool {
	l := this.logger()

	plain, ok := this.source().LibcVersion()
	if !ok {
		l.Debug("process is not linked against glibc")
		return false
	}

	v := MustParseVersion(plain)
	result := v.Satisfies(major, minimumMinor)
	l.With("version", v).
		With("required", Version{major, minimumMinor}).
		With("compatible", result).
		Debug("glibc version checked")
	return result
}

func (this Matcher) source() Source {
	if v := this.Source; v != nil {
		return v
	}
	return ProcessSource
}

func (this Matcher) logger() log.Logger {
	if v := this.Logger; v != nil {
		return v
	}
	return log.GetRootLogger()
}

// HaveCompatible is a shortcut for Matcher.HaveCompatible with the given source.
func HaveCompatible(source Source, major, minimumMinor int) bool {
	return Matcher{Source: source}.HaveCompatible(major, minimumMinor)
}
