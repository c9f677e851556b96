package manylinux

import (
	log "github.com/echocat/slf4g"

	"github.com/engity-com/manylinux-check/pkg/glibc"
	"github.com/engity-com/manylinux-check/pkg/sys"
)

// Checker decides whether a Platform is compatible with a Tier.
type Checker struct {
	// Platform to check. Defaults to sys.ResolvePlatform().
	Platform *sys.Platform

	// Source of the glibc version. Defaults to glibc.ProcessSource.
	Source glibc.Source

	// Overrides which win over the glibc heuristic. Defaults to NoOverrides.
	Overrides Overrides

	Logger log.Logger
}

// IsCompatible evaluates, in this order: whether the tier is defined for the
// platform at all, whether an override declares the result and finally
// whether the glibc in use is recent enough. The Source is not consulted
// for platforms outside of the tier.
func (this Checker) IsCompatible(t Tier) bool {
	platform := this.platform()
	l := this.logger().
		With("tier", t).
		With("platform", platform)

	if !t.Platforms().Contains(platform) {
		l.Debug("platform is not supported by tier")
		return false
	}

	if v, ok := this.overrides().Lookup(t); ok {
		l.With("compatible", v).Debug("tier compatibility declared by override")
		return v
	}

	required := t.MinimumGlibc()
	return glibc.Matcher{
		Source: this.Source,
		Logger: l,
	}.HaveCompatible(required.Major, required.Minor)
}

func (this Checker) platform() sys.Platform {
	if v := this.Platform; v != nil {
		return *v
	}
	return sys.ResolvePlatform()
}

func (this Checker) overrides() Overrides {
	if v := this.Overrides; v != nil {
		return v
	}
	return NoOverrides
}

func (this Checker) logger() log.Logger {
	if v := this.Logger; v != nil {
		return v
	}
	return log.GetRootLogger()
}
