package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/engity-com/manylinux-check/pkg/sys"
)

var (
	title    = "Engity's manylinux-check"
	version  = "development"
	revision = "HEAD"
	buildAt  = ""
	vendor   = "unknown"

	buildAtV time.Time
)

func doVersion(to io.Writer, long bool) error {
	f := sys.VersionFormatShort
	if long {
		f = sys.VersionFormatLong
	}
	_, err := fmt.Fprintln(to, sys.FormatVersion(versionV, f))
	return err
}

func init() {
	//goland:noinspection GoBoolExpressions
	if buildAt == "" {
		buildAtV = time.Now()
	} else if v, err := time.Parse(time.RFC3339, buildAt); err != nil {
		panic(fmt.Errorf("illegal main.buildAt value (%q): %w", buildAt, err))
	} else {
		buildAtV = v
	}
}

var versionV = &versionT{}

type versionT struct{}

func (this versionT) Title() string {
	return title
}

func (this versionT) Version() string {
	return version
}

func (this versionT) Revision() string {
	return revision
}

func (this versionT) BuildAt() time.Time {
	return buildAtV
}

func (this versionT) Vendor() string {
	return vendor
}

func (this versionT) GoVersion() string {
	return strings.TrimPrefix(runtime.Version(), "go")
}

func (this versionT) Platform() sys.Platform {
	return sys.ResolvePlatform()
}
