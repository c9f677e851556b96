package sys

import (
	"time"
)

type Version interface {
	Title() string
	Version() string
	Revision() string
	BuildAt() time.Time
	Vendor() string
	GoVersion() string
	Platform() Platform
}

func FormatVersion(v Version, format VersionFormat) string {
	switch format {
	case VersionFormatLong:
		return v.Title() + `

Version:  ` + v.Version() + `
Revision: ` + v.Revision() + `
Build:    ` + v.BuildAt().Format(time.RFC3339) + ` by ` + v.Vendor() + `
Go:       ` + v.GoVersion() + `
Platform: ` + v.Platform().String()
	default:
		return v.Title() + ` ` + v.Version() + `-` + v.Revision() + `@` + v.Platform().String() + ` ` + v.BuildAt().Format(time.RFC3339)
	}
}

type VersionFormat uint8

const (
	VersionFormatShort VersionFormat = iota
	VersionFormatLong
)
