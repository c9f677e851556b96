package glibc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/engity-com/manylinux-check/pkg/common"
	"github.com/engity-com/manylinux-check/pkg/errors"
)

// Version of the GNU C library as reported by gnu_get_libc_version(), which
// is always of the form <major>.<minor>.
type Version struct {
	Major int
	Minor int
}

func ParseVersion(plain string) (Version, error) {
	fail := func(err error) (Version, error) {
		return Version{}, err
	}
	failf := func(msg string, args ...any) (Version, error) {
		return fail(errors.System.Newf(msg, args...))
	}

	parts := strings.Split(plain, ".")
	if len(parts) != 2 {
		return failf("libc version %q does not consist of exactly two components", plain)
	}

	var components [2]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return failf("libc version %q contains illegal component %q: %w", plain, part, err)
		}
		components[i] = v
	}

	return Version{components[0], components[1]}, nil
}

// MustParseVersion is like ParseVersion but panics if plain is malformed.
func MustParseVersion(plain string) Version {
	return common.MustValue(ParseVersion(plain))
}

func (this Version) String() string {
	return strconv.Itoa(this.Major) + "." + strconv.Itoa(this.Minor)
}

func (this *Version) Set(plain string) error {
	buf, err := ParseVersion(plain)
	if err != nil {
		return err
	}
	*this = buf
	return nil
}

func (this Version) MarshalText() ([]byte, error) {
	return []byte(this.String()), nil
}

func (this *Version) UnmarshalText(in []byte) error {
	return this.Set(string(in))
}

func (this Version) IsZero() bool {
	return this.Major == 0 && this.Minor == 0
}

// Satisfies reports whether this version has exactly the given major and at
// least the given minor. Other majors never satisfy, in either direction.
func (this Version) Satisfies(major, minimumMinor int) bool {
	if this.Major < 0 || this.Minor < 0 {
		// Not representable as semver.
		return this.Major == major && this.Minor >= minimumMinor
	}
	c, err := semver.NewConstraint(fmt.Sprintf(">= %d.%d, < %d", major, minimumMinor, major+1))
	if err != nil {
		return false
	}
	return c.Check(this.semver())
}

func (this Version) semver() *semver.Version {
	return semver.New(uint64(this.Major), uint64(this.Minor), 0, "", "")
}
