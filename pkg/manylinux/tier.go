package manylinux

import (
	"fmt"
	"strings"

	"github.com/engity-com/manylinux-check/pkg/glibc"
	"github.com/engity-com/manylinux-check/pkg/sys"
)

// Tier is one of the historical manylinux compatibility profiles.
type Tier uint8

const (
	TierUnknown Tier = iota
	Manylinux1
	Manylinux2010
	Manylinux2014
)

// DynamicTagPrefix starts every tag of the form manylinux_<glibc major>_<glibc minor>_<arch>.
const DynamicTagPrefix = "manylinux_"

type tierDetails struct {
	name      string
	platforms sys.Platforms
	glibc     glibc.Version
}

func (this Tier) String() string {
	v, ok := tierToDetails[this]
	if !ok {
		return fmt.Sprintf("illegal-tier-%d", this)
	}
	return v.name
}

// OverrideKey is the name of the flag which can force the result of this tier.
func (this Tier) OverrideKey() string {
	return this.String() + "_compatible"
}

// Platforms the tier is defined for at all.
func (this Tier) Platforms() sys.Platforms {
	return tierToDetails[this].platforms
}

// MinimumGlibc is the oldest glibc the tier requires.
func (this Tier) MinimumGlibc() glibc.Version {
	return tierToDetails[this].glibc
}

func (this Tier) MarshalText() ([]byte, error) {
	v, ok := tierToDetails[this]
	if !ok {
		return nil, fmt.Errorf("illegal-tier: %d", this)
	}
	return []byte(v.name), nil
}

func (this *Tier) UnmarshalText(in []byte) error {
	v, ok := stringToTier[string(in)]
	if !ok {
		return fmt.Errorf("illegal-tier: %s", string(in))
	}
	*this = v
	return nil
}

func (this *Tier) Set(plain string) error {
	return this.UnmarshalText([]byte(plain))
}

func (this Tier) IsZero() bool {
	return this == 0
}

func (this Tier) Validate() error {
	_, err := this.MarshalText()
	return err
}

type Tiers []Tier

func (this Tiers) String() string {
	return strings.Join(this.Strings(), ",")
}

func (this Tiers) Strings() []string {
	strs := make([]string, len(this))
	for i, v := range this {
		strs[i] = v.String()
	}
	return strs
}

// AllTiers in ascending order.
func AllTiers() Tiers {
	return Tiers{Manylinux1, Manylinux2010, Manylinux2014}
}

func platforms(in ...string) sys.Platforms {
	result := make(sys.Platforms, len(in))
	for i, v := range in {
		result[i] = sys.MustNewPlatform(v)
	}
	return result
}

var (
	// See PEP 513, PEP 571 and PEP 599. The glibc versions are the ones of
	// CentOS 5, 6 and 7.
	tierToDetails = map[Tier]tierDetails{
		Manylinux1: {
			name:      "manylinux1",
			platforms: platforms("linux-x86_64", "linux-i686"),
			glibc:     glibc.Version{Major: 2, Minor: 5},
		},
		Manylinux2010: {
			name:      "manylinux2010",
			platforms: platforms("linux-x86_64", "linux-i686"),
			glibc:     glibc.Version{Major: 2, Minor: 12},
		},
		Manylinux2014: {
			name: "manylinux2014",
			platforms: platforms(
				"linux-x86_64",
				"linux-i686",
				"linux-aarch64",
				"linux-armv7l",
				"linux-ppc64",
				"linux-ppc64le",
				"linux-s390x",
				"linux-riscv64",
			),
			glibc: glibc.Version{Major: 2, Minor: 17},
		},
	}
	stringToTier = func(in map[Tier]tierDetails) map[string]Tier {
		result := make(map[string]Tier, len(in))
		for k, v := range in {
			result[v.name] = k
		}
		return result
	}(tierToDetails)
)
