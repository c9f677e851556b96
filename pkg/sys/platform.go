package sys

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Platform is the operating system and CPU architecture a process runs on.
// String() renders it like Python's sysconfig.get_platform(), e.g. linux-x86_64.
type Platform struct {
	Os   Os
	Arch Arch
}

func (this Platform) String() string {
	o, a := "unknown", "unknown"
	if !this.Os.IsZero() {
		o = this.Os.String()
	}
	if !this.Arch.IsZero() {
		a = this.Arch.String()
	}
	return o + "-" + a
}

func (this Platform) MarshalText() ([]byte, error) {
	if err := this.Validate(); err != nil {
		return nil, err
	}
	return []byte(this.String()), nil
}

func (this *Platform) UnmarshalText(in []byte) error {
	plain := string(in)
	o, a, ok := strings.Cut(plain, "-")
	if !ok {
		return fmt.Errorf("illegal-platform: %s", plain)
	}
	var buf Platform
	if err := buf.Os.Set(o); err != nil {
		return fmt.Errorf("illegal-platform: %s: %w", plain, err)
	}
	if err := buf.Arch.Set(a); err != nil {
		return fmt.Errorf("illegal-platform: %s: %w", plain, err)
	}
	*this = buf
	return nil
}

func (this *Platform) Set(plain string) error {
	return this.UnmarshalText([]byte(plain))
}

func (this Platform) IsZero() bool {
	return this.Os.IsZero() && this.Arch.IsZero()
}

func (this Platform) Validate() error {
	if err := this.Os.Validate(); err != nil {
		return err
	}
	return this.Arch.Validate()
}

func MustNewPlatform(plain string) Platform {
	var buf Platform
	if err := buf.Set(plain); err != nil {
		panic(err)
	}
	return buf
}

type Platforms []Platform

func (this Platforms) String() string {
	return strings.Join(this.Strings(), ",")
}

func (this Platforms) Strings() []string {
	strs := make([]string, len(this))
	for i, v := range this {
		strs[i] = v.String()
	}
	return strs
}

func (this Platforms) Contains(v Platform) bool {
	return slices.Contains(this, v)
}

// ResolvePlatform returns the platform of the current process. It never
// fails; parts that cannot be identified stay zero.
func ResolvePlatform() Platform {
	return resolvePlatform(runtime.GOOS, runtime.GOARCH, host.KernelArch)
}

func resolvePlatform(goos, goarch string, kernelArch func() (string, error)) Platform {
	var result Platform
	_ = result.Os.Set(goos)

	// GOARCH=arm does not tell armv6l from armv7l, the kernel does.
	if goarch == "arm" || result.Arch.SetGo(goarch) != nil {
		if machine, err := kernelArch(); err == nil {
			var buf Arch
			if buf.Set(strings.TrimSpace(machine)) == nil && buf.Go() == goarch {
				result.Arch = buf
			}
		}
		if result.Arch.IsZero() {
			_ = result.Arch.SetGo(goarch)
		}
	}

	return result
}
