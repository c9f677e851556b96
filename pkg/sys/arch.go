package sys

import (
	"fmt"
	"slices"
	"strings"
)

// Arch is a CPU architecture named the way the kernel (uname -m) and the
// Python packaging world name it. Use Arch.Go() for the GOARCH equivalent.
type Arch uint8

const (
	ArchUnknown Arch = iota
	ArchX8664
	ArchI686
	ArchAarch64
	ArchArmV6l
	ArchArmV7l
	ArchPpc64
	ArchPpc64Le
	ArchS390x
	ArchRiscV64
	ArchMips64Le
	ArchLoong64
)

type archDetails struct {
	name   string
	goarch string
}

func (this Arch) String() string {
	v, ok := archToDetails[this]
	if !ok {
		return fmt.Sprintf("illegal-arch-%d", this)
	}
	return v.name
}

func (this Arch) Go() string {
	v, ok := archToDetails[this]
	if !ok {
		return fmt.Sprintf("illegal-arch-%d", this)
	}
	return v.goarch
}

func (this Arch) MarshalText() ([]byte, error) {
	v, ok := archToDetails[this]
	if !ok {
		return nil, fmt.Errorf("illegal-arch: %d", this)
	}
	return []byte(v.name), nil
}

func (this *Arch) UnmarshalText(in []byte) error {
	v, ok := stringToArch[string(in)]
	if !ok {
		return fmt.Errorf("illegal-arch: %s", string(in))
	}
	*this = v
	return nil
}

func (this *Arch) Set(plain string) error {
	return this.UnmarshalText([]byte(plain))
}

// SetGo sets the architecture from a GOARCH value. GOARCH=arm is ambiguous
// and resolves to armv7l.
func (this *Arch) SetGo(plain string) error {
	v, ok := goarchToArch[plain]
	if !ok {
		return fmt.Errorf("illegal-goarch: %s", plain)
	}
	*this = v
	return nil
}

func (this Arch) IsZero() bool {
	return this == 0
}

func (this Arch) Validate() error {
	_, err := this.MarshalText()
	return err
}

type Archs []Arch

func (this Archs) String() string {
	return strings.Join(this.Strings(), ",")
}

func (this Archs) Strings() []string {
	strs := make([]string, len(this))
	for i, v := range this {
		strs[i] = v.String()
	}
	return strs
}

func (this Archs) Contains(v Arch) bool {
	return slices.Contains(this, v)
}

var (
	archToDetails = map[Arch]archDetails{
		ArchX8664:    {name: "x86_64", goarch: "amd64"},
		ArchI686:     {name: "i686", goarch: "386"},
		ArchAarch64:  {name: "aarch64", goarch: "arm64"},
		ArchArmV6l:   {name: "armv6l", goarch: "arm"},
		ArchArmV7l:   {name: "armv7l", goarch: "arm"},
		ArchPpc64:    {name: "ppc64", goarch: "ppc64"},
		ArchPpc64Le:  {name: "ppc64le", goarch: "ppc64le"},
		ArchS390x:    {name: "s390x", goarch: "s390x"},
		ArchRiscV64:  {name: "riscv64", goarch: "riscv64"},
		ArchMips64Le: {name: "mips64le", goarch: "mips64le"},
		ArchLoong64:  {name: "loongarch64", goarch: "loong64"},
	}
	stringToArch = func(in map[Arch]archDetails) map[string]Arch {
		result := make(map[string]Arch, len(in))
		for k, v := range in {
			result[v.name] = k
		}
		return result
	}(archToDetails)
	goarchToArch = func(in map[Arch]archDetails) map[string]Arch {
		result := make(map[string]Arch, len(in))
		for k, v := range in {
			if k == ArchArmV6l {
				continue
			}
			result[v.goarch] = k
		}
		return result
	}(archToDetails)
)
