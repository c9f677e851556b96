package manylinux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/engity-com/manylinux-check/pkg/sys"
)

// legacyArchs are the only architectures covered by manylinux1 and
// manylinux2010.
var legacyArchs = sys.Archs{sys.ArchX8664, sys.ArchI686}

// ApplicableTiers returns all tiers which have to be checked for the
// requested tag and architecture. Newer tags include the older tiers as long
// as the architecture is covered by them.
func ApplicableTiers(tag, arch string) Tiers {
	dynamic := strings.HasPrefix(tag, DynamicTagPrefix)
	isTag := func(candidates ...Tier) bool {
		if dynamic {
			return true
		}
		for _, candidate := range candidates {
			if tag == candidate.String() {
				return true
			}
		}
		return false
	}
	var requestedArch sys.Arch
	legacyArch := requestedArch.Set(arch) == nil && legacyArchs.Contains(requestedArch)

	var result Tiers
	if legacyArch && isTag(Manylinux1, Manylinux2010, Manylinux2014) {
		result = append(result, Manylinux1)
	}
	if legacyArch && isTag(Manylinux2010, Manylinux2014) {
		result = append(result, Manylinux2010)
	}
	if isTag(Manylinux2014) {
		result = append(result, Manylinux2014)
	}
	return result
}

// Verdict is the result of one checked Tier.
type Verdict struct {
	Tag        string
	Executable string
	Tier       Tier
	Compatible bool
}

func (this Verdict) String() string {
	if this.Compatible {
		return fmt.Sprintf("%s %s is %v compatible", this.Tag, this.Executable, this.Tier)
	}
	return fmt.Sprintf("%s %s is NOT %v compatible", this.Tag, this.Executable, this.Tier)
}

// Dispatcher checks all tiers applicable to a request and reports them.
type Dispatcher struct {
	Checker Checker

	// Executable reported in every verdict. Defaults to os.Executable().
	Executable string

	// Output receives one line per verdict. Defaults to os.Stdout.
	Output io.Writer
}

// Check evaluates every applicable tier.
func (this Dispatcher) Check(tag, arch string) []Verdict {
	tiers := ApplicableTiers(tag, arch)
	if len(tiers) == 0 {
		this.Checker.logger().
			With("tag", tag).
			With("arch", arch).
			Info("no tier applies to requested tag and architecture")
		return nil
	}

	executable := this.executable()
	result := make([]Verdict, len(tiers))
	for i, t := range tiers {
		result[i] = Verdict{
			Tag:        tag,
			Executable: executable,
			Tier:       t,
			Compatible: this.Checker.IsCompatible(t),
		}
	}
	return result
}

// Run checks all applicable tiers, prints one line per tier and returns the
// exit code: 0 if all of them are compatible, 1 otherwise.
func (this Dispatcher) Run(tag, arch string) (int, error) {
	out := this.output()
	exitCode := 0
	for _, v := range this.Check(tag, arch) {
		if _, err := fmt.Fprintln(out, v.String()); err != nil {
			return 1, fmt.Errorf("cannot print verdict of %v: %w", v.Tier, err)
		}
		if !v.Compatible {
			exitCode = 1
		}
	}
	return exitCode, nil
}

func (this Dispatcher) executable() string {
	if v := this.Executable; v != "" {
		return v
	}
	v, err := os.Executable()
	if err != nil {
		return os.Args[0]
	}
	return v
}

func (this Dispatcher) output() io.Writer {
	if v := this.Output; v != nil {
		return v
	}
	return os.Stdout
}
