package manylinux

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/engity-com/manylinux-check/pkg/common"
	"github.com/engity-com/manylinux-check/pkg/errors"
)

// Overrides can declare a Tier explicitly (in)compatible. If present, the
// declaration wins over every heuristic.
type Overrides interface {
	Lookup(Tier) (compatible bool, present bool)
}

// NoOverrides never declares anything.
var NoOverrides Overrides = noOverrides{}

type noOverrides struct{}

func (noOverrides) Lookup(Tier) (bool, bool) {
	return false, false
}

// FileOverrides are the declarations of an overrides file like:
//
//	manylinux1_compatible: false
//	manylinux2014_compatible: true
//
// Keys which do not belong to any Tier are ignored.
type FileOverrides map[Tier]bool

func (this FileOverrides) Lookup(t Tier) (bool, bool) {
	v, ok := this[t]
	return v, ok
}

func (this *FileOverrides) LoadFromFile(fn string) error {
	f, err := os.Open(fn)
	if os.IsNotExist(err) {
		return errors.Newf(errors.Config, "overrides file %q does not exist", fn)
	}
	if err != nil {
		return errors.Newf(errors.Config, "cannot open overrides file %q: %w", fn, err)
	}
	defer common.IgnoreCloseError(f)

	return this.LoadFromYaml(f, fn)
}

func (this *FileOverrides) LoadFromYaml(reader io.Reader, fn string) error {
	if fn == "" {
		fn = "<anonymous>"
	}

	var raw map[string]yaml.Node
	// An empty document declares nothing.
	if err := yaml.NewDecoder(reader).Decode(&raw); err != nil && err != io.EOF {
		return errors.Newf(errors.Config, "cannot parse overrides file %q: %w", fn, err)
	}

	buf := FileOverrides{}
	for _, t := range AllTiers() {
		node, ok := raw[t.OverrideKey()]
		if !ok {
			continue
		}
		var v bool
		if err := node.Decode(&v); err != nil {
			return errors.Newf(errors.Config, "overrides file %q contains illegal value for %s: %w", fn, t.OverrideKey(), err)
		}
		buf[t] = v
	}

	*this = buf
	return nil
}

// OverridesRef references an overrides file. It can be used as a command line
// flag value; the file is loaded as soon as the value is set.
type OverridesRef struct {
	v  FileOverrides
	fn string
}

func (this OverridesRef) IsZero() bool {
	return len(this.fn) == 0
}

func (this OverridesRef) String() string {
	return this.fn
}

func (this OverridesRef) MarshalText() ([]byte, error) {
	return []byte(this.String()), nil
}

func (this *OverridesRef) UnmarshalText(text []byte) error {
	buf := OverridesRef{
		fn: string(text),
	}

	if len(buf.fn) > 0 {
		if err := buf.v.LoadFromFile(buf.fn); err != nil {
			return err
		}
	}

	*this = buf
	return nil
}

func (this *OverridesRef) Set(text string) error {
	return this.UnmarshalText([]byte(text))
}

// Get returns NoOverrides if no file is referenced.
func (this *OverridesRef) Get() Overrides {
	if this.IsZero() {
		return NoOverrides
	}
	return this.v
}

func (this *OverridesRef) GetFilename() string {
	return this.fn
}
