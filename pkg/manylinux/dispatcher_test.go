package manylinux

import (
	"bytes"
	"errors"
	"testing"

	"github.com/echocat/slf4g/sdk/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engity-com/manylinux-check/pkg/glibc"
	"github.com/engity-com/manylinux-check/pkg/sys"
)

func TestApplicableTiers(t *testing.T) {
	cases := []struct {
		tag      string
		arch     string
		expected Tiers
	}{
		{"manylinux1", "x86_64", Tiers{Manylinux1}},
		{"manylinux1", "i686", Tiers{Manylinux1}},
		{"manylinux1", "aarch64", nil},
		{"manylinux2010", "x86_64", Tiers{Manylinux1, Manylinux2010}},
		{"manylinux2010", "i686", Tiers{Manylinux1, Manylinux2010}},
		{"manylinux2010", "ppc64le", nil},
		{"manylinux2014", "x86_64", Tiers{Manylinux1, Manylinux2010, Manylinux2014}},
		{"manylinux2014", "i686", Tiers{Manylinux1, Manylinux2010, Manylinux2014}},
		{"manylinux2014", "armv7l", Tiers{Manylinux2014}},
		{"manylinux2014", "aarch64", Tiers{Manylinux2014}},
		{"manylinux_2_28", "x86_64", Tiers{Manylinux1, Manylinux2010, Manylinux2014}},
		{"manylinux_2_28", "s390x", Tiers{Manylinux2014}},
		{"manylinux_", "riscv64", Tiers{Manylinux2014}},
		{"manylinux2014", "amd64", Tiers{Manylinux2014}},
		{"manylinux2014", "X86_64", Tiers{Manylinux2014}},
		{"manylinux2014", "sparc64", Tiers{Manylinux2014}},
		{"manylinux2010", "", nil},
		{"musllinux_1_2", "x86_64", nil},
		{"manylinux2024", "x86_64", nil},
		{"", "", nil},
	}

	for _, c := range cases {
		t.Run(c.tag+"/"+c.arch, func(t *testing.T) {
			actual := ApplicableTiers(c.tag, c.arch)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t,
		"manylinux2014 /usr/bin/python3 is manylinux2014 compatible",
		Verdict{"manylinux2014", "/usr/bin/python3", Manylinux2014, true}.String(),
	)
	assert.Equal(t,
		"manylinux2014 /usr/bin/python3 is NOT manylinux2014 compatible",
		Verdict{"manylinux2014", "/usr/bin/python3", Manylinux2014, false}.String(),
	)
	assert.Equal(t,
		"manylinux_2_28 /opt/python is NOT manylinux1 compatible",
		Verdict{"manylinux_2_28", "/opt/python", Manylinux1, false}.String(),
	)
}

func TestDispatcher_Run(t *testing.T) {
	testlog.Hook(t)

	cases := []struct {
		name             string
		tag              string
		arch             string
		platform         string
		glibc            glibc.Source
		overrides        Overrides
		expectedOutput   string
		expectedExitCode int
	}{{
		name:     "manylinux2014-on-glibc-2.17",
		tag:      "manylinux2014",
		arch:     "x86_64",
		platform: "linux-x86_64",
		glibc:    glibc.Fixed("2.17"),
		expectedOutput: "manylinux2014 /bin/check is manylinux1 compatible\n" +
			"manylinux2014 /bin/check is manylinux2010 compatible\n" +
			"manylinux2014 /bin/check is manylinux2014 compatible\n",
		expectedExitCode: 0,
	}, {
		name:             "manylinux1-on-glibc-2.4",
		tag:              "manylinux1",
		arch:             "x86_64",
		platform:         "linux-x86_64",
		glibc:            glibc.Fixed("2.4"),
		expectedOutput:   "manylinux1 /bin/check is NOT manylinux1 compatible\n",
		expectedExitCode: 1,
	}, {
		name:             "manylinux2014-on-armv7l",
		tag:              "manylinux2014",
		arch:             "armv7l",
		platform:         "linux-armv7l",
		glibc:            glibc.Fixed("2.17"),
		expectedOutput:   "manylinux2014 /bin/check is manylinux2014 compatible\n",
		expectedExitCode: 0,
	}, {
		name:     "manylinux2010-on-glibc-2.5",
		tag:      "manylinux2010",
		arch:     "i686",
		platform: "linux-i686",
		glibc:    glibc.Fixed("2.5"),
		expectedOutput: "manylinux2010 /bin/check is manylinux1 compatible\n" +
			"manylinux2010 /bin/check is NOT manylinux2010 compatible\n",
		expectedExitCode: 1,
	}, {
		name:     "dynamic-tag-without-glibc",
		tag:      "manylinux_2_17_x86_64",
		arch:     "x86_64",
		platform: "linux-x86_64",
		glibc:    glibc.Absent,
		expectedOutput: "manylinux_2_17_x86_64 /bin/check is NOT manylinux1 compatible\n" +
			"manylinux_2_17_x86_64 /bin/check is NOT manylinux2010 compatible\n" +
			"manylinux_2_17_x86_64 /bin/check is NOT manylinux2014 compatible\n",
		expectedExitCode: 1,
	}, {
		name:             "override-rescues-old-glibc",
		tag:              "manylinux1",
		arch:             "x86_64",
		platform:         "linux-x86_64",
		glibc:            glibc.Fixed("2.4"),
		overrides:        FileOverrides{Manylinux1: true},
		expectedOutput:   "manylinux1 /bin/check is manylinux1 compatible\n",
		expectedExitCode: 0,
	}, {
		name:             "requested-arch-differs-from-platform",
		tag:              "manylinux2014",
		arch:             "aarch64",
		platform:         "linux-x86_64",
		glibc:            glibc.Fixed("2.17"),
		expectedOutput:   "manylinux2014 /bin/check is manylinux2014 compatible\n",
		expectedExitCode: 0,
	}, {
		name:             "nothing-applies",
		tag:              "manylinux1",
		arch:             "aarch64",
		platform:         "linux-aarch64",
		glibc:            glibc.Fixed("2.17"),
		expectedOutput:   "",
		expectedExitCode: 0,
	}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			platform := sys.MustNewPlatform(c.platform)
			out := new(bytes.Buffer)
			instance := Dispatcher{
				Checker: Checker{
					Platform:  &platform,
					Source:    c.glibc,
					Overrides: c.overrides,
				},
				Executable: "/bin/check",
				Output:     out,
			}

			actualExitCode, actualErr := instance.Run(c.tag, c.arch)
			require.NoError(t, actualErr)
			assert.Equal(t, c.expectedExitCode, actualExitCode)
			assert.Equal(t, c.expectedOutput, out.String())
		})
	}
}

func TestDispatcher_Run_brokenOutput(t *testing.T) {
	testlog.Hook(t)

	platform := sys.MustNewPlatform("linux-x86_64")
	instance := Dispatcher{
		Checker: Checker{
			Platform: &platform,
			Source:   glibc.Fixed("2.17"),
		},
		Executable: "/bin/check",
		Output:     failingWriter{},
	}

	actualExitCode, actualErr := instance.Run("manylinux1", "x86_64")
	assert.Equal(t, 1, actualExitCode)
	assert.EqualError(t, actualErr, "cannot print verdict of manylinux1: broken pipe")
}

func TestDispatcher_Check_defaultsExecutable(t *testing.T) {
	testlog.Hook(t)

	platform := sys.MustNewPlatform("linux-x86_64")
	instance := Dispatcher{
		Checker: Checker{
			Platform: &platform,
			Source:   glibc.Fixed("2.17"),
		},
	}

	actual := instance.Check("manylinux1", "x86_64")
	require.Len(t, actual, 1)
	assert.NotEmpty(t, actual[0].Executable)
	assert.True(t, actual[0].Compatible)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}
