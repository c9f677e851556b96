package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/native"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/engity-com/manylinux-check/pkg/glibc"
	"github.com/engity-com/manylinux-check/pkg/logging"
	"github.com/engity-com/manylinux-check/pkg/manylinux"
	"github.com/engity-com/manylinux-check/pkg/sys"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code of the process.
func run(args []string, stdout, stderr io.Writer) (exitCode int) {
	terminated := false
	app := kingpin.New("manylinux-check", "Checks whether the current platform is compatible with the manylinux tiers implied by a requested tag.").
		UsageWriter(stderr).
		ErrorWriter(stderr).
		Terminate(func(i int) {
			terminated = true
			exitCode = i
		})

	logging.ConfigureLoggingForFlags(app, native.DefaultProvider, stderr)

	var cmd command
	cmd.registerFlags(app)

	app.Flag("version", "Show version details of this executable.").
		PreAction(func(*kingpin.ParseContext) error {
			terminated = true
			return doVersion(stdout, cmd.longVersion)
		}).
		Bool()
	app.Flag("version.long", "Show version details in long format, if --version is set.").
		BoolVar(&cmd.longVersion)

	_, err := app.Parse(args)
	if terminated {
		// --help or --version were handled, positional arguments do not matter.
		return exitCode
	}
	if err != nil {
		// Invalid command line, reported the way kingpin reports usage errors.
		app.Errorf("%v, try --help", err)
		return 1
	}

	return cmd.run(stdout)
}

type command struct {
	tag         string
	arch        string
	overrides   manylinux.OverridesRef
	longVersion bool
}

func (this *command) registerFlags(app *kingpin.Application) {
	app.Flag("overrides", "YAML file which explicitly declares tiers (in)compatible, like manylinux1_compatible: true.").
		PlaceHolder("<file>").
		SetValue(&this.overrides)
	app.Arg("tag", "Requested tag: manylinux1, manylinux2010, manylinux2014 or manylinux_<major>_<minor>_<arch>.").
		Required().
		StringVar(&this.tag)
	app.Arg("arch", "Requested CPU architecture, like x86_64 or aarch64.").
		Required().
		StringVar(&this.arch)
}

func (this *command) run(stdout io.Writer) int {
	platform := sys.ResolvePlatform()
	l := log.With("platform", platform)
	if distribution, family, distributionVersion, err := host.PlatformInformation(); err == nil {
		l = l.With("distribution", distribution).
			With("family", family).
			With("distributionVersion", distributionVersion)
	}
	l.With("tag", this.tag).
		With("arch", this.arch).
		With("overrides", this.overrides.GetFilename()).
		Debug("checking manylinux compatibility")
	reportMissingLibc(l, glibc.ProcessSource)

	exitCode, err := manylinux.Dispatcher{
		Checker: manylinux.Checker{
			Platform:  &platform,
			Source:    glibc.ProcessSource,
			Overrides: this.overrides.Get(),
		},
		Output: stdout,
	}.Run(this.tag, this.arch)
	if err != nil {
		log.WithError(err).Error("execution failed")
	}
	return exitCode
}

// reportMissingLibc explains why every glibc based tier will be reported as
// NOT compatible, which happens for example with CGO_ENABLED=0 builds.
func reportMissingLibc(l log.Logger, source glibc.Source) {
	if _, ok := source.LibcVersion(); ok {
		return
	}
	l.Info("process is not linked against glibc, every tier which requires it will be reported as NOT compatible; was this executable built without cgo?")
}
