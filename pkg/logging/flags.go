package logging

import (
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/level"
	"github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/consumer"
	"github.com/echocat/slf4g/native/facade/value"

	"github.com/engity-com/manylinux-check/pkg/common"
)

type LogProvider interface {
	log.Provider
	value.ProviderTarget
	level.NamesAware
}

// ConfigureLoggingForFlags directs the output of the native provider to the
// given writer and registers the log.* flags at app.
func ConfigureLoggingForFlags(app *kingpin.Application, of LogProvider, to io.Writer) {
	native.DefaultProvider.Consumer = consumer.NewWriter(to)

	lv := value.NewProvider(of)
	app.Flag("log.level", "Defines the minimum level at which the log messages will be logged. Default: "+lv.Level.String()).
		PlaceHolder("<" + strings.Join(logLevelStrings(of), "|") + ">").
		SetValue(lv.Level)
	app.Flag("log.format", "In which format the log output should be printed. Default: "+lv.Consumer.Formatter.String()).
		PlaceHolder("<" + strings.Join(logFormatStrings(), "|") + ">").
		SetValue(lv.Consumer.Formatter)
	app.Flag("log.colorMode", "Tells if to log in color or not. Default: "+lv.Consumer.Formatter.ColorMode.String()).
		PlaceHolder("<auto|always|never>").
		SetValue(lv.Consumer.Formatter.ColorMode)
}

func logLevelStrings(of LogProvider) []string {
	names := of.GetLevelNames()

	lvls := of.GetAllLevels()
	all := make([]string, len(lvls))
	for i, lvl := range lvls {
		name, err := names.ToName(lvl)
		common.Must(err)
		all[i] = name
	}
	return all
}

func logFormatStrings() []string {
	codecs := value.DefaultFormatterCodec.(value.MappingFormatterCodec)
	all := make([]string, 0, len(codecs))
	for k := range codecs {
		all = append(all, k)
	}
	slices.Sort(all)
	return all
}
