package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/khanhnv2901/pqcheck/internal/checker"
	consts "github.com/khanhnv2901/pqcheck/internal/shared/constants"
)

const (
	defaultTimeoutSeconds   = int(consts.DefaultTimeout / time.Second)
	defaultObservatoryWait  = int(consts.DefaultObservatoryWait / time.Second)
	defaultConcurrency      = 4
	defaultAnalyzeRateLimit = 2
	defaultServeAddr        = "127.0.0.1:8080"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Defaults DefaultValues
	Analyze  AnalyzeRuntimeConfig
	Sources  SourceSettings
	Serve    ServeRuntimeConfig
}

// DefaultValues represent user-level defaults, typically derived from env/config.
type DefaultValues struct {
	TimeoutSecs int
	Source      string
	Format      string
}

// AnalyzeRuntimeConfig consolidates flag-driven settings for the analyze command.
type AnalyzeRuntimeConfig struct {
	Source      string
	Format      string
	Concurrency int
	RateLimit   int
	TimeoutSecs int
	Progress    bool
	HistoryFile string
}

// SourceSettings holds upstream endpoints for the lookup source.
type SourceSettings struct {
	CTLogURL            string
	ObservatoryURL      string
	ObservatoryWaitSecs int
}

// ServeRuntimeConfig captures the API server flags.
type ServeRuntimeConfig struct {
	Addr            string
	AuthToken       string
	CORSOrigins     []string
	RateLimit       int
	RateBurst       int
	ShutdownTimeout time.Duration
}

type defaultOverrides struct {
	TimeoutSecs         *int
	Source              string
	Format              string
	CTLogURL            string
	ObservatoryURL      string
	ObservatoryWaitSecs *int
	ServeAddr           string
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Defaults: DefaultValues{
			TimeoutSecs: defaultTimeoutSeconds,
			Source:      checker.SourceProbe,
			Format:      string(formatText),
		},
		Analyze: AnalyzeRuntimeConfig{
			Source:      checker.SourceProbe,
			Format:      string(formatText),
			Concurrency: defaultConcurrency,
			RateLimit:   defaultAnalyzeRateLimit,
			TimeoutSecs: defaultTimeoutSeconds,
		},
		Sources: SourceSettings{
			CTLogURL:            consts.CTLogURL,
			ObservatoryURL:      consts.ObservatoryURL,
			ObservatoryWaitSecs: defaultObservatoryWait,
		},
		Serve: ServeRuntimeConfig{
			Addr:            defaultServeAddr,
			RateLimit:       10,
			RateBurst:       20,
			ShutdownTimeout: 30 * time.Second,
		},
	}
}

func loadDefaultOverrides() defaultOverrides {
	overrides := defaultOverrides{}

	if viper.IsSet("defaults.timeout_secs") {
		val := viper.GetInt("defaults.timeout_secs")
		overrides.TimeoutSecs = &val
	}

	if viper.IsSet("defaults.source") {
		overrides.Source = viper.GetString("defaults.source")
	}

	if viper.IsSet("defaults.format") {
		overrides.Format = viper.GetString("defaults.format")
	}

	if viper.IsSet("sources.ctlog_url") {
		overrides.CTLogURL = viper.GetString("sources.ctlog_url")
	}

	if viper.IsSet("sources.observatory_url") {
		overrides.ObservatoryURL = viper.GetString("sources.observatory_url")
	}

	if viper.IsSet("sources.observatory_wait_secs") {
		val := viper.GetInt("sources.observatory_wait_secs")
		overrides.ObservatoryWaitSecs = &val
	}

	if viper.IsSet("serve.addr") {
		overrides.ServeAddr = viper.GetString("serve.addr")
	}

	return overrides
}

// applyConfigDefaults merges config file defaults into the runtime config when the user
// did not explicitly override the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	overrides := loadDefaultOverrides()

	if overrides.TimeoutSecs != nil && *overrides.TimeoutSecs > 0 {
		applyIntDefault(analyzeCmd.Flags(), "timeout", *overrides.TimeoutSecs, func(v int) {
			cliConfig.Defaults.TimeoutSecs = v
			cliConfig.Analyze.TimeoutSecs = v
		})
	}

	if overrides.Source != "" {
		applyStringDefault(analyzeCmd.Flags(), "source", overrides.Source, func(v string) {
			cliConfig.Defaults.Source = v
			cliConfig.Analyze.Source = v
		})
	}

	if overrides.Format != "" {
		cliConfig.Defaults.Format = overrides.Format
		applyStringDefault(analyzeCmd.Flags(), "format", overrides.Format, func(v string) {
			cliConfig.Analyze.Format = v
		})
		setStringFlagIfUnset(classifyCmd.PersistentFlags(), "format", overrides.Format)
		setStringFlagIfUnset(catalogCmd.Flags(), "format", overrides.Format)
	}

	if overrides.CTLogURL != "" {
		cliConfig.Sources.CTLogURL = overrides.CTLogURL
	}
	if overrides.ObservatoryURL != "" {
		cliConfig.Sources.ObservatoryURL = overrides.ObservatoryURL
	}
	if overrides.ObservatoryWaitSecs != nil && *overrides.ObservatoryWaitSecs >= 0 {
		cliConfig.Sources.ObservatoryWaitSecs = *overrides.ObservatoryWaitSecs
	}

	if overrides.ServeAddr != "" {
		applyStringDefault(serveCmd.Flags(), "addr", overrides.ServeAddr, func(v string) {
			cliConfig.Serve.Addr = v
		})
	}
}

// sourceConfig converts the CLI settings into checker options.
func sourceConfig(timeoutSecs int) checker.SourceConfig {
	if timeoutSecs <= 0 {
		timeoutSecs = defaultTimeoutSeconds
	}
	return checker.SourceConfig{
		Timeout:         time.Duration(timeoutSecs) * time.Second,
		CTLogURL:        cliConfig.Sources.CTLogURL,
		ObservatoryURL:  cliConfig.Sources.ObservatoryURL,
		ObservatoryWait: time.Duration(cliConfig.Sources.ObservatoryWaitSecs) * time.Second,
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, setter func(string)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func setStringFlagIfUnset(flags *pflag.FlagSet, name, value string) {
	if flags == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	_ = flag.Value.Set(value)
}
