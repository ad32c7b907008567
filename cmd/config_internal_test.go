package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestApplyIntDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("timeout", 0, "")

	var applied int
	applyIntDefault(flags, "timeout", 15, func(v int) {
		applied = v
	})
	if applied != 15 {
		t.Fatalf("expected setter to receive 15, got %d", applied)
	}

	// When flag already set, setter should not run.
	if err := flags.Set("timeout", "7"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	applied = 0
	applyIntDefault(flags, "timeout", 20, func(v int) {
		applied = v
	})
	if applied != 0 {
		t.Fatalf("setter should not run when flag overridden, got %d", applied)
	}
}

func TestApplyStringDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("source", "probe", "")

	applied := ""
	applyStringDefault(flags, "source", "lookup", func(v string) {
		applied = v
	})
	if applied != "lookup" {
		t.Fatalf("expected setter to receive lookup, got %q", applied)
	}

	if err := flags.Set("source", "probe"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	applied = ""
	applyStringDefault(flags, "source", "lookup", func(v string) {
		applied = v
	})
	if applied != "" {
		t.Fatalf("setter should not run when flag overridden, got %q", applied)
	}
}

func TestSetStringFlagIfUnset(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var format string
	flags.StringVar(&format, "format", "text", "")

	setStringFlagIfUnset(flags, "format", "json")
	if format != "json" {
		t.Fatalf("expected unset flag to take config value, got %q", format)
	}

	if err := flags.Set("format", "yaml"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	setStringFlagIfUnset(flags, "format", "json")
	if format != "yaml" {
		t.Fatalf("explicit flag should win, got %q", format)
	}

	// Unknown flags are ignored.
	setStringFlagIfUnset(flags, "missing", "x")
	setStringFlagIfUnset(nil, "format", "x")
}

func TestApplyConfigDefaults(t *testing.T) {
	preserveConfig(t)
	savedClassify, savedCatalog := classifyFormat, catalogFormat
	t.Cleanup(func() {
		classifyFormat, catalogFormat = savedClassify, savedCatalog
	})

	viper.Set("defaults.timeout_secs", 25)
	viper.Set("defaults.source", "lookup")
	viper.Set("defaults.format", "json")
	viper.Set("sources.ctlog_url", "http://ct.test/v1/issuances")
	viper.Set("sources.observatory_url", "http://obs.test/api/v1")
	viper.Set("sources.observatory_wait_secs", 0)
	viper.Set("serve.addr", "127.0.0.1:9999")

	applyConfigDefaults(rootCmd)

	if cliConfig.Analyze.TimeoutSecs != 25 || cliConfig.Defaults.TimeoutSecs != 25 {
		t.Fatalf("timeout not applied: %+v", cliConfig.Analyze)
	}
	if cliConfig.Analyze.Source != "lookup" {
		t.Fatalf("source not applied: %q", cliConfig.Analyze.Source)
	}
	if cliConfig.Analyze.Format != "json" || classifyFormat != "json" || catalogFormat != "json" {
		t.Fatalf("format not applied: analyze=%q classify=%q catalog=%q", cliConfig.Analyze.Format, classifyFormat, catalogFormat)
	}
	if cliConfig.Sources.CTLogURL != "http://ct.test/v1/issuances" || cliConfig.Sources.ObservatoryURL != "http://obs.test/api/v1" {
		t.Fatalf("source endpoints not applied: %+v", cliConfig.Sources)
	}
	if cliConfig.Sources.ObservatoryWaitSecs != 0 {
		t.Fatalf("expected observatory wait 0, got %d", cliConfig.Sources.ObservatoryWaitSecs)
	}
	if cliConfig.Serve.Addr != "127.0.0.1:9999" {
		t.Fatalf("serve addr not applied: %q", cliConfig.Serve.Addr)
	}
}

func TestSourceConfig(t *testing.T) {
	preserveConfig(t)
	cliConfig.Sources.ObservatoryWaitSecs = 2

	cfg := sourceConfig(0)
	if cfg.Timeout != time.Duration(defaultTimeoutSeconds)*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.Timeout)
	}
	if cfg.ObservatoryWait != 2*time.Second {
		t.Fatalf("unexpected observatory wait %s", cfg.ObservatoryWait)
	}
	if got := sourceConfig(3).Timeout; got != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", got)
	}
}

func TestInitConfigReadsFileAndEnv(t *testing.T) {
	preserveConfig(t)
	original := cfgFile
	t.Cleanup(func() { cfgFile = original })

	path := filepath.Join(t.TempDir(), "pqcheck.yaml")
	content := "defaults:\n  timeout_secs: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PQCHECK_DEFAULTS_SOURCE", "lookup")

	cfgFile = path
	if err := initConfig(); err != nil {
		t.Fatalf("initConfig: %v", err)
	}
	if got := viper.GetInt("defaults.timeout_secs"); got != 7 {
		t.Fatalf("expected timeout 7 from file, got %d", got)
	}
	if got := viper.GetString("defaults.source"); got != "lookup" {
		t.Fatalf("expected source from env, got %q", got)
	}
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	preserveConfig(t)
	original := cfgFile
	t.Cleanup(func() { cfgFile = original })

	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	if err := initConfig(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
