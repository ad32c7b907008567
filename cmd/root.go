package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const configName = ".pqcheck"

var cfgFile string
var debug bool
var traceSpans bool
var logger *zap.SugaredLogger = zap.NewNop().Sugar()

var rootCmd = &cobra.Command{
	Use:   "pqcheck",
	Short: "Check whether a site's TLS setup is ready for post-quantum cryptography",
	Long: `pqcheck classifies the key-exchange, signature and symmetric algorithms a
server negotiates and reports a green/yellow/red post-quantum readiness verdict.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		l, err := newLogger(debug)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l.Sugar()

		applyConfigDefaults(cmd)
		logger.Debugw("config_loaded", "config_file", viper.ConfigFileUsed())
		return nil
	},
}

// initConfig wires viper to the config file and PQCHECK_* environment.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PQCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config must exist; the default location is optional.
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func Execute() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pqcheck.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable development logging")
	rootCmd.PersistentFlags().BoolVar(&traceSpans, "trace", false, "log an OpenTelemetry span for every analysis")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(infoCmd)
}
