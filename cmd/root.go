package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darrylcauldwell/meWeb/internal/config"
)

var cfgFile string
var appConfig config.Config
var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   "meweb",
	Short: "Content tooling for the dreamfold blog",
	Long: `meweb validates the blog's markdown posts against the front-matter
schema, plans the paginated listing pages and checks static images
against the publishing limits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return err
		}
		logger = newLogger(appConfig.Log)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	for key, value := range config.Defaults {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MEWEB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if f := cmd.Flags().Lookup("log-level"); f != nil {
		if err := v.BindPFlag("log.level", f); err != nil {
			return fmt.Errorf("failed to bind log-level flag: %w", err)
		}
	}

	source := "defaults"
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else {
		source = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration (%s): %w", source, err)
	}
	return nil
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.EqualFold(cfg.Format, "json") {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
