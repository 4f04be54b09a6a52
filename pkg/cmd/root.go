package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tradeacademy/indicatorlab/pkg/catalog"
	"github.com/tradeacademy/indicatorlab/pkg/metrics"
)

const defaultLogFile = "log/indicatorlab.log"

var RootCmd = &cobra.Command{
	Use:   "indicatorlab",
	Short: "technical indicator engine",
	Long:  "compute technical indicators over OHLCV price bars",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// bind the flags of the running command, persistent flags included
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return errors.Wrap(err, "failed to bind flags")
		}

		if err := loadDotenv(cmd); err != nil {
			return err
		}

		if err := setupLogging(); err != nil {
			return err
		}

		return loadCatalog(cmd)
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if textfile := viper.GetString("metrics-textfile"); textfile != "" {
			return metrics.WriteTextfile(textfile)
		}
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// indicators is the catalog of the running command, built-ins plus the
// customs of the config file.
var indicators *catalog.Catalog

// userConfig is nil when no config file is loaded.
var userConfig *catalog.Config

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "indicatorlab.yaml", "config file with custom indicators and presets")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file you want to load")
	RootCmd.PersistentFlags().String("log-file", "", "write json logs to this rotating file")
	RootCmd.PersistentFlags().String("metrics-textfile", "", "dump prometheus metrics to this file on exit")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	viper.SetEnvPrefix("indicatorlab")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()
}

func loadDotenv(cmd *cobra.Command) error {
	dotenvFile := viper.GetString("dotenv")
	if dotenvFile == "" {
		return nil
	}

	if _, err := os.Stat(dotenvFile); err != nil {
		if cmd.Flags().Changed("dotenv") {
			return errors.Wrapf(err, "dotenv file %s", dotenvFile)
		}
		return nil
	}

	if err := godotenv.Load(dotenvFile); err != nil {
		return errors.Wrapf(err, "error loading dotenv file %s", dotenvFile)
	}
	return nil
}

var fileHook log.Hook

func setupLogging() error {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	logFile := viper.GetString("log-file")
	switch os.Getenv("INDICATORLAB_ENV") {
	case "production", "prod":
		if logFile == "" {
			logFile = defaultLogFile
		}
	}

	if logFile == "" || fileHook != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return errors.Wrapf(err, "unable to create log directory for %s", logFile)
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
	}

	fileHook = lfshook.NewHook(
		lfshook.WriterMap{
			log.DebugLevel: writer,
			log.InfoLevel:  writer,
			log.WarnLevel:  writer,
			log.ErrorLevel: writer,
			log.FatalLevel: writer,
		},
		&log.JSONFormatter{},
	)
	logger.AddHook(fileHook)
	return nil
}

func loadCatalog(cmd *cobra.Command) error {
	indicators = catalog.New()
	userConfig = nil

	configFile := viper.GetString("config")
	if configFile == "" {
		return nil
	}

	if _, err := os.Stat(configFile); err != nil {
		if cmd.Flags().Changed("config") {
			return errors.Wrapf(err, "config file %s", configFile)
		}
		return nil
	}

	config, err := catalog.LoadConfig(configFile)
	if err != nil {
		return err
	}

	if err := config.Apply(indicators); err != nil {
		return errors.Wrapf(err, "config file %s", configFile)
	}

	log.Debugf("loaded %d custom indicators and %d presets from %s", len(config.Customs), len(config.Presets), configFile)
	userConfig = config
	return nil
}

func withColor() bool {
	return !viper.GetBool("no-color") && !color.NoColor
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
