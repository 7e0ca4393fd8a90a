package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kinow/cylc-ui/pkg/service"
)

var cfgFile string

// RegisterFlags wires the global --config flag onto the root command.
func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/cylc-ui/config.yaml)")
}

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "cylc-ui")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CYLC_UI")

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "cylc-ui"))
	viper.SetDefault("log_level", "warn")

	_ = viper.ReadInConfig()
}

// InitLogger builds the process logger from configuration.
func InitLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// InitService builds the workflow service from configuration.
func InitService() (*service.Service, error) {
	return service.New(&service.Config{
		DataDir: viper.GetString("data_dir"),
	})
}
