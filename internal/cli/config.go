package cli

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

func SetDefaults() {
	viper.SetDefault("socket", "")
	viper.SetDefault("debug", false)
	viper.SetDefault("verbose_shaders", false)
	viper.SetDefault("request_timeout", 10*time.Second)
	viper.SetDefault("log_dir", "~/.local/share/shadercache")
}

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("shadercache")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/shadercache")
		viper.AddConfigPath("/etc/xdg/shadercache")
	}

	SetDefaults()

	viper.SetEnvPrefix("shadercache")
	viper.AutomaticEnv() // read environment variables that match

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		log.Debugf("Using config file: %v", viper.ConfigFileUsed())
	case errors.As(err, &notFound):
		log.Debug("No config file found, using defaults")
	default:
		log.Fatalf("Error reading config file: %v", err)
	}
}
