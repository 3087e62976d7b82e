package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/boubertbot/boubert/internal/calendar"
	"github.com/boubertbot/boubert/internal/gateway"
	"github.com/boubertbot/boubert/internal/logger"
	internalhttp "github.com/boubertbot/boubert/internal/server/http"
	"github.com/boubertbot/boubert/internal/storagebuilder"
	"github.com/spf13/viper"
)

const envConfigPrefix = "$env:"

type ScannerConfig struct {
	Enabled  bool
	Interval time.Duration
}

type Config struct {
	Server   internalhttp.Config
	Logger   logger.Config
	Storage  storagebuilder.Config
	Scanner  ScannerConfig
	Twilio   gateway.TwilioConfig
	Calendar calendar.GoogleConfig
}

func NewConfig(configFile string) (Config, error) {
	config := Config{}
	viper.SetConfigFile(configFile)

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("logger.level", "WARN")
	viper.SetDefault("storage.storageType", "memory")
	viper.SetDefault("scanner.enabled", true)
	viper.SetDefault("scanner.interval", "1m")

	err := viper.ReadInConfig()
	if err != nil {
		return config, fmt.Errorf("failed to read config %q: %w", configFile, err)
	}
	keys := viper.AllKeys()
	for _, key := range keys {
		env := viper.GetString(key)
		if strings.HasPrefix(env, envConfigPrefix) {
			err := viper.BindEnv(key, env[len(envConfigPrefix):])
			if err != nil {
				return Config{}, fmt.Errorf("failed to prepare config: %w", err)
			}
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return config, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	return config, nil
}
