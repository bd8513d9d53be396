package config

import (
	"strings"

	"github.com/spf13/viper"
)

// IngestConfig controls the batch import jobs. Values come from an optional
// ingest.yml next to the binary (or under /etc/call-center-insights), with
// INSIGHTS_-prefixed environment variables taking precedence.
type IngestConfig struct {
	RootDir          string `mapstructure:"rootDir"`
	ConversationsDir string `mapstructure:"conversationsDir"`
	Timezone         string `mapstructure:"timezone"`
}

func DefaultIngestConfig() IngestConfig {
	return IngestConfig{
		RootDir:          "calls/out",
		ConversationsDir: "calls/conversations",
		Timezone:         "Europe/Istanbul",
	}
}

func LoadIngestConfig() (IngestConfig, error) {
	v := viper.New()

	v.SetConfigName("ingest")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/call-center-insights")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INSIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultIngestConfig()
	v.SetDefault("ingest.rootDir", defaults.RootDir)
	v.SetDefault("ingest.conversationsDir", defaults.ConversationsDir)
	v.SetDefault("ingest.timezone", defaults.Timezone)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return IngestConfig{}, err
		}
	}

	var cfg IngestConfig
	if err := v.UnmarshalKey("ingest", &cfg); err != nil {
		return IngestConfig{}, err
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaults.Timezone
	}
	return cfg, nil
}
