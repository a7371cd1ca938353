package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Store  StoreConfig  `mapstructure:"store"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type LLMConfig struct {
	Generator ProviderConfig `mapstructure:"generator"`
}

type ProviderConfig struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
}

type StoreConfig struct {
	OwnerName     string `mapstructure:"owner_name"`
	OwnerEmail    string `mapstructure:"owner_email"`
	OwnerPassword string `mapstructure:"owner_password"`
	Seed          bool   `mapstructure:"seed"`
	ProfilePath   string `mapstructure:"profile_path"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.souq/")
	v.AddConfigPath("/etc/souq/")

	// Enable environment variable override with SOUQ_ prefix
	v.SetEnvPrefix("SOUQ")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("store.owner_name", "Malak")
	v.SetDefault("store.owner_email", "owner@souq.local")
	v.SetDefault("store.profile_path", "data/profile.json")
	v.SetDefault("llm.generator.provider", "mock")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
