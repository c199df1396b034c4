// Package config loads the analysis service configuration from YAML files
// and environment variables.
//
// It uses Viper for file loading with automatic environment overrides and
// godotenv for .env files. Configuration resolves in order: config.yml,
// environment variables, .env file.
//
// # Usage
//
//	var cfg config.AppConfig
//	err := config.LoadConfig("hrv", &cfg)
//	cfg.ApplyDefaults()
//	err = cfg.Validate()
package config
