package config

import (
	"github.com/beautygo/beautygo-api/pkg/config"
)

// ServiceConfig holds all configuration for the BeautyGO API.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	PlatformFeePct int64
	DBConfig       config.DatabaseConfig
	JWTConfig      config.JWTConfig
	KafkaConfig    config.KafkaConfig
}

// Load reads configuration from environment variables.
func Load() (*ServiceConfig, error) {
	v, err := config.Load("BEAUTYGO")
	if err != nil {
		return nil, err
	}

	v.SetDefault("PLATFORM_FEE_PCT", 20)

	return &ServiceConfig{
		Port:           config.GetServicePort(v, "SERVICE_PORT"),
		AppEnv:         config.GetAppEnv(v),
		PlatformFeePct: v.GetInt64("PLATFORM_FEE_PCT"),
		DBConfig:       config.LoadDatabaseConfig(v, "DB_NAME"),
		JWTConfig:      config.LoadJWTConfig(v),
		KafkaConfig:    config.LoadKafkaConfig(v),
	}, nil
}
