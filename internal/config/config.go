package config

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type StorageConfig struct {
	Driver    string
	Namespace string
}

type AuthConfig struct {
	AccessSecret []byte
	TokenTTL     time.Duration
}

func SetDefaults() {
	viper.SetDefault("app.port", "8000")
	viper.SetDefault("client.origin", "http://localhost:3000")
	viper.SetDefault("storage.driver", DriverRedis)
	viper.SetDefault("storage.namespace", "")
	viper.SetDefault("auth.token_ttl", "24h")
}

func NewStorageConfig() StorageConfig {
	return StorageConfig{
		Driver:    viper.GetString("storage.driver"),
		Namespace: viper.GetString("storage.namespace"),
	}
}

func NewAuthConfig(secret string) AuthConfig {
	return AuthConfig{
		AccessSecret: []byte(secret),
		TokenTTL:     viper.GetDuration("auth.token_ttl"),
	}
}

func ClientOrigin() string {
	if origin := viper.GetString("client.origin"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}
