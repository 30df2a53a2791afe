package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Storage struct {
		// Backend is either "memory" or "postgres".
		Backend string `mapstructure:"backend"`
	} `mapstructure:"storage"`
	Database struct {
		Host       string `mapstructure:"host"`
		Port       string `mapstructure:"port"`
		User       string `mapstructure:"user"`
		Password   string `mapstructure:"password"`
		Name       string `mapstructure:"name"`
		Migrations string `mapstructure:"migrations"`
	} `mapstructure:"database"`
	Redis struct {
		Enabled  bool          `mapstructure:"enabled"`
		Host     string        `mapstructure:"host"`
		Port     string        `mapstructure:"port"`
		Password string        `mapstructure:"password"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	JWT struct {
		SecretKey string        `mapstructure:"secret_key"`
		TTL       time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
	Security struct {
		BcryptCost int `mapstructure:"bcrypt_cost"`
	} `mapstructure:"security"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var AppConfig Config

var ErrMissingJWTSecret = errors.New("jwt.secret_key must be set (config.yml or JWT_SECRET_KEY)")

// setDefaults registers every key, including empty ones, so AutomaticEnv
// can override any of them during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "bankist")
	v.SetDefault("database.migrations", "file://db/migrations")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.ttl", 10*time.Minute)
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.ttl", time.Hour)
	v.SetDefault("security.bcrypt_cost", 10)
	v.SetDefault("log.level", "info")
}

// Load reads config.yml from path into a Config. A missing file is not an
// error; defaults and environment variables (DATABASE_PASSWORD,
// JWT_SECRET_KEY, ...) still apply. An empty JWT secret is rejected.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if strings.TrimSpace(cfg.JWT.SecretKey) == "" {
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}

func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}
	AppConfig = cfg
}
