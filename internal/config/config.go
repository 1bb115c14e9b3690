package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Database DatabaseConfig  `mapstructure:"database"`
	Redis    RedisConfig     `mapstructure:"redis"`
	JWT      JWTConfig       `mapstructure:"jwt"`
	Admin    AdminSeedConfig `mapstructure:"admin"`
	Upload   UploadConfig    `mapstructure:"upload"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres, mysql, sqlite
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig configures the secondary copy of the latest result.
type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	BackupKey string `mapstructure:"backupKey"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Expire int    `mapstructure:"expire"` // hours
}

type AdminSeedConfig struct {
	DefaultUsername string `mapstructure:"defaultUsername"`
	DefaultPassword string `mapstructure:"defaultPassword"`
}

type UploadConfig struct {
	Secret     string   `mapstructure:"secret"`
	MaxBytes   int64    `mapstructure:"maxBytes"`
	Extensions []string `mapstructure:"extensions"`
	// Per client IP; 0 disables limiting.
	RatePerMinute int `mapstructure:"ratePerMinute"`
	RateBurst     int `mapstructure:"rateBurst"`
}

var GlobalConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "awards.db")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.backupKey", "awards:latest")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire", 24)
	v.SetDefault("admin.defaultUsername", "director")
	v.SetDefault("admin.defaultPassword", "")
	v.SetDefault("upload.secret", "poker-club-2025-upload")
	v.SetDefault("upload.maxBytes", 10<<20)
	v.SetDefault("upload.extensions", []string{".txt", ".log"})
	v.SetDefault("upload.ratePerMinute", 10)
	v.SetDefault("upload.rateBurst", 3)
}

// Load reads the yaml file at path, when it exists, over the defaults.
// AWARDS_* environment variables override both, e.g. AWARDS_SERVER_PORT.
// Only keys with a default are visible to the env lookup.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("awards")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}
	GlobalConfig = cfg
}
