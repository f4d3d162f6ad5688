package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
		SSL  bool
	}
	Database struct {
		Path string
	}
	Session struct {
		CookieName string `mapstructure:"cookie_name"`
		LoginPath  string `mapstructure:"login_path"`
	}
	// Assets are served from the embedded copy unless Bucket is set.
	Assets struct {
		Bucket   string
		Prefix   string
		Region   string
		Endpoint string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	// existing environment variables win over .env entries
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("FOODDONATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("server.ssl", false)
	v.SetDefault("database.path", "data/fooddonate.db")
	v.SetDefault("session.cookie_name", "session_id")
	v.SetDefault("session.login_path", "/login")
	v.SetDefault("assets.bucket", "")
	v.SetDefault("assets.prefix", "site")
	v.SetDefault("assets.region", "us-east-1")
	v.SetDefault("assets.endpoint", "")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// the config file is optional, a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
