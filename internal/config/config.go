package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable, e.g. TERMFOLIO_LOG_LEVEL.
const EnvPrefix = "TERMFOLIO"

const (
	ThemeBackendCookie = "cookie"
	ThemeBackendSQLite = "sqlite"
)

// Config captures startup settings for the site.
type Config struct {
	Port          int    `mapstructure:"port" validate:"min=1,max=65535"`
	Mode          string `mapstructure:"mode" validate:"oneof=debug release test"`
	LogLevel      string `mapstructure:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogPretty     bool   `mapstructure:"log_pretty"`
	CatalogPath   string `mapstructure:"catalog_path"`
	StaticDir     string `mapstructure:"static_dir" validate:"required"`
	ThemeBackend  string `mapstructure:"theme_backend" validate:"oneof=cookie sqlite"`
	DatabasePath  string `mapstructure:"database_path" validate:"required_if=ThemeBackend sqlite"`
	SecureCookies bool   `mapstructure:"secure_cookies"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("mode", "debug")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)
	v.SetDefault("catalog_path", "")
	v.SetDefault("static_dir", "./static")
	v.SetDefault("theme_backend", ThemeBackendCookie)
	v.SetDefault("database_path", "termfolio.db")
	v.SetDefault("secure_cookies", false)
}

// Load reads configuration from defaults, an optional config file and the
// environment, in increasing precedence. An empty path looks for
// termfolio.yaml in the working directory and tolerates its absence. The
// plain PORT variable is honored when TERMFOLIO_PORT is unset.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("termfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if _, ok := os.LookupEnv(EnvPrefix + "_PORT"); !ok {
		if port, ok := os.LookupEnv("PORT"); ok && port != "" {
			v.Set("port", port)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.ThemeBackend = strings.ToLower(cfg.ThemeBackend)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and enumerations.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: invalid value %v (%s)", fe.Field(), fe.Value(), fe.Tag()))
		}
		return fmt.Errorf("validate config: %s", strings.Join(msgs, "; "))
	}
	return nil
}
