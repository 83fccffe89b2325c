package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedcfg "oficina/internal/config"
)

const (
	// DefaultAPIURL - адрес API oficina, зашитый в клиент
	DefaultAPIURL = "https://backend-oficina-api.onrender.com"

	defaultLogLevel      = "info"
	defaultEnv           = sharedcfg.EnvLocal
	defaultHTTPTimeout   = 30
	defaultWatchInterval = 30
	defaultConfigDir     = ".oficina"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	APIURL        string `mapstructure:"api_url"`
	LogLevel      string `mapstructure:"log_level"`
	HTTPTimeout   int    `mapstructure:"http_timeout_seconds"`
	WatchInterval int    `mapstructure:"watch_interval_seconds"`
	Timezone      string `mapstructure:"timezone"`

	location *time.Location
}

// Dir возвращает каталог с config.yaml: CONFIG_DIR или ~/.oficina.
// Относительный путь считается от home.
func Dir(home string) string {
	dir := os.Getenv("CONFIG_DIR")
	if dir == "" {
		dir = defaultConfigDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(home, dir)
	}
	return dir
}

// Load загружает конфигурацию из .env, переменных окружения и
// уже прочитанного viper конфигурационного файла.
func Load() (*Config, error) {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("API_URL", DefaultAPIURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeout)
	viper.SetDefault("WATCH_INTERVAL_SECONDS", defaultWatchInterval)

	config := &Config{
		Env:           viper.GetString("APP_ENV"),
		APIURL:        viper.GetString("API_URL"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		HTTPTimeout:   viper.GetInt("HTTP_TIMEOUT_SECONDS"),
		WatchInterval: viper.GetInt("WATCH_INTERVAL_SECONDS"),
		Timezone:      viper.GetString("TIMEZONE"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url не может быть пустым")
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url должен быть абсолютным URL: %q", c.APIURL)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout_seconds должен быть положительным: %d", c.HTTPTimeout)
	}

	if c.WatchInterval <= 0 {
		return fmt.Errorf("watch_interval_seconds должен быть положительным: %d", c.WatchInterval)
	}

	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("неизвестный timezone %q: %w", c.Timezone, err)
	}
	c.location = loc

	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Location - часовой пояс, в котором сравниваются месяцы и дни записей
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Timeout - таймаут HTTP запросов к API
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// Interval - период обновления в режиме --watch
func (c *Config) Interval() time.Duration {
	return time.Duration(c.WatchInterval) * time.Second
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == sharedcfg.EnvProd
}
