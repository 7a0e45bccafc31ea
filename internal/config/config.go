// config — загрузка конфигурации API и web-сервиса объявлений.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// localConfig — файл в рабочем каталоге, который читается без флагов и ENV.
const localConfig = "local.yaml"

type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Web      WebConfig     `yaml:"web"`
	API      APIConfig     `yaml:"api"`
	Seed     SeedConfig    `yaml:"seed"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты.
// Service — общий дедлайн обработки входящего запроса.
// Upstream — бюджет исходящего вызова web -> api; по истечении запрос не повторяется.
// Нулевое значение ("0s") cleanenv считает незаданным и подставляет env-default,
// поэтому отклоняются только отрицательные длительности.
type TimeoutConfig struct {
	Service  time.Duration `yaml:"service"  env:"TIMEOUT_SERVICE"  env-default:"15s"`
	Upstream time.Duration `yaml:"upstream" env:"TIMEOUT_UPSTREAM" env-default:"1s"`
}

// HTTPConfig — JSON API.
type HTTPConfig struct {
	Host     string `yaml:"host"      env:"HTTP_HOST"      env-default:"0.0.0.0"`
	Port     string `yaml:"port"      env:"HTTP_PORT"      env-default:"3000"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// WebConfig — сервер HTML-страниц.
type WebConfig struct {
	Host string `yaml:"host" env:"WEB_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"WEB_PORT" env-default:"8080"`
}

func (w WebConfig) Addr() string { return net.JoinHostPort(w.Host, w.Port) }

// APIConfig — куда web-сервис ходит за данными.
type APIConfig struct {
	BaseURL string `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:3000/api/"`
}

// SeedConfig — JSON-файл с начальными объявлениями.
type SeedConfig struct {
	Path string `yaml:"path" env:"SEED_PATH" env-default:"mocks.json"`
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load читает конфигурацию из файла, выбранного resolvePath, с наложением ENV
// (cleanenv), либо только из ENV, если файла нет. Результат проверяется validate.
func Load(path string) (*Config, error) {
	var cfg Config

	src, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	switch src {
	case "":
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
	default:
		if err := cleanenv.ReadConfig(src, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", src, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolvePath выбирает файл конфигурации. Явно указанный путь (флаг или CONFIG_PATH)
// обязан существовать; local.yaml — необязательный. Пустая строка — файла нет.
func resolvePath(flagPath string) (string, error) {
	for _, explicit := range []string{flagPath, os.Getenv("CONFIG_PATH")} {
		if explicit == "" {
			continue
		}
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %q stat failed: %w", explicit, err)
		}
		return explicit, nil
	}

	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	return "", nil
}

// validate нормализует base_path ("api/" -> "/api") и отсекает
// значения, с которыми сервисы не смогут работать.
func (c *Config) validate() error {
	if bp := strings.Trim(c.HTTP.BasePath, "/"); bp != "" {
		c.HTTP.BasePath = "/" + bp
	} else {
		c.HTTP.BasePath = ""
	}

	switch {
	case c.Timeouts.Service < 0:
		return fmt.Errorf("config: timeouts.service must be >= 0, got %s", c.Timeouts.Service)
	case c.Timeouts.Upstream <= 0:
		return fmt.Errorf("config: timeouts.upstream must be > 0, got %s", c.Timeouts.Upstream)
	case c.API.BaseURL == "":
		return fmt.Errorf("config: api.base_url is empty")
	}

	return nil
}
