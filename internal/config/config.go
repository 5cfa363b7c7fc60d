package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver                 string `yaml:"driver"` // postgres, mysql, sqlite
		DSN                    string `yaml:"url"`
		MaxOpenConns           int    `yaml:"max_open_conns"`
		MaxIdleConns           int    `yaml:"max_idle_conns"`
		ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
		AutoMigrate            bool   `yaml:"auto_migrate"`
		SlowQueryMs            int    `yaml:"slow_query_ms"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// LoadConfig читает .env, затем либо переменные окружения (если задан DATABASE_URL),
// либо yaml-файл по CONFIG_PATH.
func LoadConfig() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	var cfg *Config
	var err error

	if os.Getenv("DATABASE_URL") != "" {
		log.Println("Загрузка конфигурации из переменных окружения")
		cfg = FromEnv()
	} else {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		log.Printf("Загрузка конфигурации из %s", configPath)
		cfg, err = FromFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromFile декодирует yaml-конфиг
func FromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return &cfg, nil
}

// FromEnv собирает конфиг из переменных окружения (docker, CI)
func FromEnv() *Config {
	var cfg Config

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Database.AutoMigrate = os.Getenv("DATABASE_AUTO_MIGRATE") == "true"
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL, _ = strconv.Atoi(os.Getenv("JWT_TTL"))

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, o)
			}
		}
	}

	return &cfg
}

// Default - конфиг для локального запуска и тестов (sqlite в памяти)
func Default() *Config {
	var cfg Config
	cfg.Server.Env = EnvTest
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"
	// одно соединение, иначе у каждого коннекта своя база в памяти
	cfg.Database.MaxOpenConns = 1
	cfg.Database.MaxIdleConns = 1
	cfg.Database.AutoMigrate = true
	cfg.JWT.Secret = "test_secret_key_for_jobboard"
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = EnvDevelopment
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Database.SlowQueryMs == 0 {
		cfg.Database.SlowQueryMs = 200
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database url is required")
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	return nil
}

// Address - адрес для http.Server
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
