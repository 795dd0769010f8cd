package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"

	// DefaultStorageKey is the slot holding the onboarding list.
	DefaultStorageKey = "onboardingData"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Client    ClientConfig    `yaml:"client"`
	Storage   StorageConfig   `yaml:"storage"`
	Fixtures  FixturesConfig  `yaml:"fixtures"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Port    int    `yaml:"port" env:"PORT"`
	GinMode string `yaml:"gin_mode" env:"GIN_MODE"`
}

type ClientConfig struct {
	BaseURL        string        `yaml:"base_url" env:"LIFEYEARS_API_BASE_URL"`
	HealthTimeout  time.Duration `yaml:"health_timeout" env:"LIFEYEARS_HEALTH_TIMEOUT"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"LIFEYEARS_REQUEST_TIMEOUT"`
}

type StorageConfig struct {
	Backend   string `yaml:"backend" env:"LIFEYEARS_STORAGE_BACKEND"`
	DSN       string `yaml:"dsn" env:"LIFEYEARS_STORAGE_DSN"`
	Key       string `yaml:"key" env:"LIFEYEARS_STORAGE_KEY"`
	RedisAddr string `yaml:"redis_addr" env:"LIFEYEARS_REDIS_ADDR"`
	S3Bucket  string `yaml:"s3_bucket" env:"LIFEYEARS_S3_BUCKET"`
	S3Prefix  string `yaml:"s3_prefix" env:"LIFEYEARS_S3_PREFIX"`
	S3Region  string `yaml:"s3_region" env:"LIFEYEARS_S3_REGION"`
}

// FixturesConfig.Dir overrides the embedded fixture files when set.
type FixturesConfig struct {
	Dir string `yaml:"dir" env:"LIFEYEARS_FIXTURE_DIR"`
}

// DashboardConfig.Today pins the dashboard reference date (YYYY-MM-DD).
type DashboardConfig struct {
	Today string `yaml:"today" env:"LIFEYEARS_DASHBOARD_TODAY"`
}

type LogConfig struct {
	Level       string `yaml:"level" env:"LIFEYEARS_LOG_LEVEL"`
	Development bool   `yaml:"development" env:"LIFEYEARS_LOG_DEV"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Port: 3001, GinMode: "release"},
		Client: ClientConfig{
			BaseURL:        "http://localhost:3001",
			HealthTimeout:  5 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{Backend: BackendSQLite, Key: DefaultStorageKey, RedisAddr: "localhost:6379"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load layers defaults, an optional YAML file, an optional .env file and
// the process environment, in that order. An empty path falls back to
// $LIFEYEARS_CONFIG; no file at all is fine.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	if path == "" {
		path = os.Getenv("LIFEYEARS_CONFIG")
	}
	if path != "" {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		err = errors.Wrap(err, "failed to load .env file")
		return cfg, err
	}

	err = envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		err = errors.Wrap(err, "failed to read environment")
		return cfg, err
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Client.BaseURL == "" {
		return errors.New("client base_url is required")
	}
	if c.Client.HealthTimeout <= 0 || c.Client.RequestTimeout <= 0 {
		return errors.New("client timeouts must be positive")
	}
	if c.Storage.Key == "" {
		return errors.New("storage key is required")
	}

	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if c.Storage.DSN == "" {
			return errors.New("storage dsn is required for postgres")
		}
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			return errors.New("storage redis_addr is required for redis")
		}
	case BackendS3:
		if c.Storage.S3Bucket == "" {
			return errors.New("storage s3_bucket is required for s3")
		}
	default:
		return errors.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Dashboard.Today != "" {
		if _, err := time.Parse("2006-01-02", c.Dashboard.Today); err != nil {
			return errors.Errorf("dashboard today %q is not YYYY-MM-DD", c.Dashboard.Today)
		}
	}
	return nil
}

// Addr is the listen address for the gateway.
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}
