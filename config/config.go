package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the prediction service
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Workflow WorkflowConfig `mapstructure:"workflow"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Storage  StorageConfig  `mapstructure:"storage"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// WorkflowConfig controls plan generation and execution.
type WorkflowConfig struct {
	MaxSteps int `mapstructure:"max_steps"`
}

func (w WorkflowConfig) Normalize() WorkflowConfig {
	if w.MaxSteps <= 0 {
		w.MaxSteps = 10
	}
	return w
}

// SourcesConfig contains the encyclopedia API client settings.
type SourcesConfig struct {
	APIURL               string `mapstructure:"api_url"`
	TimeoutSeconds       int    `mapstructure:"timeout_seconds"`
	UserAgent            string `mapstructure:"user_agent"`
	RenderEnabled        bool   `mapstructure:"render_enabled"`
	RenderTimeoutSeconds int    `mapstructure:"render_timeout_seconds"`
	RefreshCron          string `mapstructure:"refresh_cron"`
	DataDir              string `mapstructure:"data_dir"`
	ReportsDir           string `mapstructure:"reports_dir"`
}

func (s SourcesConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

func (s SourcesConfig) RenderTimeout() time.Duration {
	return time.Duration(s.RenderTimeoutSeconds) * time.Second
}

// CacheConfig selects and configures the source cache backend.
type CacheConfig struct {
	Backend    string      `mapstructure:"backend"` // file, redis
	Dir        string      `mapstructure:"dir"`
	TTLSeconds int         `mapstructure:"ttl_seconds"`
	Redis      RedisConfig `mapstructure:"redis"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

func (c CacheConfig) Validate() error {
	switch c.Backend {
	case "", "file":
	case "redis":
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cache.backend must be file or redis, got %q", c.Backend)
	}
	return nil
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Validate() error {
	if strings.TrimSpace(r.Host) == "" {
		return fmt.Errorf("cache.redis.host required")
	}
	if strings.TrimSpace(r.Port) == "" {
		return fmt.Errorf("cache.redis.port required")
	}
	return nil
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// StorageConfig selects and configures the workflow record store.
type StorageConfig struct {
	Backend  string         `mapstructure:"backend"` // file, postgres
	File     FileConfig     `mapstructure:"file"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

func (s StorageConfig) Validate() error {
	switch s.Backend {
	case "", "file":
	case "postgres":
		if err := s.Postgres.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("storage.backend must be file or postgres, got %q", s.Backend)
	}
	return nil
}

// FileConfig contains file storage settings
type FileConfig struct {
	Path string `mapstructure:"path"`
}

// PostgresConfig contains Postgres connection settings
type PostgresConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (p PostgresConfig) Validate() error {
	if p.URL != "" {
		return nil
	}
	if strings.TrimSpace(p.Host) == "" || strings.TrimSpace(p.DBName) == "" {
		return fmt.Errorf("storage.postgres requires url or host+dbname")
	}
	return nil
}

// DSN builds a postgres connection string from either the URL or the parts.
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	port := p.Port
	if port == "" {
		port = "5432"
	}
	ssl := p.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", p.User, p.Password, p.Host, port, p.DBName, ssl)
}

// LoadConfig reads configuration from file and environment.
// Missing config files are fine; defaults cover a local file-backed setup.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.host", "")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.cors_origins", []string{"*"})
	viper.SetDefault("workflow.max_steps", 10)
	viper.SetDefault("sources.api_url", "https://en.wikipedia.org/w/api.php")
	viper.SetDefault("sources.timeout_seconds", 15)
	viper.SetDefault("sources.user_agent", "mundial/1.0 (+https://github.com/mohammad-safakhou/mundial)")
	viper.SetDefault("sources.render_enabled", false)
	viper.SetDefault("sources.render_timeout_seconds", 20)
	viper.SetDefault("sources.refresh_cron", "@daily")
	viper.SetDefault("sources.data_dir", "data")
	viper.SetDefault("sources.reports_dir", "predictions")
	viper.SetDefault("cache.backend", "file")
	viper.SetDefault("cache.dir", filepath.Join("data", "cache"))
	viper.SetDefault("cache.ttl_seconds", 86400)
	viper.SetDefault("cache.redis.db", 0)
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.file.path", filepath.Join("data", "memory.json"))

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)
		viper.AddConfigPath(filepath.Join(exeDir, ".."))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("MUNDIAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match (MUNDIAL_*)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	config.Workflow = config.Workflow.Normalize()

	if err := config.Cache.Validate(); err != nil {
		panic(err)
	}
	if err := config.Storage.Validate(); err != nil {
		panic(err)
	}
	return &config
}
