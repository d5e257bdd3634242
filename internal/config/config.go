package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	Dashboard DashboardConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	TemplatesDir string
	AllowOrigins string
}

type DatasetConfig struct {
	Source string
	Path   string
}

type DashboardConfig struct {
	RouteLimit int
	MapLimit   int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Table           string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	DashboardCacheTTL time.Duration
	// MemoryEntries bounds the in-process cache used when Redis is disabled.
	MemoryEntries int
}

type LogConfig struct {
	Level string
}

// Load reads ./.env (if present) and the process environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads the given env file (if present) and the process environment.
// Environment variables win over the file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			TemplatesDir: v.GetString("TEMPLATES_DIR"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Dataset: DatasetConfig{
			Source: strings.ToLower(strings.TrimSpace(v.GetString("DATASET_SOURCE"))),
			Path:   v.GetString("DATASET_PATH"),
		},
		Dashboard: DashboardConfig{
			RouteLimit: v.GetInt("DASHBOARD_ROUTE_LIMIT"),
			MapLimit:   v.GetInt("DASHBOARD_MAP_LIMIT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			Table:           v.GetString("DB_TABLE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DashboardCacheTTL: time.Duration(v.GetInt("DASHBOARD_CACHE_TTL")) * time.Second,
			MemoryEntries:     v.GetInt("DASHBOARD_MEMORY_CACHE_SIZE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("TEMPLATES_DIR", "templates")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("DATASET_SOURCE", DatasetSourceCSV)
	v.SetDefault("DATASET_PATH", "dfTransjakarta180kRows.csv")
	v.SetDefault("DASHBOARD_ROUTE_LIMIT", 10)
	v.SetDefault("DASHBOARD_MAP_LIMIT", 100)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TABLE", "tap_records")
	v.SetDefault("DB_MAX_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("DASHBOARD_CACHE_TTL", 3600)
	v.SetDefault("DASHBOARD_MEMORY_CACHE_SIZE", 256)
	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceCSV:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH is required for csv source")
		}
	case DatasetSourcePostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("DB_NAME is required for postgres source")
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Dataset.Source)
	}

	if c.Dashboard.RouteLimit <= 0 {
		return fmt.Errorf("DASHBOARD_ROUTE_LIMIT must be positive")
	}
	if c.Dashboard.MapLimit <= 0 {
		return fmt.Errorf("DASHBOARD_MAP_LIMIT must be positive")
	}
	if !c.Redis.Enabled && c.Cache.MemoryEntries <= 0 {
		return fmt.Errorf("DASHBOARD_MEMORY_CACHE_SIZE must be positive when Redis is disabled")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
