package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // Asia/Seoul on hosts without zoneinfo

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration loaded from configs/config.<APP_ENV>.yaml
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Host            string `yaml:"host"`
	Env             string `yaml:"env"`
	Port            int    `yaml:"port"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec"`
}

// DatabaseConfig MySQL settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	DBName          string `yaml:"dbname"`
	LogLevel        string `yaml:"log_level"`
	Port            int    `yaml:"port"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
}

// RedisConfig Redis settings. Empty host disables Redis.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Password string `yaml:"password"`
	Port     int    `yaml:"port"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// AuthConfig admin token verification settings.
// Mode "remote" calls the introspection URL, "jwt" verifies HS256 tokens locally.
type AuthConfig struct {
	Mode          string `yaml:"mode"`
	IntrospectURL string `yaml:"introspect_url"`
	JWTSecret     string `yaml:"jwt_secret"`
	TimeoutSec    int    `yaml:"timeout_sec"`
	CacheTTLSec   int    `yaml:"cache_ttl_sec"`
}

// CORSConfig CORS settings
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// RateLimitConfig per-IP request budget
type RateLimitConfig struct {
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	Enabled           bool `yaml:"enabled"`
}

// AnalysisConfig analytics query limits
type AnalysisConfig struct {
	MaxPeriods int `yaml:"max_periods"`
}

// Load reads and parses the YAML file at path, then applies env overrides and defaults
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// applyEnv lets secrets come from the environment instead of the file
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("ADMIN_INTROSPECT_URL"); v != "" {
		c.Auth.IntrospectURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeoutSec == 0 {
		c.Server.ReadTimeoutSec = 15
	}
	if c.Server.WriteTimeoutSec == 0 {
		c.Server.WriteTimeoutSec = 15
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 10
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 50
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Auth.Mode == "" {
		c.Auth.Mode = "remote"
	}
	if c.Auth.TimeoutSec == 0 {
		c.Auth.TimeoutSec = 5
	}
	if c.Auth.CacheTTLSec == 0 {
		c.Auth.CacheTTLSec = 60
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 300
	}
	if c.Analysis.MaxPeriods == 0 {
		c.Analysis.MaxPeriods = 30
	}
	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = []string{"http://localhost:3000"}
	}
}

// IsDevelopment reports whether the server runs in a local/dev environment
func (c *Config) IsDevelopment() bool {
	switch c.Server.Env {
	case "", "local", "dev", "development":
		return true
	}
	return false
}

// Addr returns host:port for the HTTP listener
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Location is the database session time zone
const Location = "Asia/Seoul"

// MySQLConfig builds the driver configuration. Update statements report matched rows
// (ClientFoundRows) so a no-op UPDATE on an existing member is not mistaken for a miss.
func (d DatabaseConfig) MySQLConfig() (*mysqldriver.Config, error) {
	loc, err := time.LoadLocation(Location)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", Location, err)
	}
	mc := mysqldriver.NewConfig()
	mc.User = d.User
	mc.Passwd = d.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	mc.DBName = d.DBName
	mc.ParseTime = true
	mc.Loc = loc
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc, nil
}

// AuthTimeout returns the introspection HTTP timeout
func (c *Config) AuthTimeout() time.Duration {
	return time.Duration(c.Auth.TimeoutSec) * time.Second
}

// AuthCacheTTL returns how long a positive admin verdict is cached
func (c *Config) AuthCacheTTL() time.Duration {
	return time.Duration(c.Auth.CacheTTLSec) * time.Second
}

// LogResolved logs the effective configuration without secrets
func LogResolved(cfg *Config, log *zerolog.Logger) {
	log.Info().
		Str("env", cfg.Server.Env).
		Str("addr", cfg.Addr()).
		Str("db_host", cfg.Database.Host).
		Int("db_port", cfg.Database.Port).
		Str("db_name", cfg.Database.DBName).
		Str("redis_host", cfg.Redis.Host).
		Str("auth_mode", cfg.Auth.Mode).
		Bool("rate_limit", cfg.RateLimit.Enabled).
		Msg("config resolved")
}
