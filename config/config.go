package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/logging"

	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Log    LogConfig
	// AutoSeed loads the sample menu at startup when the store has no menu items.
	AutoSeed bool
}

type ServerConfig struct {
	Address         string
	Port            int
	RateLimit       float64 // requests per second
	RateLimitBurst  int
	RequestTimeout  time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type StoreConfig struct {
	Driver        string
	MongoURI      string
	MongoDatabase string
	SQLitePath    string
	Postgres      PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// DSN returns the connection URL for pgx with user and password escaped.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}
	return u.String()
}

type LogConfig struct {
	Level slog.Level
}

// Load reads configuration from the environment, after loading a .env file
// if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Address:         getEnv("ADDRESS", ""),
			Port:            getInt("PORT", 8000),
			RateLimit:       getFloat("RATE_LIMIT", 100),
			RateLimitBurst:  getInt("RATE_LIMIT_BURST", 200),
			RequestTimeout:  getSeconds("REQUEST_TIMEOUT_SECONDS", 10*time.Second),
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: getSeconds("SHUTDOWN_TIMEOUT_SECONDS", 30*time.Second),
		},
		Store: StoreConfig{
			Driver:        strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
			MongoURI:      getEnv("MONGO_URI", getEnv("DB", "mongodb://localhost:27017")),
			MongoDatabase: getEnv("MONGO_DATABASE", "restaurant_db"),
			SQLitePath:    getEnv("SQLITE_PATH", "restaurant.db"),
			Postgres: PostgresConfig{
				Host:     getEnv("PG_HOST", "localhost"),
				Port:     getInt("PG_PORT", 5432),
				User:     getEnv("PG_USER", "postgres"),
				Password: getEnv("PG_PASSWORD", ""),
				Database: getEnv("PG_DATABASE", "restaurant"),
			},
		},
		Log: LogConfig{
			Level: logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		},
		AutoSeed: getBool("AUTO_SEED", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no safe fallback.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo, DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown store driver %q: must be one of mongo, memory, sqlite, postgres", c.Store.Driver)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v > 0 {
		return v
	}
	return def
}

func getSeconds(key string, def time.Duration) time.Duration {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
