package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store modes, chosen once at startup from the connection strings.
const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

type Config struct {
	ServerPort string `mapstructure:"PORT"`
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	MongoURI    string `mapstructure:"MONGO_URI"`
	MongoDB     string `mapstructure:"MONGO_DB"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	SeedMock    bool   `mapstructure:"SEED_MOCK"`

	ClientDist  string `mapstructure:"CLIENT_DIST"`
	InitRoute   string `mapstructure:"INIT_ROUTE"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	RateLimitPerSec float64 `mapstructure:"RATE_LIMIT_PER_SEC"`
	RateLimitBurst  int     `mapstructure:"RATE_LIMIT_BURST"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL",
	"MONGO_URI", "MONGO_DB", "DATABASE_URL", "SEED_MOCK",
	"CLIENT_DIST", "INIT_ROUTE", "CORS_ORIGINS",
	"RATE_LIMIT_PER_SEC", "RATE_LIMIT_BURST",
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is the normal case outside development
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper builds a Config from v, applying defaults and binding env keys.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DB", "salon")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SEED_MOCK", true)
	v.SetDefault("CLIENT_DIST", "../client/dist")
	v.SetDefault("INIT_ROUTE", "/")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_PER_SEC", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !strings.HasPrefix(cfg.InitRoute, "/") {
		cfg.InitRoute = "/" + cfg.InitRoute
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// StoreMode reports which backing store the connection strings select.
// MONGO_URI wins over DATABASE_URL; neither means in-memory.
func (c *Config) StoreMode() string {
	switch {
	case c.MongoURI != "":
		return StoreMongo
	case c.DatabaseURL != "":
		return StorePostgres
	default:
		return StoreMemory
	}
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
