// Package config provides application configuration via Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig
	Fetch    FetchConfig
	Server   ServerConfig
	Neo4j    Neo4jConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Path string
}

type FetchConfig struct {
	AirportsURL    string
	AirlinesURL    string
	RoutesURL      string
	RateLimit      float64
	RequestTimeout time.Duration
	UserAgent      string
}

type ServerConfig struct {
	Host      string
	Port      int
	RateLimit float64
}

type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
}

type LogConfig struct {
	Level string
}

var defaultConfig = Config{
	Database: DatabaseConfig{
		Path: "airgraph.db",
	},
	Fetch: FetchConfig{
		AirportsURL:    "https://raw.githubusercontent.com/jpatokal/openflights/master/data/airports.dat",
		AirlinesURL:    "https://raw.githubusercontent.com/jpatokal/openflights/master/data/airlines.dat",
		RoutesURL:      "https://raw.githubusercontent.com/jpatokal/openflights/master/data/routes.dat",
		RateLimit:      2.0,
		RequestTimeout: 60 * time.Second,
		UserAgent:      "AirGraph/1.0 (https://github.com/lmcosta-dev/airgraph)",
	},
	Server: ServerConfig{
		Host:      "127.0.0.1",
		Port:      8080,
		RateLimit: 10.0,
	},
	Neo4j: Neo4jConfig{
		URI:      "bolt://localhost:7687",
		Username: "neo4j",
		Database: "neo4j",
	},
	Log: LogConfig{
		Level: "info",
	},
}

// Reads configuration from file and environment variables.
// Locations: ./config.yaml, ~/.config/airgraph/config.yaml
// Env vars prefixed with AIRGRAPH_ (e.g., AIRGRAPH_DATABASE_PATH).
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(userConfigDir(), "airgraph"))

	v.SetEnvPrefix("AIRGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Database.Path = v.GetString("database.path")
	cfg.Fetch.AirportsURL = v.GetString("fetch.airports_url")
	cfg.Fetch.AirlinesURL = v.GetString("fetch.airlines_url")
	cfg.Fetch.RoutesURL = v.GetString("fetch.routes_url")
	cfg.Fetch.RateLimit = v.GetFloat64("fetch.rate_limit")
	cfg.Fetch.RequestTimeout = v.GetDuration("fetch.request_timeout")
	cfg.Fetch.UserAgent = v.GetString("fetch.user_agent")
	cfg.Server.Host = v.GetString("server.host")
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.RateLimit = v.GetFloat64("server.rate_limit")
	cfg.Neo4j.URI = v.GetString("neo4j.uri")
	cfg.Neo4j.Username = v.GetString("neo4j.username")
	cfg.Neo4j.Password = v.GetString("neo4j.password")
	cfg.Neo4j.Database = v.GetString("neo4j.database")
	cfg.Log.Level = v.GetString("log.level")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", defaultConfig.Database.Path)
	v.SetDefault("fetch.airports_url", defaultConfig.Fetch.AirportsURL)
	v.SetDefault("fetch.airlines_url", defaultConfig.Fetch.AirlinesURL)
	v.SetDefault("fetch.routes_url", defaultConfig.Fetch.RoutesURL)
	v.SetDefault("fetch.rate_limit", defaultConfig.Fetch.RateLimit)
	v.SetDefault("fetch.request_timeout", defaultConfig.Fetch.RequestTimeout)
	v.SetDefault("fetch.user_agent", defaultConfig.Fetch.UserAgent)
	v.SetDefault("server.host", defaultConfig.Server.Host)
	v.SetDefault("server.port", defaultConfig.Server.Port)
	v.SetDefault("server.rate_limit", defaultConfig.Server.RateLimit)
	v.SetDefault("neo4j.uri", defaultConfig.Neo4j.URI)
	v.SetDefault("neo4j.username", defaultConfig.Neo4j.Username)
	v.SetDefault("neo4j.password", defaultConfig.Neo4j.Password)
	v.SetDefault("neo4j.database", defaultConfig.Neo4j.Database)
	v.SetDefault("log.level", defaultConfig.Log.Level)
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return ""
}
