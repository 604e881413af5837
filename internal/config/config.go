// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package config loads and validates application configuration.
//
// Configuration is loaded via Koanf v2 with layered sources, highest priority
// last:
//
//  1. Built-in defaults (structs provider)
//  2. Config file (config.yaml, YAML parser)
//  3. Environment variables (MOVIEGRAPH_ prefix, e.g. MOVIEGRAPH_SERVER_PORT)
//
// A handful of flat aliases (PORT, NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD,
// TMDB_API_KEY, LOG_LEVEL) are honored for container-friendly deployment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Neo4j   Neo4jConfig   `koanf:"neo4j"`
	TMDB    TMDBConfig    `koanf:"tmdb"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// QueryTimeout bounds each graph query issued by a handler.
	QueryTimeout time.Duration `koanf:"query_timeout"`

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Neo4jConfig configures the graph database connection.
// The driver is constructed once at process start and injected into the
// services that need it; there is no lazy module-level connection state.
type Neo4jConfig struct {
	URI      string `koanf:"uri"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Database string `koanf:"database"`
}

// TMDBConfig configures the external movie-metadata client used for poster
// resolution. When APIKey is empty the TMDB tier of the poster fallback chain
// is skipped and only the curated map and placeholder tiers apply.
type TMDBConfig struct {
	APIKey    string        `koanf:"api_key"`
	BaseURL   string        `koanf:"base_url"`
	ImageBase string        `koanf:"image_base"`
	Timeout   time.Duration `koanf:"timeout"`
}

// APIConfig bounds request parameters.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
	DefaultRecLimit int `koanf:"default_rec_limit"`
	MaxRecLimit     int `koanf:"max_rec_limit"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Default returns a Config with all default values. Defaults are applied
// first, then overridden by config file and environment variables.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			QueryTimeout:      10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Neo4j: Neo4jConfig{
			URI:      "neo4j://localhost:7687",
			Username: "neo4j",
			Password: "",
			Database: "",
		},
		TMDB: TMDBConfig{
			APIKey:    "",
			BaseURL:   "https://api.themoviedb.org/3",
			ImageBase: "https://image.tmdb.org/t/p/w342",
			Timeout:   5 * time.Second,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			DefaultRecLimit: 10,
			MaxRecLimit:     50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range [1, 65535]", c.Server.Port)
	}

	if c.Neo4j.URI == "" {
		return fmt.Errorf("config: neo4j.uri must not be empty")
	}

	if !strings.Contains(c.Neo4j.URI, "://") {
		return fmt.Errorf("config: neo4j.uri %q missing scheme (expected neo4j:// or bolt://)", c.Neo4j.URI)
	}

	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("config: api.default_page_size %d out of range [1, %d]",
			c.API.DefaultPageSize, c.API.MaxPageSize)
	}

	if c.API.DefaultRecLimit < 1 || c.API.DefaultRecLimit > c.API.MaxRecLimit {
		return fmt.Errorf("config: api.default_rec_limit %d out of range [1, %d]",
			c.API.DefaultRecLimit, c.API.MaxRecLimit)
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: logging.format %q must be json or console", c.Logging.Format)
	}

	return nil
}

// applyFlatEnvAliases maps well-known flat environment variables onto the
// nested config structure. These exist for container deployments where
// MOVIEGRAPH_NEO4J_URI style names are unwieldy.
func (c *Config) applyFlatEnvAliases() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		c.Neo4j.Username = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
	if v := os.Getenv("NEO4J_DATABASE"); v != "" {
		c.Neo4j.Database = v
	}
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		c.TMDB.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
