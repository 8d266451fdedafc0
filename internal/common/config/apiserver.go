package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type (
	APIServerConfig struct {
		Server   ServerConfig   `yaml:"server"`
		Database DatabaseConfig `yaml:"database"`
		Identity IdentityConfig `yaml:"identity"`
		Logger   LoggerConfig   `yaml:"logger"`
		I18n     I18nConfig     `yaml:"i18n"`
	}

	// ServerConfig represents the HTTP server configuration
	ServerConfig struct {
		Port int `yaml:"port"`
	}

	// I18nConfig represents the internationalization configuration
	I18nConfig struct {
		Path          string `yaml:"path"`           // Path to i18n translation files
		DefaultLocale string `yaml:"default_locale"` // Default locale for messages
	}

	// DatabaseConfig represents the persistence configuration. An empty
	// type means storage is not configured and the server runs in the
	// degraded defaults-only mode.
	DatabaseConfig struct {
		Type     string `yaml:"type"`     // mysql, postgres, sqlite, or empty
		Host     string `yaml:"host"`     // localhost
		Port     int    `yaml:"port"`     // 3306 (for mysql), 5432 (for postgres)
		User     string `yaml:"user"`     // root (for mysql), postgres (for postgres)
		Password string `yaml:"password"` // password
		DBName   string `yaml:"dbname"`   // database name, or file path for sqlite
		SSLMode  string `yaml:"sslmode"`  // disable (for postgres)
	}

	// IdentityConfig represents the external identity provider configuration
	IdentityConfig struct {
		Provider     string        `yaml:"provider"`      // jwt or noop
		SecretKey    string        `yaml:"secret_key"`    // session token signing secret
		APIKey       string        `yaml:"api_key"`       // management API key
		BaseURL      string        `yaml:"base_url"`      // management API base URL
		Timeout      time.Duration `yaml:"timeout"`       // management API request timeout
		TokenMaxSkew time.Duration `yaml:"token_max_skew"` // accepted clock skew for session tokens
	}
)

// Configured reports whether a persistence backend is configured.
func (c *DatabaseConfig) Configured() bool {
	return c.Type != ""
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres":
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(c.DBName), 0755); err != nil {
			panic(fmt.Errorf("failed to create directory for sqlite database: %w", err))
		}
		return c.DBName // For SQLite, DBName is the file path
	default:
		return ""
	}
}

func (c *APIServerConfig) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5234
	}
	if c.I18n.Path == "" {
		c.I18n.Path = "configs/i18n"
	}
	if c.I18n.DefaultLocale == "" {
		c.I18n.DefaultLocale = "en"
	}
	if c.Identity.Provider == "" {
		c.Identity.Provider = "jwt"
	}
	if c.Identity.Timeout <= 0 {
		c.Identity.Timeout = 10 * time.Second
	}
}
