package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	JWT       JWTConfig       `json:"jwt"`
	Assets    AssetsConfig    `json:"assets"`
	Uploads   UploadsConfig   `json:"uploads"`
	Inspector InspectorConfig `json:"inspector"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	RequestTimeout time.Duration `json:"requestTimeout"`
	Debug          bool          `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
	ConnectTimeout  int           `json:"connectTimeout"`
}

// JWTConfig holds JWT-related configuration. Tokens are HS256-signed with a
// shared secret; TokenTTL is the fixed lifetime from issuance.
type JWTConfig struct {
	Secret   string        `json:"secret"`
	TokenTTL time.Duration `json:"tokenTtl"`
}

// AssetsConfig holds the static asset roots. The public tree is served
// unauthenticated; the private tree holds uploaded files and is served only
// behind the JWT gate.
type AssetsConfig struct {
	PublicPath  string `json:"publicPath"`
	PublicURL   string `json:"publicUrl"`
	PrivatePath string `json:"privatePath"`
	PrivateURL  string `json:"privateUrl"`
}

// UploadsConfig holds the upload policy: size ceiling and the allowed
// extension list ("jpg|jpeg|png|gif|webp" form, matched case-insensitively).
type UploadsConfig struct {
	AllowedExtensions string `json:"allowedExtensions"`
	MaxSize           int64  `json:"maxSize"`
}

// InspectorConfig holds the content inspection policy. Patterns is a
// comma-separated list of case-insensitive regular expressions; any match in
// a query string, multipart field name, file name, or text value rejects the
// request. VerboseBody also scans plain request bodies.
type InspectorConfig struct {
	Patterns    string `json:"patterns"`
	VerboseBody bool   `json:"verboseBody"`
}

const defaultForbiddenPatterns = `<script,javascript:,onerror\s*=,onload\s*=,drop\s+table`

// LoadFromEnv loads configuration from the environment.
// It follows a clear precedence:
// 1. Explicit environment variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	// godotenv.Load() reads the .env file into the environment for this
	// process only if the variables are not already set, which gives the
	// precedence above.
	if err := godotenv.Load(); err != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return loadWith(os.Getenv)
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return loadWith(func(key string) string { return envMap[key] })
}

func loadWith(getenv func(string) string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return defaultValue
	}
	getInt := func(key string, defaultValue int) int {
		if value := getenv(key); value != "" {
			if parsed, err := strconv.Atoi(value); err == nil {
				return parsed
			}
		}
		return defaultValue
	}
	getInt64 := func(key string, defaultValue int64) int64 {
		if value := getenv(key); value != "" {
			if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
				return parsed
			}
		}
		return defaultValue
	}
	getBool := func(key string, defaultValue bool) bool {
		if value := getenv(key); value != "" {
			if parsed, err := strconv.ParseBool(value); err == nil {
				return parsed
			}
		}
		return defaultValue
	}
	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value := getenv(key); value != "" {
			if parsed, err := time.ParseDuration(value); err == nil {
				return parsed
			}
			if seconds, err := strconv.Atoi(value); err == nil {
				return time.Duration(seconds) * time.Second
			}
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Host:           get("SERVICE_HOST", "0.0.0.0"),
			Port:           getInt("SERVICE_PORT", 8080),
			RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Minute),
			Debug:          getBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            get("POSTGRES_HOST", "localhost"),
				Port:            getInt("POSTGRES_PORT", 5432),
				Username:        get("POSTGRES_USERNAME", ""),
				Password:        get("POSTGRES_PASSWORD", ""),
				Database:        get("POSTGRES_DATABASE", "loftwire"),
				SSLMode:         get("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
				ConnectTimeout:  getInt("POSTGRES_CONNECT_TIMEOUT", 10),
			},
		},
		JWT: JWTConfig{
			Secret:   get("JWT_SECRET_KEY", ""),
			TokenTTL: getDuration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Assets: AssetsConfig{
			PublicPath:  get("ASSETS_PUBLIC_PATH", "./assets/public"),
			PublicURL:   get("ASSETS_PUBLIC_URL", "/assets"),
			PrivatePath: get("ASSETS_PRIVATE_PATH", "./assets/private"),
			PrivateURL:  get("ASSETS_PRIVATE_URL", "/private"),
		},
		Uploads: UploadsConfig{
			AllowedExtensions: get("ASSET_ALLOWED_EXTENSIONS", "jpg|jpeg|png|gif|webp"),
			MaxSize:           getInt64("ASSET_MAX_SIZE", 50*1024*1024),
		},
		Inspector: InspectorConfig{
			Patterns:    get("FORBIDDEN_PATTERNS", defaultForbiddenPatterns),
			VerboseBody: getBool("INSPECT_VERBOSE_BODY", false),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks that required values are present and sane.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY must be set")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVICE_PORT: %d", c.Server.Port)
	}
	if c.Uploads.MaxSize <= 0 {
		return fmt.Errorf("ASSET_MAX_SIZE must be positive")
	}
	if strings.TrimSpace(c.Uploads.AllowedExtensions) == "" {
		return fmt.Errorf("ASSET_ALLOWED_EXTENSIONS must not be empty")
	}
	return nil
}

// Addr returns the host:port bind address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
