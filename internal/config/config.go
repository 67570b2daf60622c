package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		// URI wins over the individual connection fields when set.
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Scheme         string `yaml:"scheme" env:"DB_SCHEME"`
		Host           string `yaml:"host" env:"DB_HOST"`
		User           string `yaml:"user" env:"DB_USER"`
		Password       string `yaml:"password" env:"DB_PASS"`
		Name           string `yaml:"name" env:"DB_NAME"`
		MaxPoolSize    int    `yaml:"max_pool_size" env:"DB_MAX_POOL_SIZE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
		QueryTimeout   string `yaml:"query_timeout" env:"DB_QUERY_TIMEOUT"`
		StrictAPI      bool   `yaml:"strict_api" env:"DB_STRICT_API"`
		Seed           bool   `yaml:"seed" env:"DB_SEED"`
	} `yaml:"database"`

	CORS struct {
		// Comma separated; "*" allows every origin.
		AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; env vars alone are enough to run.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"

	config.Database.Scheme = "mongodb"
	config.Database.Host = "localhost:27017"
	config.Database.Name = "CollegeEZNow"
	config.Database.MaxPoolSize = 50
	config.Database.ConnectTimeout = "10s"
	config.Database.QueryTimeout = "10s"

	config.CORS.AllowedOrigins = "*"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.URI == "" && config.Database.Host == "" {
		return fmt.Errorf("database uri or host is required")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.Database.Scheme {
	case "mongodb", "mongodb+srv":
	default:
		return fmt.Errorf("unsupported database scheme %q", config.Database.Scheme)
	}

	if _, err := time.ParseDuration(config.Database.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid database connect timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.QueryTimeout); err != nil {
		return fmt.Errorf("invalid database query timeout format: %w", err)
	}

	return nil
}

// GetMongoURI returns the MongoDB connection string.
// Credentials are escaped, so passwords containing '@' or ':' are safe.
func (c *Config) GetMongoURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	u := url.URL{
		Scheme: c.Database.Scheme,
		Host:   c.Database.Host,
		Path:   "/",
	}
	if c.Database.User != "" {
		u.User = url.UserPassword(c.Database.User, c.Database.Password)
	}
	if c.Database.Scheme == "mongodb+srv" {
		u.RawQuery = "retryWrites=true&w=majority"
	}

	return u.String()
}

// AllowedOrigins returns the configured CORS origins as a list
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORS.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
