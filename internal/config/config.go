package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Addr  string `yaml:"addr"`
		Debug bool   `yaml:"debug"`
	} `yaml:"server"`
	Database struct {
		// Backend is "sqlite" for development or "postgres" for deployment.
		Backend string `yaml:"backend"`
		DSN     string `yaml:"dsn"`
	} `yaml:"database"`
	Session struct {
		Secret string `yaml:"secret"`
	} `yaml:"session"`
	Admin struct {
		Username     string `yaml:"username"`
		PasswordHash string `yaml:"password_hash"`
	} `yaml:"admin"`
	Prosecutor struct {
		Username     string `yaml:"username"`
		PasswordHash string `yaml:"password_hash"`
	} `yaml:"prosecutor"`
	Uploads struct {
		Dir       string `yaml:"dir"`
		MaxSizeMB int64  `yaml:"max_size_mb"`
		AllowPDF  bool   `yaml:"allow_pdf"`
	} `yaml:"uploads"`
}

// Load reads configuration from the specified YAML file. A missing file is not
// an error: everything can be supplied through environment variables instead.
func Load(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err == nil {
		defer file.Close()
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	config.applyEnv()
	config.applyDefaults()
	return config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = "0.0.0.0:" + v
	}
	if v := os.Getenv("DATABASE_BACKEND"); v != "" {
		c.Database.Backend = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Session.Secret = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		c.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		c.Admin.PasswordHash = v
	}
	if v := os.Getenv("PROSECUTOR_USERNAME"); v != "" {
		c.Prosecutor.Username = v
	}
	if v := os.Getenv("PROSECUTOR_PASSWORD_HASH"); v != "" {
		c.Prosecutor.PasswordHash = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "0.0.0.0:8080"
	}
	if c.Database.Backend == "" {
		c.Database.Backend = "sqlite"
	}
	if c.Database.DSN == "" {
		c.Database.DSN = "data.db"
	}
	if c.Session.Secret == "" {
		c.Session.Secret = "default-secret-key-change-in-production"
	}
	if c.Admin.Username == "" {
		c.Admin.Username = "admin"
	}
	if c.Prosecutor.Username == "" {
		c.Prosecutor.Username = "prosecutor"
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "uploads"
	}
	if c.Uploads.MaxSizeMB == 0 {
		c.Uploads.MaxSizeMB = 5
	}
}
