package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	APIKey  string `yaml:"API_KEY"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

// LoadConfig reads config.yaml and returns the parsed configuration. The
// value is handed to the constructors that need it; nothing package-level
// is mutated.
func LoadConfig() (*Config, error) {
	return LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := new(Config)
	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if config.AppPort == "" {
		config.AppPort = "8000"
	}
	return config, nil
}
