package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Poller   PollerConfig   `yaml:"poller"`
}

type DatabaseConfig struct {
	// Driver selects the dialect: "postgres" or "sqlite".
	Driver string `yaml:"driver"`
	// DSN may reference environment variables (${DB_PASSWORD} etc.).
	DSN string `yaml:"dsn"`
}

type ServerConfig struct {
	Port        int       `yaml:"port"`
	Concurrency int       `yaml:"concurrency"`
	LogConfig   LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type PollerConfig struct {
	// Schedule is a cron expression for the poll cycle.
	Schedule string `yaml:"schedule"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}
