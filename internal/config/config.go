package config

import (
	"os"

	"github.com/d-becker/schnapsen/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the schnapsen server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	JWT    struct {
		// Secret signs the seat tokens. A random secret is used if it is empty
		Secret string `yaml:"secret" envconfig:"secret"`
	} `yaml:"jwt"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional, environment variables prefixed with SCHNAPSEN_ override it
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SCHNAPSEN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("schnapsen", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
