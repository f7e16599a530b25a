package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type config struct {
	Strict  bool   `yaml:"strict"`
	Postfix bool   `yaml:"postfix"`
	Prompt  string `yaml:"prompt"`
}

func defaultConfig() *config {
	return &config{Prompt: "> "}
}

func configPath(path string) string {
	if path != "" {
		return path
	}
	if v := os.Getenv("GOCALC_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path = filepath.Join(home, ".gocalc.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadConfig reads the .env file, the YAML config file and GOCALC_*
// environment variables, later sources overriding earlier ones.
func loadConfig(path string) (*config, error) {
	envFile := envOrDefault("GOCALC_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", envFile, err)
	}

	cfg := defaultConfig()
	if path = configPath(path); path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if v := os.Getenv("GOCALC_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("GOCALC_STRICT: %w", err)
		}
		cfg.Strict = b
	}
	cfg.Prompt = envOrDefault("GOCALC_PROMPT", cfg.Prompt)
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
