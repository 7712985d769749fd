package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	once     sync.Once
	defaults map[string]string
)

// Config returns the value for key, looking at the process environment (after
// loading .env) first and the YAML defaults file second.
func Config(key string) string {
	once.Do(load)
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaults[key]
}

// ConfigOr is Config with a fallback for unset keys.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

func load() {
	// .env is optional in containers
	_ = godotenv.Load()

	defaults = map[string]string{}
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return
	}
	parsed, err := parseDefaults(file)
	if err != nil {
		return
	}
	defaults = parsed
}

func parseDefaults(file []byte) (map[string]string, error) {
	values := map[string]string{}
	if err := yaml.Unmarshal(file, &values); err != nil {
		return nil, err
	}
	return values, nil
}
