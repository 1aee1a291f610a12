package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load merges configuration from the global and project config files, then
// applies environment overrides for secrets.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if home, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(home, ".studyloop", "config.yaml")
		if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading %s: %w", globalPath, err)
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		// Project config overrides global
		projectPath := filepath.Join(cwd, ".studyloop", "config.yaml")
		if err := loadFile(projectPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading %s: %w", projectPath, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func applyEnv(cfg *Config) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Generator.GeminiAPIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Generator.OpenAIAPIKey = key
	}
	if addr := os.Getenv("STUDYLOOP_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if path := os.Getenv("STUDYLOOP_DB"); path != "" {
		cfg.Store.Path = path
	}
	if backend := os.Getenv("STUDYLOOP_GENERATOR"); backend != "" {
		cfg.Generator.Backend = backend
	}
}

// Init writes a starter config file at path, failing if one already exists
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".studyloop", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".studyloop", "config.yaml")
}
