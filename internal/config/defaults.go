package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Store: StoreConfig{
			Path: defaultDBPath(),
		},
		Generator: GeneratorConfig{
			Backend: "gemini",
		},
		Auth: AuthConfig{
			Tokens: map[string]string{},
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studyloop/tasks.db"
	}
	return filepath.Join(home, ".studyloop", "tasks.db")
}
