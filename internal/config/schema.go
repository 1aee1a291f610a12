package config

import "github.com/studyloop/studyloop/internal/core"

// Config is the full studyloop configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Store     StoreConfig     `mapstructure:"store" yaml:"store"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Auth      AuthConfig      `mapstructure:"auth" yaml:"auth"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// StoreConfig configures the task database
type StoreConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// GeneratorConfig configures the text-generation backend
type GeneratorConfig struct {
	// Backend is "gemini" or "openai"
	Backend      string `mapstructure:"backend" yaml:"backend"`
	GeminiAPIKey string `mapstructure:"gemini_api_key" yaml:"gemini_api_key"`
	OpenAIAPIKey string `mapstructure:"openai_api_key" yaml:"openai_api_key"`
}

// AuthConfig maps bearer tokens to user identifiers. This stands in for the
// external identity provider in local deployments.
type AuthConfig struct {
	Tokens map[string]string `mapstructure:"tokens" yaml:"tokens"`
}

// ToServiceConfig converts to core.Config
func (c *Config) ToServiceConfig() core.Config {
	return core.Config{
		GeminiAPIKey: c.Generator.GeminiAPIKey,
		OpenAIAPIKey: c.Generator.OpenAIAPIKey,
		TaskDBPath:   c.Store.Path,
		Generator:    c.Generator.Backend,
	}
}
