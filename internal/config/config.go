// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Issue    IssueConfig
	LLM      LLMConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds the log file location. The TUI owns stdout, so logs always
// go to a file.
type LogConfig struct {
	Path string
}

// IssueConfig holds the mock issuance timer thresholds.
type IssueConfig struct {
	SlowAfter time.Duration `mapstructure:"slow_after"`
	DoneAfter time.Duration `mapstructure:"done_after"`
}

// LLMConfig holds optional AI-opinion provider settings.
type LLMConfig struct {
	Provider  string
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
	Model     string
	BaseURL   string `mapstructure:"base_url"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// ZIKIM_; the config file is TOML at $ZIKIM_CONFIG or
// ~/.config/zikim/config.toml.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "zikim")
	v.SetDefault("database.path", filepath.Join(dataDir, "zikim.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "zikim.log"))
	v.SetDefault("issue.slow_after", "1500ms")
	v.SetDefault("issue.done_after", "3s")
	v.SetDefault("llm.provider", "heuristic")
	v.SetDefault("llm.api_key_env", "OPENAI_API_KEY")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.base_url", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ZIKIM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "zikim"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ZIKIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Issue.SlowAfter <= 0 || c.Issue.DoneAfter <= c.Issue.SlowAfter {
		return Config{}, fmt.Errorf("issue timers: slow_after must be positive and below done_after (got %s / %s)", c.Issue.SlowAfter, c.Issue.DoneAfter)
	}
	return c, nil
}

// ResolveAPIKey returns the configured LLM key, preferring the env var over
// the config file value.
func (c Config) ResolveAPIKey() string {
	if env := strings.TrimSpace(c.LLM.APIKeyEnv); env != "" {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return strings.TrimSpace(c.LLM.APIKey)
}
