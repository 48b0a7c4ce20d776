package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// Completion API (OpenAI-compatible)
	APIKey  string `env:"DASHSCOPE_API_KEY,required"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://dashscope.aliyuncs.com/compatible-mode/v1"`

	// Models offered in the UI selector
	DefaultModel string   `env:"DEFAULT_MODEL" envDefault:"qwen-vl-max"`
	Models       []string `env:"MODELS" envSeparator:"," envDefault:"qwen-vl-max,qwen-vl-plus"`

	// Session storage
	SessionsDir string `env:"SESSIONS_DIR" envDefault:"sessions"`

	// Persist a fresh empty session file as soon as it is created, instead of
	// waiting for the first exchange.
	PersistEmptySessions bool `env:"PERSIST_EMPTY_SESSIONS" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) HasModel(id string) bool {
	for _, m := range c.Models {
		if m == id {
			return true
		}
	}
	return false
}
