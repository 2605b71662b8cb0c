package translator

import (
	"context"
	"time"
)

// ServiceConfig configures the upstream generation service.
type ServiceConfig struct {
	APIKey  string        `mapstructure:"api_key" json:"-"`
	BaseURL string        `mapstructure:"base_url" json:"base_url"`
	Model   string        `mapstructure:"model" json:"model"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Translator turns text into the named target language. Implementations make
// at most one upstream call per invocation and return *internal.Error values.
type Translator interface {
	Name() string
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
