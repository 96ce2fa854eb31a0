// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep the scoring and rule tables in one place so they can be tuned
//   without touching classification logic.
// - Provide New(...) defaults and Load(ctx) layering.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"github.com/staffsight/staffsight/internal/domain/rules"
	"github.com/staffsight/staffsight/internal/domain/scoring"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxRankingLimit caps the limit parameter on ranking queries.
	MaxRankingLimit int `koanf:"max_ranking_limit"`

	// DefaultRankingSize is the top/bottom group size used when the
	// caller does not ask for one.
	DefaultRankingSize int `koanf:"default_ranking_size"`

	// Weights and Scale form the fixed productivity-score table.
	Weights scoring.Weights `koanf:"weights"`
	Scale   scoring.Scale   `koanf:"scale"`

	// Thresholds is the classification rule table.
	Thresholds rules.Thresholds `koanf:"thresholds"`

	// SendGridAPIKey enables outreach email delivery when set; with an
	// empty key the alerts endpoint returns drafts only.
	SendGridAPIKey string `koanf:"sendgrid_api_key"`

	// AlertFromEmail and AlertFromName identify the sender on outreach
	// emails.
	AlertFromEmail string `koanf:"alert_from_email"`
	AlertFromName  string `koanf:"alert_from_name"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		MaxRankingLimit:    100,
		DefaultRankingSize: 5,
		Weights:            scoring.DefaultWeights(),
		Scale:              scoring.DefaultScale(),
		Thresholds:         rules.DefaultThresholds(),
		AlertFromEmail:     "people-ops@staffsight.local",
		AlertFromName:      "Staffsight",
	}
}
