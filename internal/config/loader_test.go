package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/staffsight/staffsight/internal/config"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"STAFFSIGHT_CONFIG",
		"STAFFSIGHT_ADDR",
		"STAFFSIGHT_LOG_LEVEL",
		"STAFFSIGHT_MAX_RANKING_LIMIT",
		"STAFFSIGHT_DEFAULT_RANKING_SIZE",
		"STAFFSIGHT_SENDGRID_API_KEY",
		"STAFFSIGHT_ALERT_FROM_EMAIL",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.MaxRankingLimit, convey.ShouldEqual, 100)
				convey.So(cfg.DefaultRankingSize, convey.ShouldEqual, 5)
				convey.So(cfg.Weights.Performance, convey.ShouldEqual, 0.40)
				convey.So(cfg.Scale.ProjectsCap, convey.ShouldEqual, 10.0)
				convey.So(cfg.Thresholds.SickLeaveCeiling, convey.ShouldEqual, 5)
				convey.So(cfg.SendGridAPIKey, convey.ShouldBeBlank)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("STAFFSIGHT_ADDR", ":8080")
			_ = os.Setenv("STAFFSIGHT_LOG_LEVEL", "debug")
			_ = os.Setenv("STAFFSIGHT_MAX_RANKING_LIMIT", "50")
			_ = os.Setenv("STAFFSIGHT_DEFAULT_RANKING_SIZE", "10")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.MaxRankingLimit, convey.ShouldEqual, 50)
				convey.So(cfg.DefaultRankingSize, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := `addr: ":7070"
log_level: warn
thresholds:
  low_satisfaction: 3.0
  low_score: 45
  promotion_score: 80
  promotion_tenure_years: 3
  promotion_training_hours: 25
  training_low_score: 35
  training_min_hours: 15
  sick_leave_ceiling: 4
weights:
  performance: 0.5
  projects: 0.2
  training: 0.2
  satisfaction: 0.1
`
			err := os.WriteFile(path, []byte(yaml), 0o600)
			convey.So(err, convey.ShouldBeNil)

			clearConfigEnvVars()
			_ = os.Setenv("STAFFSIGHT_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the file values layer over the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.Thresholds.LowSatisfaction, convey.ShouldEqual, 3.0)
				convey.So(cfg.Thresholds.SickLeaveCeiling, convey.ShouldEqual, 4)
				convey.So(cfg.Weights.Performance, convey.ShouldEqual, 0.5)
				// Untouched keys keep their defaults.
				convey.So(cfg.MaxRankingLimit, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When env vars layer over a YAML file", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			err := os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600)
			convey.So(err, convey.ShouldBeNil)

			clearConfigEnvVars()
			_ = os.Setenv("STAFFSIGHT_CONFIG", path)
			_ = os.Setenv("STAFFSIGHT_ADDR", ":6060")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the env var wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("STAFFSIGHT_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the load sentinel", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
			})
		})

		convey.Convey("When configured values are invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("STAFFSIGHT_DEFAULT_RANKING_SIZE", "500")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects the config", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}
