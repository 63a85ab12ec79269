package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := cfg.Detection
	if d.TailRatioThreshold != 2 || *d.MinBodySize != 0.1 || *d.VolumeMultiplier != 1.2 ||
		d.LookbackDays != 10 || d.ComparisonDays != 180 {
		t.Errorf("unexpected detection defaults: %+v", d)
	}
	if cfg.DataSource.Provider != "yahoo" || cfg.DataSource.DailyDays != 180 || cfg.DataSource.WeeklyWeeks != 52 {
		t.Errorf("unexpected data source defaults: %+v", cfg.DataSource)
	}
	if !*cfg.Universe.Nasdaq100 || !*cfg.Universe.SP500 || !*cfg.Universe.Others {
		t.Error("expected all universe lists enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
detection:
  tail_ratio_threshold: 3
  lookback_days: 20
universe:
  sp500: false
  extra: [PLTR]
`)
	t.Setenv("LOOKBACK_DAYS", "30")
	t.Setenv("VOLUME_MULTIPLIER", "1.5")
	t.Setenv("MIN_BODY_SIZE", "not-a-number")
	t.Setenv("EXTRA_TICKERS", "SOFI,HOOD")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Detection.TailRatioThreshold != 3 {
		t.Errorf("expected tail ratio 3 from file, got %v", cfg.Detection.TailRatioThreshold)
	}
	if cfg.Detection.LookbackDays != 30 {
		t.Errorf("expected env to override lookback, got %d", cfg.Detection.LookbackDays)
	}
	if *cfg.Detection.VolumeMultiplier != 1.5 {
		t.Errorf("expected volume multiplier 1.5, got %v", *cfg.Detection.VolumeMultiplier)
	}
	if *cfg.Detection.MinBodySize != 0.1 {
		t.Errorf("expected malformed override ignored, got %v", *cfg.Detection.MinBodySize)
	}
	if *cfg.Universe.SP500 {
		t.Error("expected sp500 disabled from file")
	}
	if len(cfg.Universe.Extra) != 3 {
		t.Errorf("expected 3 extra tickers, got %v", cfg.Universe.Extra)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "ftp" }, true},
		{"rest without url", func(c *Config) { c.DataSource.Provider = "rest" }, true},
		{"token without chat", func(c *Config) { c.Telegram.BotToken = "x" }, true},
		{"telegram complete", func(c *Config) { c.Telegram.BotToken, c.Telegram.ChatID = "x", "1" }, false},
		{"negative ratio", func(c *Config) { c.Detection.TailRatioThreshold = -1 }, true},
		{"zero workers", func(c *Config) { c.Scan.Workers = 0 }, true},
		{"negative body size", func(c *Config) { v := -0.1; c.Detection.MinBodySize = &v }, true},
		{"zero volume multiplier", func(c *Config) { v := 0.0; c.Detection.VolumeMultiplier = &v }, false},
	}
	for _, tt := range tests {
		cfg := &Config{}
		applyDefaults(cfg)
		tt.mutate(cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: expected error=%v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestLoad_ExplicitZeroIsKept(t *testing.T) {
	path := writeConfig(t, `
detection:
  min_body_size: 0
`)
	t.Setenv("VOLUME_MULTIPLIER", "0")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg.Detection.MinBodySize != 0 {
		t.Errorf("expected min body size 0 from file, got %v", *cfg.Detection.MinBodySize)
	}
	if *cfg.Detection.VolumeMultiplier != 0 {
		t.Errorf("expected volume multiplier 0 from env, got %v", *cfg.Detection.VolumeMultiplier)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected explicit zeros to validate, got %v", err)
	}
}
