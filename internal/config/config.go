package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the tunable part of the bot's behaviour. Secrets (token,
// database credentials) stay in the environment; everything here may be
// edited in the YAML file without touching code.
type Config struct {
	// TooManyThreshold is the largest result set a query may produce
	// before the bot asks the user to narrow it instead of offering a
	// choice prompt.
	TooManyThreshold int `yaml:"too_many_threshold"`

	// ShowAllPageBreak is the number of day buckets rendered by
	// "show all" before the rest collapse into a single "+N more" line.
	ShowAllPageBreak int `yaml:"show_all_page_break"`

	// PromptTimeoutSeconds is how long a confirmation or choice prompt
	// stays actionable.
	PromptTimeoutSeconds int `yaml:"prompt_timeout_seconds"`

	// DigestCron is the cron spec for the weekly digest broadcast.
	DigestCron string `yaml:"digest_cron"`

	// DigestInterval optionally adds a fixed-interval digest trigger on
	// top of the cron one (e.g. "5m" while testing). Empty disables it.
	DigestInterval string `yaml:"digest_interval"`

	// AllDayDisplayHour is the hour used when rendering an event that has
	// no clock time as a point-in-time Discord timestamp.
	AllDayDisplayHour int `yaml:"all_day_display_hour"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TooManyThreshold:     5,
		ShowAllPageBreak:     24,
		PromptTimeoutSeconds: 180,
		DigestCron:           "0 12 * * 0",
		DigestInterval:       "",
		AllDayDisplayHour:    12,
	}
}

// Normalize fills zero/invalid values with defaults so a partially filled
// file still behaves.
func (c *Config) Normalize() {
	def := Default()
	if c.TooManyThreshold <= 0 {
		c.TooManyThreshold = def.TooManyThreshold
	}
	if c.ShowAllPageBreak <= 0 {
		c.ShowAllPageBreak = def.ShowAllPageBreak
	}
	if c.PromptTimeoutSeconds <= 0 {
		c.PromptTimeoutSeconds = def.PromptTimeoutSeconds
	}
	if c.DigestCron == "" {
		c.DigestCron = def.DigestCron
	}
	if c.AllDayDisplayHour < 0 || c.AllDayDisplayHour > 23 {
		c.AllDayDisplayHour = def.AllDayDisplayHour
	}
}

// PromptTimeout returns the prompt lifetime as a duration.
func (c *Config) PromptTimeout() time.Duration {
	return time.Duration(c.PromptTimeoutSeconds) * time.Second
}

// Load reads the YAML config at path. A missing file is first-run: the
// defaults are written out and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
