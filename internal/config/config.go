package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/calcfin/internal/fx"
	"github.com/DjordjeVuckovic/calcfin/internal/quickcalc"
	"github.com/DjordjeVuckovic/calcfin/internal/vat"
	"github.com/DjordjeVuckovic/calcfin/pkg/config/env"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/calcfin.yaml"

type Config struct {
	Locale string     `yaml:"locale"`
	Calc   CalcConfig `yaml:"calc"`
	VAT    VATConfig  `yaml:"vat"`
	FX     FXConfig   `yaml:"fx"`
}

type CalcConfig struct {
	MaxExpressionLength int `yaml:"max_expression_length"`
}

type VATConfig struct {
	DefaultRate float64   `yaml:"default_rate"`
	Presets     []float64 `yaml:"presets"`
}

type FXConfig struct {
	ManualRate     float64       `yaml:"manual_rate"`
	BaseURL        string        `yaml:"base_url"`
	RefreshOnStart bool          `yaml:"refresh_on_start"`
	Timeout        time.Duration `yaml:"timeout"`
}

func Default() *Config {
	return &Config{
		Locale: quickcalc.DefaultLocale,
		Calc: CalcConfig{
			MaxExpressionLength: quickcalc.DefaultMaxLength,
		},
		VAT: VATConfig{
			DefaultRate: vat.DefaultRate,
			Presets:     append([]float64(nil), vat.DefaultPresets...),
		},
		FX: FXConfig{
			ManualRate:     fx.DefaultManualRate,
			BaseURL:        fx.DefaultFrankfurterURL,
			RefreshOnStart: true,
			Timeout:        10 * time.Second,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("Config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config YAML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Locale = env.GetOr("CALC_LOCALE", c.Locale)
	c.FX.BaseURL = env.GetOr("FX_BASE_URL", c.FX.BaseURL)
	c.FX.RefreshOnStart = env.GetBool("FX_REFRESH_ON_START", c.FX.RefreshOnStart)

	maxLen, err := env.GetInt("MAX_EXPRESSION_LENGTH", c.Calc.MaxExpressionLength)
	if err != nil {
		return fmt.Errorf("invalid MAX_EXPRESSION_LENGTH: %w", err)
	}
	c.Calc.MaxExpressionLength = maxLen

	rate, err := env.GetFloat("FX_MANUAL_RATE", c.FX.ManualRate)
	if err != nil {
		return fmt.Errorf("invalid FX_MANUAL_RATE: %w", err)
	}
	c.FX.ManualRate = rate
	return nil
}

func (c *Config) Validate() error {
	if c.Calc.MaxExpressionLength <= 0 {
		return fmt.Errorf("calc.max_expression_length must be positive, got %d", c.Calc.MaxExpressionLength)
	}
	if c.FX.ManualRate <= 0 {
		return fmt.Errorf("fx.manual_rate must be positive, got %v", c.FX.ManualRate)
	}
	if len(c.VAT.Presets) == 0 {
		return fmt.Errorf("vat.presets must not be empty")
	}
	for _, p := range c.VAT.Presets {
		if p <= -100 {
			return fmt.Errorf("vat preset %v is out of range", p)
		}
	}
	return nil
}
