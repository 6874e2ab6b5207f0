package gridcell

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("gridcell: invalid config")

// Config describes a grid and the template its blank cells are reset from.
type Config struct {
	Columns    int          `toml:"columns"`
	Lines      int          `toml:"lines"`
	Scrollback int          `toml:"scrollback"`
	Colors     ColorsConfig `toml:"colors"`
}

// ColorsConfig holds colors in any form ParseColor accepts.
type ColorsConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// DefaultConfig returns an 80x24 grid with the default colors.
func DefaultConfig() *Config {
	return &Config{
		Columns:    80,
		Lines:      24,
		Scrollback: DefaultMaxHistory,
		Colors: ColorsConfig{
			Foreground: DefaultForeground.String(),
			Background: DefaultBackground.String(),
		},
	}
}

// LoadConfig reads a TOML file over the defaults. Keys the file sets but
// Config does not know are logged and ignored.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "path", path, "key", key.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks dimensions and colors.
func (c *Config) Validate() error {
	if c.Columns <= 0 || c.Lines <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Columns, c.Lines)
	}
	if c.Scrollback < 0 {
		return fmt.Errorf("%w: negative scrollback %d", ErrInvalidConfig, c.Scrollback)
	}
	if _, err := c.Template(); err != nil {
		return err
	}
	return nil
}

// Template returns the cell that blank cells are reset from, and the pen
// text is written with by default.
func (c *Config) Template() (Cell, error) {
	t := NewCell()
	var err error
	if c.Colors.Foreground != "" {
		if t.Fg, err = ParseColor(c.Colors.Foreground); err != nil {
			return Cell{}, fmt.Errorf("%w: colors.foreground: %w", ErrInvalidConfig, err)
		}
	}
	if c.Colors.Background != "" {
		if t.Bg, err = ParseColor(c.Colors.Background); err != nil {
			return Cell{}, fmt.Errorf("%w: colors.background: %w", ErrInvalidConfig, err)
		}
	}
	return t, nil
}

// NewGridFromConfig validates cfg and builds a grid from it.
func NewGridFromConfig(cfg *Config) (*Grid, Cell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Cell{}, err
	}
	template, _ := cfg.Template()
	g := NewGrid(cfg.Columns, cfg.Lines, template)
	g.SetMaxHistory(cfg.Scrollback)
	return g, template, nil
}
