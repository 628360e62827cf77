package tui

import (
	"time"

	"github.com/Veraticus/logistics-pro/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Width        int
	Height       int
	ErrorTimeout time.Duration
	ShowHelp     bool
	AltScreen    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Width:        120,
		Height:       40,
		ErrorTimeout: 5 * time.Second,
		ShowHelp:     true,
		AltScreen:    true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHelp toggles the key hint line under the frame.
func WithHelp(enabled bool) Option {
	return func(c *Config) {
		c.ShowHelp = enabled
	}
}

// WithAltScreen toggles rendering on the terminal's alternate screen.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithErrorTimeout sets how long an error stays in the status line.
func WithErrorTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.ErrorTimeout = d
	}
}
