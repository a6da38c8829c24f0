package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Options configures a game session.
type Options struct {
	Seed       int64 // seed for the first game; 0 = time-based
	Palette    t2048.Palette
	ShareTitle string
	ShareURL   string
	Player     string // stored with scores; empty for local play

	Sharer   Sharer             // nil shows the share text instead of copying it
	Renderer *lipgloss.Renderer // nil uses the process default
	Logger   *log.Logger        // nil discards
}

// DefaultOptions returns options built from the default configuration.
func DefaultOptions() Options {
	opts, err := NewOptions(config.Default())
	if err != nil {
		// The built-in theme always resolves.
		panic(err)
	}
	return opts
}

// NewOptions builds session options from the application config.
func NewOptions(cfg config.Config) (Options, error) {
	colors, err := cfg.Theme.Colors()
	if err != nil {
		return Options{}, fmt.Errorf("tui: %w", err)
	}

	return Options{
		Seed:       cfg.Game.Seed,
		Palette:    t2048.Palette(colors),
		ShareTitle: cfg.Share.Title,
		ShareURL:   cfg.Share.URL,
	}, nil
}

// logger returns the configured logger or a discarding one.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}
