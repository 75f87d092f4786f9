package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	findersort "github.com/magicdawn/finder-sort"
	"github.com/magicdawn/finder-sort/internal/adapter/lines"
	"github.com/magicdawn/finder-sort/internal/port"
)

// Option configures the App.
type Option func(*App)

// WithLogger sets a custom logger for the App.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithCodec replaces the delimiter-based path codec.
func WithCodec(codec port.PathCodec) Option {
	return func(a *App) {
		a.codec = codec
	}
}

// App reads a path list, sorts it in Finder order and writes it back out.
type App struct {
	cfg    Config
	codec  port.PathCodec
	logger *slog.Logger
}

// NewApp creates a new App for cfg. The codec defaults to newline- or
// NUL-delimited paths depending on cfg.Null.
func NewApp(cfg Config, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		codec:  lines.NewCodec(cfg.Null),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run sorts the paths read from r and writes them to w.
func (a *App) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	paths, err := a.codec.Decode(r)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	sorted := findersort.SortStrings(paths,
		findersort.WithFolderFirst(a.cfg.FolderFirst),
		findersort.WithLocale(a.cfg.Locale),
	)
	a.logger.Debug("paths sorted",
		"count", len(sorted),
		"locale", a.cfg.Locale,
		"folder_first", a.cfg.FolderFirst,
		"elapsed", time.Since(start),
	)

	if err := a.codec.Encode(w, sorted); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
