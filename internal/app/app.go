package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Alessio99-a/fetchbind/internal/config"
	"github.com/Alessio99-a/fetchbind/internal/fetch"
	"github.com/Alessio99-a/fetchbind/internal/prefs"
	"github.com/Alessio99-a/fetchbind/internal/request"
	"github.com/Alessio99-a/fetchbind/internal/ui"
)

// Options configure the fetchbind TUI.
type Options struct {
	Config      *config.Config
	Logger      zerolog.Logger
	RequestName string // empty binds the configured default
	PrefsPath   string // empty uses ~/.config/fetchbind/prefs.toml
}

// Run wires transport, coordinator, binder and UI together and blocks until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		return fmt.Errorf("configuration is required")
	}

	req, err := cfg.Request(opts.RequestName)
	if err != nil {
		return err
	}
	name := opts.RequestName
	if name == "" {
		name = cfg.Default
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := request.NewClient[ui.Payload](
		cfg.BaseURL,
		opts.Logger.With().Str("component", "transport").Logger(),
	)
	if err != nil {
		return fmt.Errorf("init transport: %w", err)
	}

	coord := fetch.New[ui.Payload](
		client,
		req.Options(),
		fetch.WithParent(ctx),
		fetch.WithLogger(opts.Logger.With().Str("component", "coordinator").Logger()),
	)
	binder := fetch.NewBinder(coord, cfg.AutoRun)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return ui.Run(ui.Options{
		Coordinator: coord,
		Binder:      binder,
		RequestName: name,
		Base:        req.Options(),
		PollTick:    cfg.UI.PollInterval(),
		WatchTick:   cfg.UI.WatchInterval(),
		ThemeName:   userPrefs.Theme,
		PrefsPath:   prefsPath,
		Watch:       userPrefs.Watch,
	})
}
