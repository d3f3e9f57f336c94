package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/atul121001/bookshelf/internal/config"
	"github.com/atul121001/bookshelf/internal/library"
	"github.com/atul121001/bookshelf/internal/notify"
	"github.com/atul121001/bookshelf/internal/prefs"
	"github.com/atul121001/bookshelf/internal/query"
	"github.com/atul121001/bookshelf/internal/state"
	"github.com/atul121001/bookshelf/internal/ui"
)

// Options configure the bookshelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bookshelf/prefs.toml
}

// Run boots the bookshelf TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	closeLog := redirectLog(cfg.LogPath())
	defer closeLog()

	client, err := library.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init library client: %w", err)
	}

	toasts := notify.New()
	controller := state.New(ctx, client, toasts)
	combiner := query.NewCombiner(controller.SetQuery)

	// Initial load at the default query.
	combiner.Refresh()

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: controller,
		Toasts:     toasts,
		Combiner:   combiner,
		ThemeName:  userPrefs.Theme,
		Criteria:   userPrefs.Criteria,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// redirectLog points the stdlib logger at the diagnostic log file so it
// never writes over the terminal. When the file cannot be opened the log
// output is discarded instead.
func redirectLog(path string) func() {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(file)
	return func() { _ = file.Close() }
}
