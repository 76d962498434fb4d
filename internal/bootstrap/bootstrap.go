// Package bootstrap opens the configured sheet backend and record store.
// Both the server and the admin CLI start from here.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/showerplanner/internal/config"
	"github.com/mmynk/showerplanner/internal/sheet"
	"github.com/mmynk/showerplanner/internal/sheet/gsheets"
	"github.com/mmynk/showerplanner/internal/sheet/memory"
	"github.com/mmynk/showerplanner/internal/sheet/sqlite"
	"github.com/mmynk/showerplanner/internal/storage/sheetstore"
)

// OpenStore opens the backend named by cfg and returns the store on top of
// it, plus a function releasing the backend. When reg is non-nil backend
// calls are instrumented on it.
func OpenStore(ctx context.Context, cfg config.StorageConfig, reg prometheus.Registerer) (*sheetstore.Store, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	layout, err := sheetstore.ParseLayout(cfg.Layout, cfg.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	backend, closeFn, err := openBackend(ctx, cfg, layout.Tables())
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Storage initialized", "backend", cfg.Backend, "layout", cfg.Layout, "tables", layout.Tables())

	if reg != nil {
		backend = sheet.Instrument(backend, reg)
	}
	return sheetstore.New(backend, layout), closeFn, nil
}

func openBackend(ctx context.Context, cfg config.StorageConfig, tables []string) (sheet.Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		slog.Warn("Using in-memory storage; data is lost on exit")
		return memory.New(tables...), noop, nil

	case config.BackendSQLite:
		b, err := sqlite.New(ctx, cfg.SQLitePath, tables...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite backend: %w", err)
		}
		return b, b.Close, nil

	case config.BackendGSheets:
		b, err := gsheets.New(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open spreadsheet: %w", err)
		}
		return b, noop, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalid, cfg.Backend)
	}
}
