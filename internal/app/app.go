package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Pankaj-Bori/mybank-management-system/internal/config"
	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/logging"
	"github.com/Pankaj-Bori/mybank-management-system/internal/session"
	"github.com/Pankaj-Bori/mybank-management-system/internal/store"
)

type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Registry   *ledger.Registry
	Session    *session.Session
	Statements *StatementExporter
}

// NewApp builds the logger, the seeded registry and the session. The
// statement database is only opened on the first export.
func NewApp(cfg *config.Config, migrationFS fs.FS, logOut io.Writer) (*App, func(), error) {
	logger, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	registry, err := ledger.NewSeededRegistry(ledger.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to seed accounts: %w", err)
	}

	exportPath, err := ExportPath(cfg)
	if err != nil {
		return nil, nil, err
	}
	statements := NewStatementExporter(exportPath, migrationFS, cfg.Defaults.Currency, logger)

	cleanup := func() {
		if err := statements.Close(); err != nil {
			logger.Error("failed to close statement database", "error", err)
		}
	}

	return &App{
		Config:     cfg,
		Logger:     logger,
		Registry:   registry,
		Session:    session.New(registry, logger),
		Statements: statements,
	}, cleanup, nil
}

// StatementExporter writes snapshots to the SQLite statement store,
// opening it the first time it is needed. It is safe for concurrent use.
type StatementExporter struct {
	path     string
	fsys     fs.FS
	currency string
	logger   *slog.Logger
	now      func() time.Time

	mu    sync.Mutex
	store *store.Store
	err   error
}

func NewStatementExporter(path string, migrationFS fs.FS, currency string, logger *slog.Logger) *StatementExporter {
	return &StatementExporter{
		path:     path,
		fsys:     migrationFS,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

func (e *StatementExporter) Path() string { return e.path }

// FS returns the migrations filesystem the exporter was built with.
func (e *StatementExporter) FS() fs.FS { return e.fsys }

// open reports the first open failure on every later call.
func (e *StatementExporter) open() (*store.Store, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store == nil && e.err == nil {
		e.store, e.err = store.NewStore(e.path, e.fsys)
		if e.err == nil {
			e.logger.Debug("statement database opened", "path", e.path)
		}
	}
	return e.store, e.err
}

// Export labels the statement after the accounts it contains.
func (e *StatementExporter) Export(ctx context.Context, accounts []ledger.AccountData) (int64, error) {
	ids := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		ids = append(ids, acc.ID)
	}
	return e.ExportLabelled(ctx, strings.Join(ids, ","), accounts)
}

func (e *StatementExporter) ExportLabelled(ctx context.Context, label string, accounts []ledger.AccountData) (int64, error) {
	s, err := e.open()
	if err != nil {
		return 0, fmt.Errorf("failed to open statement database: %w", err)
	}

	id, err := s.SaveStatement(ctx, store.Statement{
		Label:     label,
		Currency:  e.currency,
		CreatedAt: e.now(),
		Accounts:  accounts,
	})
	if err != nil {
		return 0, err
	}
	e.logger.Info("statement exported", "export", id, "label", label, "accounts", len(accounts))
	return id, nil
}

// Store returns the opened store, or nil when nothing was exported yet
// or the exporter was closed.
func (e *StatementExporter) Store() *store.Store {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store
}

// Close closes the store if it was opened. A later export reopens it.
func (e *StatementExporter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store == nil {
		return nil
	}
	err := e.store.Close()
	e.store = nil
	return err
}

// ExportPath resolves export.path, defaulting to the app data directory.
func ExportPath(cfg *config.Config) (string, error) {
	if cfg.Export.Path != "" {
		return ExpandPath(cfg.Export.Path)
	}
	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, constants.StatementsFile), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppDirName), nil
	}

	return filepath.Join(configDir, constants.AppDirName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
