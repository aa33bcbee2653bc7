package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pankaj-Bori/mybank-management-system/internal/config"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Export.Path = filepath.Join(t.TempDir(), "out", "statements.db")
	return cfg
}

func TestNewApp(t *testing.T) {
	cfg := testConfig(t)
	application, cleanup, err := NewApp(cfg, os.DirFS("../.."), &bytes.Buffer{})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, []string{ledger.DemoAccountID, ledger.ReserveAccountID}, application.Registry.ListAccountIDs())
	assert.False(t, application.Session.LoggedIn())
	assert.Equal(t, cfg.Export.Path, application.Statements.Path())

	assert.Nil(t, application.Statements.Store())
	_, err = os.Stat(cfg.Export.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewApp_BadLogLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Level = "shout"
	_, _, err := NewApp(cfg, os.DirFS("../.."), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestStatementExporter_Export(t *testing.T) {
	cfg := testConfig(t)
	application, cleanup, err := NewApp(cfg, os.DirFS("../.."), &bytes.Buffer{})
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, application.Session.Login(ledger.DemoAccountID, "mybank@123"))
	require.NoError(t, application.Session.Deposit(decimal.NewFromInt(10), ""))
	snap, err := application.Session.Snapshot()
	require.NoError(t, err)

	ctx := context.Background()
	first, err := application.Statements.Export(ctx, []ledger.AccountData{snap})
	require.NoError(t, err)
	second, err := application.Statements.ExportLabelled(ctx, "all", application.Registry.Snapshots())
	require.NoError(t, err)
	assert.Greater(t, second, first)

	exports, err := application.Statements.Store().ListExports(ctx)
	require.NoError(t, err)
	require.Len(t, exports, 2)
	assert.Equal(t, ledger.DemoAccountID, exports[0].Label)
	assert.Equal(t, "USD", exports[0].Currency)
	assert.Equal(t, 2, exports[1].Accounts)

	txs, err := application.Statements.Store().ExportedTransactions(ctx, first, ledger.DemoAccountID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Manual Deposit", txs[0].Description)
}

func TestExportPath(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Export.Path = "/tmp/x.db"
	p, err := ExportPath(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", p)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cfg.Export.Path = "~/bank/x.db"
	p, err = ExportPath(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bank", "x.db"), p)
}

func TestStatementExporter_ConcurrentAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statements.db")
	exporter := NewStatementExporter(path, os.DirFS("../.."), "USD", slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = exporter.Close() })

	reg, err := ledger.NewSeededRegistry()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				_ = exporter.Store()
			}
		}()
	}
	_, err = exporter.ExportLabelled(context.Background(), "all", reg.Snapshots())
	wg.Wait()
	require.NoError(t, err)
	assert.NotNil(t, exporter.Store())
}

func TestStatementExporter_CloseAndReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "statements.db")
	exporter := NewStatementExporter(path, os.DirFS("../.."), "USD", slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = exporter.Close() })

	reg, err := ledger.NewSeededRegistry()
	require.NoError(t, err)

	require.NoError(t, exporter.Close())
	_, err = exporter.ExportLabelled(ctx, "first", reg.Snapshots())
	require.NoError(t, err)

	require.NoError(t, exporter.Close())
	assert.Nil(t, exporter.Store())
	require.NoError(t, exporter.Close())

	_, err = exporter.ExportLabelled(ctx, "second", reg.Snapshots())
	require.NoError(t, err)
	exports, err := exporter.Store().ListExports(ctx)
	require.NoError(t, err)
	assert.Len(t, exports, 2)
}
