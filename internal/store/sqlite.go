package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store writes account statements to a SQLite file. It is an export
// target only: the ledger never reads its state back from here.
type Store struct {
	db *sqlx.DB
}

func NewStore(dbPath string, migrationsFS fs.FS) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sqlx.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not connect with database: %w", err)
	}
	if err := runMigrations(db.DB, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up): %w", err)
	}

	return nil
}

func (s *Store) execTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// SaveStatement writes the statement in one SQL transaction and returns
// the new export id. PINs are not part of the schema.
func (s *Store) SaveStatement(ctx context.Context, st Statement) (int64, error) {
	if len(st.Accounts) == 0 {
		return 0, ErrEmptyStatement
	}

	var exportID int64
	err := s.execTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO exports (label, currency, created_at) VALUES (?, ?, ?)`,
			st.Label, st.Currency, st.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert export: %w", err)
		}
		if exportID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get export id: %w", err)
		}

		for _, acc := range st.Accounts {
			row := ExportedAccount{
				ExportID:       exportID,
				AccountID:      acc.ID,
				OwnerName:      acc.OwnerName,
				AccountType:    string(acc.Type),
				InitialBalance: acc.InitialBalance,
				Balance:        acc.Balance,
				CreatedAt:      acc.CreatedAt,
			}
			if _, err := tx.NamedExecContext(ctx, `
				INSERT INTO accounts (export_id, account_id, owner_name, account_type, initial_balance, balance, created_at)
				VALUES (:export_id, :account_id, :owner_name, :account_type, :initial_balance, :balance, :created_at)
			`, row); err != nil {
				return fmt.Errorf("failed to insert account %s: %w", acc.ID, err)
			}

			rows := make([]ExportedTransaction, 0, len(acc.Transactions))
			for i := len(acc.Transactions) - 1; i >= 0; i-- {
				t := acc.Transactions[i]
				rows = append(rows, ExportedTransaction{
					ExportID:     exportID,
					AccountID:    acc.ID,
					Seq:          len(rows) + 1,
					TxID:         t.ID,
					Kind:         string(t.Kind),
					Amount:       t.Amount,
					Description:  t.Description,
					BalanceAfter: t.BalanceAfter,
					CreatedAt:    t.Timestamp,
				})
			}
			for _, r := range rows {
				if _, err := tx.NamedExecContext(ctx, `
					INSERT INTO transactions (export_id, account_id, seq, tx_id, kind, amount, description, balance_after, created_at)
					VALUES (:export_id, :account_id, :seq, :tx_id, :kind, :amount, :description, :balance_after, :created_at)
				`, r); err != nil {
					return fmt.Errorf("failed to insert transaction %s: %w", r.TxID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return exportID, nil
}

func (s *Store) ListExports(ctx context.Context) ([]Export, error) {
	var exports []Export
	err := s.db.SelectContext(ctx, &exports, `
		SELECT e.id, e.label, e.currency, e.created_at,
			(SELECT COUNT(*) FROM accounts a WHERE a.export_id = e.id) AS accounts
		FROM exports e
		ORDER BY e.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	return exports, nil
}

func (s *Store) ExportedAccounts(ctx context.Context, exportID int64) ([]ExportedAccount, error) {
	var accounts []ExportedAccount
	err := s.db.SelectContext(ctx, &accounts, `
		SELECT export_id, account_id, owner_name, account_type, initial_balance, balance, created_at
		FROM accounts
		WHERE export_id = ?
		ORDER BY account_id
	`, exportID)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %d: %w", exportID, err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrExportNotFound, exportID)
	}
	return accounts, nil
}

func (s *Store) ExportedTransactions(ctx context.Context, exportID int64, accountID string) ([]ExportedTransaction, error) {
	var txs []ExportedTransaction
	err := s.db.SelectContext(ctx, &txs, `
		SELECT export_id, account_id, seq, tx_id, kind, amount, description, balance_after, created_at
		FROM transactions
		WHERE export_id = ? AND account_id = ?
		ORDER BY seq
	`, exportID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions of %s: %w", accountID, err)
	}
	return txs, nil
}
