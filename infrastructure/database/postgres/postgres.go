package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/revenue-coach-api/internal/config"
)

const createSimulationReportsTable = `
CREATE TABLE IF NOT EXISTS simulation_reports (
	id                  VARCHAR(32) PRIMARY KEY,
	current_input       JSONB            NOT NULL,
	target_input        JSONB            NOT NULL,
	current_result      JSONB            NOT NULL,
	target_result       JSONB            NOT NULL,
	delta               DOUBLE PRECISION NOT NULL,
	percent_improvement DOUBLE PRECISION NOT NULL,
	created_at          TIMESTAMPTZ      NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_simulation_reports_created_at ON simulation_reports (created_at);
`

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// EnsureSchema cria a tabela do histórico de simulações se ela ainda não existir
func (c *Connection) EnsureSchema(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, createSimulationReportsTable)
		return err
	})
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}
