package postgres

import (
    "context"
    "embed"
    "errors"
    "fmt"
    "io/fs"
    "time"

    "github.com/georgysavva/scany/v2/pgxscan"
    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgconn"
    "github.com/jackc/pgx/v5/pgxpool"
    "github.com/jackc/pgx/v5/stdlib"
    "github.com/pressly/goose/v3"

    "chaincarbon/internal/domain"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// querier is the part of *pgxpool.Pool the repositories use. pgxmock's pool
// satisfies it in unit tests.
type querier interface {
    Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
    Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
    QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
    BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
    Ping(ctx context.Context) error
}

type DB struct {
    // Pool is nil when the DB wraps a bare querier.
    Pool *pgxpool.Pool
    q    querier
}

func newDB(q querier) *DB { return &DB{q: q} }

func Connect(ctx context.Context, url string, maxConns int32) (*DB, error) {
    cfg, err := pgxpool.ParseConfig(url)
    if err != nil {
        return nil, err
    }
    if maxConns > 0 {
        cfg.MaxConns = maxConns
    }
    cfg.HealthCheckPeriod = 30 * time.Second
    pool, err := pgxpool.NewWithConfig(ctx, cfg)
    if err != nil {
        return nil, err
    }
    if err := pool.Ping(ctx); err != nil {
        pool.Close()
        return nil, err
    }
    return &DB{Pool: pool, q: pool}, nil
}

func (db *DB) Close() {
    if db.Pool != nil {
        db.Pool.Close()
    }
}

// Ping is used by the health check.
func (db *DB) Ping(ctx context.Context) error { return db.q.Ping(ctx) }

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) (applied int, err error) {
    if db.Pool == nil {
        return 0, errors.New("migrate: no connection pool")
    }
    fsys, err := fs.Sub(migrationFiles, "migrations")
    if err != nil {
        return 0, err
    }
    sqlDB := stdlib.OpenDBFromPool(db.Pool)
    defer sqlDB.Close()

    provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys)
    if err != nil {
        return 0, fmt.Errorf("goose provider: %w", err)
    }
    results, err := provider.Up(ctx)
    if err != nil {
        return 0, fmt.Errorf("goose up: %w", err)
    }
    return len(results), nil
}

// mapError turns a missing row into domain.ErrNotFound and adds context.
func mapError(err error, entity, id string) error {
    if err == nil {
        return nil
    }
    if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
        return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
    }
    return fmt.Errorf("%s %s: %w", entity, id, err)
}
