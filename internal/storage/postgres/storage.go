package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
	"github.com/platefront/checkout/internal/domain/repository"
)

// pgxPool is the pool surface the storage uses. pgxmock satisfies it in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage is the checkout attempt journal backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type attemptRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Attempts returns the attempt repository.
func (s *Storage) Attempts() repository.AttemptRepository {
	return &attemptRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS checkout_attempts (
            id TEXT PRIMARY KEY,
            order_id TEXT UNIQUE,
            state TEXT NOT NULL,
            failure_reason TEXT NOT NULL DEFAULT '',
            amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_checkout_attempts_state ON checkout_attempts(state, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// terminalStates guards every update: rows that reached a terminal state are
// never touched again.
const terminalStates = `('SUCCEEDED', 'FAILED')`

func (r *attemptRepository) Create(ctx context.Context, attempt *model.CheckoutAttempt) error {
	const query = `INSERT INTO checkout_attempts (id, state, amount)
                   VALUES ($1, $2, $3)
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, attempt.ID, attempt.State, attempt.Amount).
		Scan(&attempt.CreatedAt, &attempt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create attempt: %w", err)
	}
	return nil
}

func (r *attemptRepository) Transition(ctx context.Context, id string, to model.AttemptState) (bool, error) {
	const query = `UPDATE checkout_attempts
                   SET state=$2, updated_at=NOW()
                   WHERE id=$1 AND state NOT IN ` + terminalStates
	tag, err := r.storage.pool.Exec(ctx, query, id, to)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *attemptRepository) Finish(ctx context.Context, id string, to model.AttemptState, reason string) (bool, error) {
	const query = `UPDATE checkout_attempts
                   SET state=$2, failure_reason=$3, updated_at=NOW()
                   WHERE id=$1 AND state NOT IN ` + terminalStates
	tag, err := r.storage.pool.Exec(ctx, query, id, to, reason)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *attemptRepository) BindOrder(ctx context.Context, id, orderID string) error {
	const query = `UPDATE checkout_attempts SET order_id=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *attemptRepository) GetByID(ctx context.Context, id string) (*model.CheckoutAttempt, error) {
	const query = `SELECT id, COALESCE(order_id, ''), state, failure_reason, amount, created_at, updated_at
                   FROM checkout_attempts WHERE id=$1`
	return scanAttempt(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *attemptRepository) GetByOrderID(ctx context.Context, orderID string) (*model.CheckoutAttempt, error) {
	const query = `SELECT id, COALESCE(order_id, ''), state, failure_reason, amount, created_at, updated_at
                   FROM checkout_attempts WHERE order_id=$1`
	return scanAttempt(r.storage.pool.QueryRow(ctx, query, orderID))
}

func scanAttempt(row pgx.Row) (*model.CheckoutAttempt, error) {
	var a model.CheckoutAttempt
	err := row.Scan(&a.ID, &a.OrderID, &a.State, &a.FailureReason, &a.Amount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
