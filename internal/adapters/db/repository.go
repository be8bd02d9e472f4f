// internal/adapters/db/repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/canteen-be/internal/core/ports"
)

// psql builds Postgres statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// querier is satisfied by *Database and pgx.Tx so the same helpers serve
// pooled reads and transactional writes
type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// baseRepository carries what every table repository needs
type baseRepository struct {
	db     *Database
	table  string
	logger *slog.Logger
}

func newBaseRepository(db *Database, table string, logger *slog.Logger) baseRepository {
	return baseRepository{
		db:     db,
		table:  table,
		logger: logger.With(slog.String("repository", table)),
	}
}

// queryOne runs a built SELECT and scans the single row. No row maps to
// ports.ErrNotFound.
func queryOne[T any](ctx context.Context, q querier, b squirrel.SelectBuilder, scan func(pgx.Row) (*T, error)) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	entity, err := scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return entity, nil
}

// queryMany runs a built SELECT and scans every row
func queryMany[T any](ctx context.Context, q querier, b squirrel.SelectBuilder, scan func(pgx.Row) (*T, error)) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		entity, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// execAffecting runs a built statement and reports ports.ErrNotFound when it
// touched no row
func execAffecting(ctx context.Context, q querier, b squirrel.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, ports.ErrNotFound
	}
	return tag.RowsAffected(), nil
}

// execCount runs a built statement and returns the affected row count
func execCount(ctx context.Context, q querier, b squirrel.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// nullIfEmpty stores empty strings as NULL
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
