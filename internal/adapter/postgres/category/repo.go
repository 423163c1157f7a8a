// Package category implements the read-only spend-category directory
// backed by PostgreSQL. The directory is seeded out-of-band (cmd/seeder);
// the API never mutates it.
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/expensio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// Repo provides category lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, name, created_at FROM categories WHERE id = $1`

const listSQL = `
SELECT id, name, created_at FROM categories ORDER BY name`

const createSQL = `
INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)`

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if no such category exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return domain.Category{}, mapError(err, "category", id)
	}

	return c, nil
}

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	if cats == nil {
		cats = []domain.Category{}
	}

	return cats, nil
}

// Create inserts a category. Used by the seeder only.
// A duplicate name results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string) (domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c := domain.Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if _, err := querier.Exec(ctx, createSQL, c.ID, c.Name, c.CreatedAt); err != nil {
		return domain.Category{}, mapError(err, "category", c.ID)
	}

	return c, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
