package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClassRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClassRepo(db *dbpg.DB) *ClassRepository {
	return &ClassRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const classColumns = `id, title, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), capacity, is_active, created_at, updated_at`

func (r *ClassRepository) Create(ctx context.Context, c *domain.ClassTemplate) error {
	query := `INSERT INTO classes (id, title, weekday, start_time, end_time, capacity, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8, $9)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Title, int(c.Weekday), c.StartTime, c.EndTime,
		c.Capacity, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert class: %w", err)
	}

	return nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id string) (*domain.ClassTemplate, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}

	c := &domain.ClassTemplate{}
	if err = scanClass(row, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("scan class: %w", err)
	}

	return c, nil
}

func (r *ClassRepository) List(ctx context.Context) ([]*domain.ClassTemplate, error) {
	query := `SELECT ` + classColumns + ` FROM classes
			  WHERE is_active
			  ORDER BY weekday, start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var res []*domain.ClassTemplate
	for rows.Next() {
		c := &domain.ClassTemplate{}
		if err = scanClass(rows, c); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func scanClass(row rowScanner, c *domain.ClassTemplate) error {
	var weekday int
	if err := row.Scan(
		&c.ID, &c.Title, &weekday, &c.StartTime, &c.EndTime,
		&c.Capacity, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return err
	}
	c.Weekday = time.Weekday(weekday)
	return nil
}
