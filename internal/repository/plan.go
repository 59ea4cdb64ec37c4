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

type PlanRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPlanRepo(db *dbpg.DB) *PlanRepository {
	return &PlanRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PlanRepository) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (id, name, duration_days, price_cents, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.DurationDays, p.PriceCents, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}

	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT id, name, duration_days, price_cents, created_at
			  FROM plans
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	var p domain.Plan
	if err = row.Scan(&p.ID, &p.Name, &p.DurationDays, &p.PriceCents, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}

	return &p, nil
}

func (r *PlanRepository) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT id, name, duration_days, price_cents, created_at
			  FROM plans
			  ORDER BY duration_days`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var res []*domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err = rows.Scan(&p.ID, &p.Name, &p.DurationDays, &p.PriceCents, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
