package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/schedule"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type MembershipRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMembershipRepo(db *dbpg.DB) *MembershipRepository {
	return &MembershipRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const membershipColumns = `id, member_id, plan_id, start_date, end_date, status, frozen_at, frozen_until, created_at, updated_at`

func (r *MembershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO memberships (id, member_id, plan_id, start_date, end_date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.MemberID, m.PlanID, m.StartDate, m.EndDate,
		m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrMembershipExists
		}
		return fmt.Errorf("insert membership: %w", err)
	}

	return nil
}

func (r *MembershipRepository) GetByID(ctx context.Context, id string) (*domain.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get membership: %w", err)
	}

	m := &domain.Membership{}
	if err = scanMembership(row, m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("scan membership: %w", err)
	}

	return m, nil
}

func (r *MembershipRepository) GetCurrentByMember(ctx context.Context, memberID string) (*domain.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships
			  WHERE member_id = $1 AND status = ANY($2)
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, memberID, pq.Array(domain.CurrentStatuses))
	if err != nil {
		return nil, fmt.Errorf("get current membership: %w", err)
	}

	m := &domain.Membership{}
	if err = scanMembership(row, m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("scan membership: %w", err)
	}

	return m, nil
}

// Freeze flips an active membership to frozen. The write is conditioned on
// the stored status, so a concurrent transition on the same row cannot
// both succeed; the losing caller gets ErrInvalidState.
func (r *MembershipRepository) Freeze(ctx context.Context, id string, frozenAt time.Time, plannedResume time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE memberships
		 SET status = $2, frozen_at = $3, frozen_until = $4, updated_at = now()
		 WHERE id = $1 AND status = $5`,
		id, domain.MembershipStatusFrozen, frozenAt, plannedResume,
		domain.MembershipStatusActive,
	)
	if err != nil {
		return fmt.Errorf("freeze membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("freeze rows affected: %w", err)
	}
	if rows == 0 {
		var status string
		if scanErr := tx.QueryRowContext(ctx,
			`SELECT status FROM memberships WHERE id = $1`, id,
		).Scan(&status); scanErr != nil {
			return domain.ErrMembershipNotFound
		}
		return fmt.Errorf("%w: cannot freeze a membership in status %s", domain.ErrInvalidState, status)
	}

	return tx.Commit()
}

// Unfreeze resumes a frozen membership and shifts the end date by the
// whole days actually spent frozen. The day arithmetic runs in SQL next
// to the stored frozen_at, so the shift and the status flip are one
// conditional write.
func (r *MembershipRepository) Unfreeze(ctx context.Context, id string, now time.Time) (*domain.Membership, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	m := &domain.Membership{}
	err = scanMembership(tx.QueryRowContext(ctx,
		`UPDATE memberships
		 SET status = $3,
		     end_date = (end_date + make_interval(days => floor(extract(epoch FROM ($2::timestamptz - frozen_at)) / 86400)::int))::date,
		     frozen_at = NULL,
		     frozen_until = NULL,
		     updated_at = now()
		 WHERE id = $1 AND status = $4
		 RETURNING `+membershipColumns,
		id, now, domain.MembershipStatusActive, domain.MembershipStatusFrozen,
	), m)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unfreeze membership: %w", err)
		}
		var status string
		if scanErr := tx.QueryRowContext(ctx,
			`SELECT status FROM memberships WHERE id = $1`, id,
		).Scan(&status); scanErr != nil {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("%w: cannot unfreeze a membership in status %s", domain.ErrInvalidState, status)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return m, nil
}

// ExpireOverdue is the expiry sweep. The filter is re-evaluated by the
// store at write time, so repeat and concurrent runs each flip a row at
// most once.
func (r *MembershipRepository) ExpireOverdue(ctx context.Context, today time.Time) ([]*domain.Membership, error) {
	query := `UPDATE memberships
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND end_date < $3
			  RETURNING ` + membershipColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.MembershipStatusActive, domain.MembershipStatusExpired, today,
	)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}
	defer rows.Close()

	var res []*domain.Membership
	for rows.Next() {
		m := &domain.Membership{}
		if err = scanMembership(rows, m); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		res = append(res, m)
	}

	return res, rows.Err()
}

func scanMembership(row rowScanner, m *domain.Membership) error {
	var frozenAt, frozenUntil sql.NullTime
	if err := row.Scan(
		&m.ID, &m.MemberID, &m.PlanID, &m.StartDate, &m.EndDate,
		&m.Status, &frozenAt, &frozenUntil, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return err
	}
	if frozenAt.Valid {
		m.Freeze = &domain.Freeze{
			At:            frozenAt.Time,
			PlannedResume: schedule.Date(frozenUntil.Time),
		}
	}
	m.StartDate = schedule.Date(m.StartDate)
	m.EndDate = schedule.Date(m.EndDate)
	return nil
}
