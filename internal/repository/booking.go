package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/schedule"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, class_id, member_id, date, status, checked_in_at, created_at, updated_at`

// Book performs the admission as one transaction. An advisory lock keyed
// by (class, date) serializes all writers for the same occurrence while
// leaving other occurrences untouched, so the capacity count and the
// insert-or-flip below cannot interleave with a concurrent admission.
func (r *BookingRepository) Book(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock($1)`,
		schedule.LockKey(b.ClassID, b.Date),
	); err != nil {
		return nil, fmt.Errorf("acquire occurrence lock: %w", err)
	}

	var capacity int
	var isActive bool
	if err = tx.QueryRowContext(ctx,
		`SELECT capacity, is_active FROM classes WHERE id = $1`,
		b.ClassID,
	).Scan(&capacity, &isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("get class capacity: %w", err)
	}
	if !isActive {
		return nil, domain.ErrClassNotFound
	}

	existing := &domain.Booking{}
	err = scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE class_id = $1 AND member_id = $2 AND date = $3`,
		b.ClassID, b.MemberID, b.Date,
	), existing)
	switch {
	case err == nil && existing.Status == domain.BookingStatusConfirmed:
		// Idempotent double-book: same row, success, no extra seat taken.
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return existing, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("get existing booking: %w", err)
	case errors.Is(err, sql.ErrNoRows):
		existing = nil
	}

	var confirmed int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE class_id = $1 AND date = $2 AND status = $3`,
		b.ClassID, b.Date, domain.BookingStatusConfirmed,
	).Scan(&confirmed); err != nil {
		return nil, fmt.Errorf("count confirmed bookings: %w", err)
	}

	if confirmed >= capacity {
		return nil, domain.ErrClassFull
	}

	booked := &domain.Booking{}
	if existing != nil {
		// Rebook after cancel flips the member's row back, never inserts
		// a second one.
		err = scanBooking(tx.QueryRowContext(ctx,
			`UPDATE bookings
			 SET status = $2, updated_at = $3
			 WHERE id = $1
			 RETURNING `+bookingColumns,
			existing.ID, domain.BookingStatusConfirmed, b.UpdatedAt,
		), booked)
	} else {
		err = scanBooking(tx.QueryRowContext(ctx,
			`INSERT INTO bookings (id, class_id, member_id, date, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING `+bookingColumns,
			b.ID, b.ClassID, b.MemberID, b.Date, b.Status, b.CreatedAt, b.UpdatedAt,
		), booked)
	}
	if err != nil {
		return nil, fmt.Errorf("write booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return booked, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, classID, memberID string, date time.Time) (bool, error) {
	query := `UPDATE bookings
			  SET status = $4, updated_at = now()
			  WHERE class_id = $1 AND member_id = $2 AND date = $3 AND status = $5`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		classID, memberID, date,
		domain.BookingStatusCancelled, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return false, fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("cancel rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) CheckIn(ctx context.Context, classID, memberID string, date time.Time, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings
		 SET checked_in_at = $4, updated_at = now()
		 WHERE class_id = $1 AND member_id = $2 AND date = $3
		   AND status = $5 AND checked_in_at IS NULL`,
		classID, memberID, date, at, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("check in: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check-in rows affected: %w", err)
	}
	if rows == 0 {
		// Classify: no confirmed booking, or already checked in.
		var status string
		var checkedIn sql.NullTime
		scanErr := tx.QueryRowContext(ctx,
			`SELECT status, checked_in_at FROM bookings
			 WHERE class_id = $1 AND member_id = $2 AND date = $3`,
			classID, memberID, date,
		).Scan(&status, &checkedIn)
		if scanErr != nil {
			return domain.ErrBookingNotFound
		}
		if status == string(domain.BookingStatusConfirmed) && checkedIn.Valid {
			return domain.ErrAlreadyCheckedIn
		}
		return domain.ErrBookingNotFound
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByOccurrenceAndMember(ctx context.Context, classID, memberID string, date time.Time) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE class_id = $1 AND member_id = $2 AND date = $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, classID, memberID, date)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b := &domain.Booking{}
	if err = scanBooking(row, b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE member_id = $1
			  ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by member: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b := &domain.Booking{}
		if err = scanBooking(rows, b); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) CountConfirmed(ctx context.Context, classID string, date time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
			  WHERE class_id = $1 AND date = $2 AND status = $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, classID, date, domain.BookingStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("count confirmed: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner, b *domain.Booking) error {
	var checkedIn sql.NullTime
	if err := row.Scan(
		&b.ID, &b.ClassID, &b.MemberID, &b.Date,
		&b.Status, &checkedIn, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return err
	}
	if checkedIn.Valid {
		t := checkedIn.Time
		b.CheckedInAt = &t
	}
	b.Date = schedule.Date(b.Date)
	return nil
}
