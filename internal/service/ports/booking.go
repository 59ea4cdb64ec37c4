package ports

import (
	"context"
	"time"

	"github.com/oclawesteban/gymflow/internal/domain"
)

type BookingRepo interface {
	// Book admits the booking within one atomic step: the capacity check and
	// the insert-or-flip happen under a per-occurrence lock. It returns the
	// confirmed row, which may be a pre-existing one when the member already
	// held a confirmed booking for the occurrence.
	Book(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	// Cancel flips any confirmed row to cancelled and reports whether a row
	// was flipped. Cancelling a missing or already cancelled booking is a
	// no-op, not an error.
	Cancel(ctx context.Context, classID, memberID string, date time.Time) (bool, error)
	CheckIn(ctx context.Context, classID, memberID string, date time.Time, at time.Time) error
	GetByOccurrenceAndMember(ctx context.Context, classID, memberID string, date time.Time) (*domain.Booking, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error)
	CountConfirmed(ctx context.Context, classID string, date time.Time) (int, error)
}
