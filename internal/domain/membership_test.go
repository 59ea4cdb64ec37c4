package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func membershipFor(start, end time.Time) *Membership {
	return &Membership{
		ID:        "m1",
		MemberID:  "u1",
		PlanID:    "p1",
		StartDate: start,
		EndDate:   end,
		Status:    MembershipStatusActive,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMembership_StatusAt_PendingBeforeStart(t *testing.T) {
	m := membershipFor(day(2025, 3, 10), day(2025, 4, 9))

	assert.Equal(t, MembershipStatusPending, m.StatusAt(day(2025, 3, 9)))
}

func TestMembership_StatusAt_ActiveOnStartDate(t *testing.T) {
	m := membershipFor(day(2025, 3, 10), day(2025, 4, 9))

	assert.Equal(t, MembershipStatusActive, m.StatusAt(day(2025, 3, 10)))
}

func TestMembership_StatusAt_ActiveThroughEndDate(t *testing.T) {
	m := membershipFor(day(2025, 3, 10), day(2025, 4, 9))

	// still active at the last second of the end date
	lastSecond := time.Date(2025, 4, 9, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, MembershipStatusActive, m.StatusAt(lastSecond))
}

func TestMembership_StatusAt_ExpiredAfterEndDate(t *testing.T) {
	m := membershipFor(day(2025, 3, 10), day(2025, 4, 9))

	assert.Equal(t, MembershipStatusExpired, m.StatusAt(day(2025, 4, 10)))
}

func TestMembership_StatusAt_FrozenPassesThrough(t *testing.T) {
	m := membershipFor(day(2025, 3, 10), day(2025, 4, 9))
	m.Status = MembershipStatusFrozen
	m.Freeze = &Freeze{At: day(2025, 3, 15), PlannedResume: day(2025, 3, 22)}

	// explicit state wins even though the window says active
	assert.Equal(t, MembershipStatusFrozen, m.StatusAt(day(2025, 3, 16)))
}

func TestMembership_StatusAt_CancelledPassesThrough(t *testing.T) {
	m := membershipFor(day(2025, 3, 10), day(2025, 4, 9))
	m.Status = MembershipStatusCancelled

	assert.Equal(t, MembershipStatusCancelled, m.StatusAt(day(2025, 3, 16)))
	assert.Equal(t, MembershipStatusCancelled, m.StatusAt(day(2025, 5, 1)))
}

func TestMembership_StatusAt_NonUTCClock(t *testing.T) {
	m := membershipFor(day(2025, 3, 10), day(2025, 4, 9))

	// 2025-04-10 01:00 in UTC+2 is still 2025-04-09 in UTC
	zone := time.FixedZone("UTC+2", 2*3600)
	local := time.Date(2025, 4, 10, 1, 0, 0, 0, zone)

	assert.Equal(t, MembershipStatusActive, m.StatusAt(local))
}
