package domain

import "time"

type MembershipStatus string

const (
	MembershipStatusPending   MembershipStatus = "pending"
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusExpired   MembershipStatus = "expired"
	MembershipStatusFrozen    MembershipStatus = "frozen"
	MembershipStatusCancelled MembershipStatus = "cancelled"
)

// CurrentStatuses are the stored statuses under which a membership still
// occupies the member's single current slot.
var CurrentStatuses = []string{
	string(MembershipStatusActive),
	string(MembershipStatusFrozen),
}

// Freeze is present on a membership exactly when its status is frozen.
// PlannedResume is informational; the end date shift at unfreeze is
// computed from At and the actual unfreeze moment.
type Freeze struct {
	At            time.Time `json:"at"`
	PlannedResume time.Time `json:"planned_resume"`
}

// Membership is one member's entitlement window on a plan. Start and end
// dates are inclusive calendar days at UTC midnight.
type Membership struct {
	ID        string           `json:"id"`
	MemberID  string           `json:"member_id"`
	PlanID    string           `json:"plan_id"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	Status    MembershipStatus `json:"status"`
	Freeze    *Freeze          `json:"freeze,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// StatusAt derives the effective status at the given moment. Frozen and
// cancelled are explicit states and pass through unchanged; otherwise the
// status follows from where the moment's date falls relative to the
// entitlement window. The membership stays active through the whole end
// date.
func (m *Membership) StatusAt(now time.Time) MembershipStatus {
	switch m.Status {
	case MembershipStatusFrozen, MembershipStatusCancelled:
		return m.Status
	}

	today := dateOnly(now)
	switch {
	case today.Before(dateOnly(m.StartDate)):
		return MembershipStatusPending
	case today.After(dateOnly(m.EndDate)):
		return MembershipStatusExpired
	default:
		return MembershipStatusActive
	}
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type AssignMembershipInput struct {
	MemberID  string
	PlanID    string
	StartDate time.Time
}
