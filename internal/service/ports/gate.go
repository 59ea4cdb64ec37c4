package ports

import "context"

// EntitlementGate refuses booking and check-in for members without an
// active membership.
type EntitlementGate interface {
	AssertActive(ctx context.Context, memberID string) error
}
