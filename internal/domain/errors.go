package domain

import "errors"

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

var (
	ErrClassFull          = errors.New("class is full")
	ErrNoActiveMembership = errors.New("no active membership")
	ErrMembershipExists   = errors.New("member already has a current membership")
	ErrAlreadyCheckedIn   = errors.New("already checked in")
)

var (
	ErrInvalidState = errors.New("invalid membership state")
)

var (
	ErrValidation = errors.New("validation error")
)
