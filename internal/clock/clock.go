// Package clock provides the wall-clock source injected into services so
// time-dependent logic stays deterministic in tests.
package clock

import "time"

type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
