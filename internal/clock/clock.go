// Package clock abstracts time for week-boundary math so services can be
// tested against a fixed calendar.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
