package clock

import "time"

// FakeClock pins Now for tests whose behavior depends on which calendar
// week "today" falls in, such as roster week resolution.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward; a negative duration moves it back.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// SetNow pins the clock to an exact instant.
func (c *FakeClock) SetNow(t time.Time) {
	c.now = t.UTC()
}
