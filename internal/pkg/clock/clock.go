package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// LocalClock reports the wall clock of a fixed location, e.g. the venue.
type LocalClock struct {
	base Clock
	loc  *time.Location
}

func NewLocalClock(base Clock, loc *time.Location) *LocalClock {
	if loc == nil {
		loc = time.Local
	}
	return &LocalClock{base: base, loc: loc}
}

func (c *LocalClock) Now() time.Time {
	return c.base.Now().In(c.loc)
}

func (c *LocalClock) Location() *time.Location {
	return c.loc
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
