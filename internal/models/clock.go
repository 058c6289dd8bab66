package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Clock is a wall-clock time of day on a 24 hour dial. Schedule arithmetic
// treats the dial as circular, so comparisons work across midnight.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// NewClock creates a Clock from its components.
func NewClock(hour, minute, second int) Clock {
	return Clock{Hour: hour, Minute: minute, Second: second}
}

// ParseClock parses a wall-clock string. It accepts "HH:MM:SS" and "HH:MM";
// anything else falls back to midnight so a malformed record never aborts a
// whole schedule load.
func ParseClock(value string) Clock {
	trimmed := strings.TrimSpace(value)

	if t, err := time.Parse("15:04:05", trimmed); err == nil {
		return NewClock(t.Hour(), t.Minute(), t.Second())
	}
	if t, err := time.Parse("15:04", trimmed); err == nil {
		return NewClock(t.Hour(), t.Minute(), 0)
	}
	return Clock{}
}

func (c Clock) secondsOfDay() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// MinutesForwardTo returns the whole minutes from c forward to other,
// wrapping past midnight when other is earlier on the dial.
func (c Clock) MinutesForwardTo(other Clock) int {
	delta := other.secondsOfDay() - c.secondsOfDay()
	if delta < 0 {
		delta += secondsPerDay
	}
	return delta / 60
}

// CircularMinutesTo returns the shorter distance in whole minutes between
// the two times, in either direction around the dial.
func (c Clock) CircularMinutesTo(other Clock) int {
	forward := c.MinutesForwardTo(other)
	backward := other.MinutesForwardTo(c)
	if backward < forward {
		return backward
	}
	return forward
}

// String formats the clock as "HH:MM:SS".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// ShortString formats the clock as "HH:MM" for rider-facing instructions.
func (c Clock) ShortString() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*c = ParseClock(value)
	return nil
}
