package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrOutOfRangeTime = errors.New("time is outside the allowed range (7:00 AM to 7:00 PM)")
	ErrUnknownWeekday = errors.New("unknown week day")
)

var weekDays = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// Slot identifies a one-hour weekly time window. Day is the week-day index
// (0 = Monday, ..., 6 = Sunday) and Hour is the offset from 7:00 AM
// (0 = 7:00 AM, ..., 12 = 7:00 PM). Two slots are equal iff both components match.
type Slot struct {
	Day  int
	Hour int
}

// EncodeSlot maps a week day and a "H:MM AM/PM" clock time to its canonical slot.
//
// Example: ("Monday", "9:00 AM") -> Slot{Day: 0, Hour: 2}
func EncodeSlot(weekDay, clockTime string) (Slot, error) {
	hourToken, period, found := strings.Cut(clockTime, " ")
	if !found || (period != "AM" && period != "PM") {
		return Slot{}, fmt.Errorf("cannot parse clock time: %v", clockTime)
	}

	hourStr, _, _ := strings.Cut(hourToken, ":")
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return Slot{}, fmt.Errorf("cannot parse clock time %v: %w", clockTime, err)
	}

	// Convert to 24-hour format
	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}

	if hour < 7 || hour > 19 {
		return Slot{}, fmt.Errorf("%w: %v", ErrOutOfRangeTime, clockTime)
	}

	day, ok := weekDays[strings.TrimSpace(weekDay)]
	if !ok {
		return Slot{}, fmt.Errorf("%w: %v", ErrUnknownWeekday, weekDay)
	}

	return Slot{Day: day, Hour: hour - 7}, nil
}
