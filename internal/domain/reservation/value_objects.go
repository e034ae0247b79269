package reservation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date stored exactly as supplied. No timezone semantics
// are attached to it.
type Date struct {
	value string
}

func NewDate(value string) (Date, error) {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return Date{}, errors.New("date must be a valid YYYY-MM-DD value")
	}
	return Date{value: value}, nil
}

func (d Date) String() string {
	return d.value
}

// TimeOfDay is a 24-hour HH:MM wall-clock value.
type TimeOfDay struct {
	value string
}

func NewTimeOfDay(value string) (TimeOfDay, error) {
	hour, minute, ok := splitClock(value)
	if !ok || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, errors.New("time must be a valid 24-hour HH:MM value")
	}
	return TimeOfDay{value: value}, nil
}

func (t TimeOfDay) String() string {
	return t.value
}

func (t TimeOfDay) Format12Hour() string {
	return Format12Hour(t.value)
}

// Format12Hour converts a 24-hour HH:MM string to 12-hour form with an AM/PM
// suffix: "00:30" -> "12:30 AM", "05:00" -> "5:00 AM", "12:15" -> "12:15 PM",
// "17:00" -> "5:00 PM". Values that do not split into two numeric parts are
// returned unchanged.
func Format12Hour(raw string) string {
	hour, _, ok := splitClock(raw)
	if !ok {
		return raw
	}

	minutePart := strings.SplitN(raw, ":", 2)[1]

	suffix := "AM"
	displayHour := hour
	switch {
	case hour == 0:
		displayHour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		displayHour = hour - 12
		suffix = "PM"
	}

	return fmt.Sprintf("%d:%s %s", displayHour, minutePart, suffix)
}

type GuestCount struct {
	value int
}

func NewGuestCount(value int) (GuestCount, error) {
	if value < 1 {
		return GuestCount{}, errors.New("guest count must be a positive integer")
	}
	return GuestCount{value: value}, nil
}

func (g GuestCount) Value() int {
	return g.value
}

func splitClock(raw string) (hour, minute int, ok bool) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return hour, minute, true
}
