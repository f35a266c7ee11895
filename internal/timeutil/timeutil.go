package timeutil

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// Weekday keys as stored in the business-hours config, indexed by
// time.Weekday (Sunday = 0).
var weekdayKeys = [7]string{
	"domingo",
	"segunda",
	"terca",
	"quarta",
	"quinta",
	"sexta",
	"sabado",
}

// ToMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. All four positions must be digits; "12:3a" is not a time.
func ToMinutes(hm string) (int, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if hm[i] < '0' || hm[i] > '9' {
			return 0, fmt.Errorf("invalid time %q", hm)
		}
	}

	h := int(hm[0]-'0')*10 + int(hm[1]-'0')
	m := int(hm[3]-'0')*10 + int(hm[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	return h*60 + m, nil
}

// FromMinutes formats minutes since midnight back to zero-padded "HH:MM".
// Values outside a single day wrap around.
func FromMinutes(mins int) string {
	mins = ((mins % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// AddMinutes returns start + duration as "HH:MM", wrapping past midnight.
// Callers that must not cross midnight check CrossesMidnight first.
func AddMinutes(start string, duration int) (string, error) {
	mins, err := ToMinutes(start)
	if err != nil {
		return "", err
	}
	return FromMinutes(mins + duration), nil
}

// CrossesMidnight reports whether start + duration runs past 24:00.
// An interval ending exactly at midnight does not cross.
func CrossesMidnight(start string, duration int) (bool, error) {
	mins, err := ToMinutes(start)
	if err != nil {
		return false, err
	}
	return mins+duration > minutesPerDay, nil
}

// WeekdayKey resolves a "YYYY-MM-DD" date to its pt-BR weekday key.
func WeekdayKey(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return weekdayKeys[int(d.Weekday())], nil
}

// IsValidWeekday reports whether key is one of the seven pt-BR weekday keys.
func IsValidWeekday(key string) bool {
	for _, k := range weekdayKeys {
		if k == key {
			return true
		}
	}
	return false
}

// IsValidDate reports whether date is a well-formed "YYYY-MM-DD" string.
func IsValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// IsValidTime reports whether hm is a well-formed "HH:MM" string.
func IsValidTime(hm string) bool {
	_, err := ToMinutes(hm)
	return err == nil
}
