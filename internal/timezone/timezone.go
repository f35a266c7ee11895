package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// StartOfDate anchors a "YYYY-MM-DD" date at midnight in tz.
func StartOfDate(date string, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, Location(tz))
}

// At anchors a "YYYY-MM-DD" + "HH:MM" pair in tz.
func At(date string, hm string, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, Location(tz))
}
