package booking

// ===============================
// Schedule Policy Snapshot
// ===============================

// DayOffEntry mirrors one entry of the day-off config. Presence with
// Active=true closes the whole date.
type DayOffEntry struct {
	Active bool
	Reason string
}

// DayHours is the weekly schedule for one weekday.
type DayHours struct {
	Active bool
	Open   string
	Close  string
}

// Policy is the read-only configuration snapshot the validator runs
// against. DaysOff is keyed by "YYYY-MM-DD" date, Hours by the pt-BR
// weekday key (segunda, terca, ...).
type Policy struct {
	DaysOff map[string]DayOffEntry
	Hours   map[string]DayHours
}
