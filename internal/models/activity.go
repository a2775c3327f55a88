package models

import "time"

// ActivityEntry mirrors a row of the activity_log table.
type ActivityEntry struct {
	EntryID            string
	RegistrationNumber string
	Name               string
	Activity           string
	LoggedAt           time.Time
}
