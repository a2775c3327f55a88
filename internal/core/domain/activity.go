package domain

import "time"

// ActivityEntry is a free-text record of a borrower action (self study,
// reading, issue/return), keyed by registration number. Entirely independent
// of circulation state.
type ActivityEntry struct {
	EntryID            string
	RegistrationNumber string
	Name               string
	Activity           string
	LoggedAt           time.Time
}
