package domain_test

import (
	"testing"
	"time"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDateFor(t *testing.T) {
	issued := date(2024, time.January, 1)
	assert.Equal(t, date(2024, time.January, 16), domain.DueDateFor(issued))

	// Month boundary
	issued = date(2024, time.March, 25)
	assert.Equal(t, date(2024, time.April, 9), domain.DueDateFor(issued))
}

func TestDueDateFor_TruncatesTimeOfDay(t *testing.T) {
	issued := time.Date(2024, time.January, 1, 23, 45, 12, 0, time.UTC)
	assert.Equal(t, date(2024, time.January, 16), domain.DueDateFor(issued))
}

func TestOverdueThreshold(t *testing.T) {
	loan := domain.Loan{
		IssueDate: date(2024, time.January, 1),
		DueDate:   date(2024, time.January, 16),
	}
	assert.Equal(t, date(2024, time.January, 23), loan.OverdueThreshold())
	assert.True(t, loan.OverdueThreshold().After(loan.DueDate))
	assert.True(t, loan.DueDate.After(loan.IssueDate))
}

func TestIsOverdue(t *testing.T) {
	loan := domain.Loan{
		IssueDate: date(2024, time.January, 1),
		DueDate:   domain.DueDateFor(date(2024, time.January, 1)),
	}

	tests := []struct {
		name    string
		now     time.Time
		overdue bool
	}{
		{"before due date", date(2024, time.January, 10), false},
		{"on due date", date(2024, time.January, 16), false},
		{"within grace period", date(2024, time.January, 22), false},
		{"on threshold day", date(2024, time.January, 23), false},
		{"past threshold", date(2024, time.January, 24), true},
		{"late in threshold day", time.Date(2024, time.January, 23, 18, 30, 0, 0, time.UTC), false},
		{"long past threshold", date(2024, time.March, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, loan.IsOverdue(tt.now))
		})
	}
}
