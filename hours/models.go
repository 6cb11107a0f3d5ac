package hours

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const TrimesterCount = 3

// Trimester bounds are inclusive and either may be unset.
type Trimester struct {
	Start pgtype.Date `json:"start"`
	End   pgtype.Date `json:"end"`
}

type Course struct {
	ID         int64                    `json:"id"`
	Name       string                   `json:"name"`
	StartYear  int32                    `json:"start_year"`
	EndYear    int32                    `json:"end_year"`
	Grade      string                   `json:"grade"`
	Trimesters [TrimesterCount]Trimester `json:"trimesters"`
	DeletedAt  pgtype.Timestamptz       `json:"deleted_at"`
}

// Trimester returns the inclusive date range of trimester 1, 2 or 3.
func (c Course) Trimester(index int) (time.Time, time.Time, error) {
	if index < 1 || index > TrimesterCount {
		return time.Time{}, time.Time{}, fmt.Errorf("%w %d", ErrInvalidTrimester, index)
	}
	t := c.Trimesters[index-1]
	if !t.Start.Valid || !t.End.Valid {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: course %d trimester %d", ErrMissingConfiguration, c.ID, index)
	}
	return DateOf(t.Start.Time), DateOf(t.End.Time), nil
}

// TrimesterOf gives the trimester date falls in or 0 when it is in none.
func (c Course) TrimesterOf(date time.Time) int {
	day := DateOf(date)
	for i := 1; i <= TrimesterCount; i++ {
		start, end, err := c.Trimester(i)
		if err != nil {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			return i
		}
	}
	return 0
}

type Subject struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	WeeklyHours int32              `json:"weekly_hours"`
	Grade       string             `json:"grade"`
	CourseID    pgtype.Int8        `json:"course_id"`
	DeletedAt   pgtype.Timestamptz `json:"deleted_at"`
}

type Teacher struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}

// Assignment links a teacher to a subject they teach
type Assignment struct {
	SubjectID int64   `json:"subject_id"`
	Teacher   Teacher `json:"teacher"`
}

// ScheduleRow is the hours a subject is taught on one day of every week,
// scoped to a single teacher when TeacherID is set.
type ScheduleRow struct {
	ID        int64              `json:"id"`
	SubjectID int64              `json:"subject_id"`
	TeacherID pgtype.Int8        `json:"teacher_id"`
	Weekday   Weekday            `json:"weekday"`
	Hours     int32              `json:"hours"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}

type EntryType struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CalendarEntry marks Date as a non teaching day
type CalendarEntry struct {
	ID          int64              `json:"id"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Type        EntryType          `json:"type"`
	DeletedAt   pgtype.Timestamptz `json:"deleted_at"`
}

// DateOf drops the clock and zone from t keeping its calendar day
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey is the YYYY-MM-DD form dates are compared by
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// NewDate is a shorthand for a valid pgtype.Date
func NewDate(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}
