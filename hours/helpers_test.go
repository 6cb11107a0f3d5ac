package hours

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	log "github.com/sirupsen/logrus"
)

func testLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return log.NewEntry(logger)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func int64Ptr(i int64) *int64 {
	return &i
}

func teacherOf(id int64) pgtype.Int8 {
	return pgtype.Int8{Int64: id, Valid: true}
}

func deleted() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Now(), Valid: true}
}

// course 1 with only its first trimester set
func courseWithFirstTrimester(start, end time.Time) Course {
	return Course{
		ID:   1,
		Name: "1º ESO",
		Trimesters: [TrimesterCount]Trimester{
			{Start: pgtype.Date{Time: start, Valid: true}, End: pgtype.Date{Time: end, Valid: true}},
		},
	}
}

func subjectOf(courseID int64) Subject {
	return Subject{
		ID:       10,
		Name:     "Matemáticas",
		CourseID: pgtype.Int8{Int64: courseID, Valid: true},
	}
}

func holiday(date time.Time, description string) CalendarEntry {
	return CalendarEntry{
		Date:        date,
		Description: description,
		Type:        EntryType{ID: 1, Name: "Festivo"},
	}
}

// countingCalendar counts the lookups that reach it
type countingCalendar struct {
	CalendarLookup

	mu    sync.Mutex
	calls int
}

func (c *countingCalendar) CalendarEntriesBetween(ctx context.Context, start, end time.Time) ([]CalendarEntry, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.CalendarLookup.CalendarEntriesBetween(ctx, start, end)
}

var errLookup = errors.New("connection refused")

type failingLookup struct{}

func (failingLookup) CourseForSubject(ctx context.Context, subject Subject) (Course, bool, error) {
	return Course{}, false, errLookup
}

func (failingLookup) CalendarEntriesBetween(ctx context.Context, start, end time.Time) ([]CalendarEntry, error) {
	return nil, errLookup
}

func (failingLookup) SchedulesForSubject(ctx context.Context, subjectID int64, teacherID *int64) ([]ScheduleRow, error) {
	return nil, errLookup
}
