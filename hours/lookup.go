package hours

import (
	"context"
	"time"
)

// the calculator only reads through these so that it can run against the
// database or against data that is already in memory

type CourseLookup interface {
	// the course of the subject, false when the subject has none
	CourseForSubject(ctx context.Context, subject Subject) (Course, bool, error)
}

type CalendarLookup interface {
	// every live calendar entry dated within [start, end]
	CalendarEntriesBetween(ctx context.Context, start, end time.Time) ([]CalendarEntry, error)
}

type ScheduleLookup interface {
	// the subject's live schedule rows, only those of teacherID when it is not nil
	SchedulesForSubject(ctx context.Context, subjectID int64, teacherID *int64) ([]ScheduleRow, error)
}

// Store is everything that is needed to compute and report on hours
type Store interface {
	CourseLookup
	CalendarLookup
	ScheduleLookup

	CourseByID(ctx context.Context, id int64) (Course, bool, error)
	ListCourses(ctx context.Context) ([]Course, error)
	SubjectByID(ctx context.Context, id int64) (Subject, bool, error)
	ListSubjects(ctx context.Context) ([]Subject, error)
	ListSubjectsForTeacher(ctx context.Context, teacherID int64) ([]Subject, error)
	ListAssignments(ctx context.Context) ([]Assignment, error)
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*PgStore)(nil)
)
