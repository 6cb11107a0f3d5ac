package hours

import (
	"context"
	"errors"
	"time"

	"github.com/Pjt727/classhours/data/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// PgStore reads courses, schedules and the calendar from postgres
type PgStore struct {
	q *db.Queries
}

func NewPgStore(database db.DBTX) *PgStore {
	return &PgStore{q: db.New(database)}
}

func (s *PgStore) WithTx(tx pgx.Tx) *PgStore {
	return &PgStore{q: s.q.WithTx(tx)}
}

func (s *PgStore) CourseByID(ctx context.Context, id int64) (Course, bool, error) {
	course, err := s.q.GetCourse(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return Course{}, false, nil
	}
	if err != nil {
		return Course{}, false, err
	}
	return courseFromRow(course), true, nil
}

func (s *PgStore) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := s.q.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	courses := make([]Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, courseFromRow(row))
	}
	return courses, nil
}

func (s *PgStore) CourseForSubject(ctx context.Context, subject Subject) (Course, bool, error) {
	if !subject.CourseID.Valid {
		return Course{}, false, nil
	}
	course, err := s.q.GetCourseForSubject(ctx, subject.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Course{}, false, nil
	}
	if err != nil {
		return Course{}, false, err
	}
	return courseFromRow(course), true, nil
}

func (s *PgStore) CalendarEntriesBetween(ctx context.Context, start, end time.Time) ([]CalendarEntry, error) {
	rows, err := s.q.ListCalendarEntriesBetween(ctx, db.ListCalendarEntriesBetweenParams{
		StartDate: pgtype.Date{Time: DateOf(start), Valid: true},
		EndDate:   pgtype.Date{Time: DateOf(end), Valid: true},
	})
	if err != nil {
		return nil, err
	}
	entries := make([]CalendarEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, CalendarEntry{
			ID:          row.Calendar.ID,
			Date:        DateOf(row.Calendar.Date.Time),
			Description: row.Calendar.Description,
			Type: EntryType{
				ID:    row.Type.ID,
				Name:  row.Type.Name,
				Color: row.Type.Color,
			},
			DeletedAt: row.Calendar.DeletedAt,
		})
	}
	return entries, nil
}

func (s *PgStore) SchedulesForSubject(ctx context.Context, subjectID int64, teacherID *int64) ([]ScheduleRow, error) {
	params := db.ListSchedulesForSubjectParams{SubjectID: subjectID}
	if teacherID != nil {
		params.UserID = pgtype.Int8{Int64: *teacherID, Valid: true}
	}
	rows, err := s.q.ListSchedulesForSubject(ctx, params)
	if err != nil {
		return nil, err
	}
	schedules := make([]ScheduleRow, 0, len(rows))
	for _, row := range rows {
		// unknown names are kept as is and skipped by the calculator
		weekday, err := ParseWeekday(row.Weekday)
		if err != nil {
			weekday = Weekday(row.Weekday)
		}
		schedules = append(schedules, ScheduleRow{
			ID:        row.ID,
			SubjectID: row.SubjectID,
			TeacherID: row.UserID,
			Weekday:   weekday,
			Hours:     row.Hours,
			DeletedAt: row.DeletedAt,
		})
	}
	return schedules, nil
}

func (s *PgStore) SubjectByID(ctx context.Context, id int64) (Subject, bool, error) {
	row, err := s.q.GetSubject(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return Subject{}, false, nil
	}
	if err != nil {
		return Subject{}, false, err
	}
	return subjectsFromRows([]db.Subject{row})[0], true, nil
}

func (s *PgStore) ListSubjects(ctx context.Context) ([]Subject, error) {
	rows, err := s.q.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	return subjectsFromRows(rows), nil
}

func (s *PgStore) ListSubjectsForTeacher(ctx context.Context, teacherID int64) ([]Subject, error) {
	rows, err := s.q.ListSubjectsForUser(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return subjectsFromRows(rows), nil
}

func (s *PgStore) ListAssignments(ctx context.Context) ([]Assignment, error) {
	rows, err := s.q.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	assignments := make([]Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, Assignment{
			SubjectID: row.SubjectID,
			Teacher: Teacher{
				ID:        row.User.ID,
				Name:      row.User.Name,
				Email:     row.User.Email,
				DeletedAt: row.User.DeletedAt,
			},
		})
	}
	return assignments, nil
}

func courseFromRow(row db.Course) Course {
	return Course{
		ID:        row.ID,
		Name:      row.Name,
		StartYear: row.StartYear.Int32,
		EndYear:   row.EndYear.Int32,
		Grade:     row.Grade.String,
		Trimesters: [TrimesterCount]Trimester{
			{Start: row.Trimester1Start, End: row.Trimester1End},
			{Start: row.Trimester2Start, End: row.Trimester2End},
			{Start: row.Trimester3Start, End: row.Trimester3End},
		},
		DeletedAt: row.DeletedAt,
	}
}

func subjectsFromRows(rows []db.Subject) []Subject {
	subjects := make([]Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, Subject{
			ID:          row.ID,
			Name:        row.Name,
			WeeklyHours: row.WeeklyHours,
			Grade:       row.Grade.String,
			CourseID:    row.CourseID,
			DeletedAt:   row.DeletedAt,
		})
	}
	return subjects
}
