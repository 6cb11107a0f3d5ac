package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// hand written in the shape sqlc generates, every query hides soft deleted rows

const courseColumns = `
	c.id, c.name, c.start_year, c.end_year, c.grade,
	c.trimester_1_start, c.trimester_1_end,
	c.trimester_2_start, c.trimester_2_end,
	c.trimester_3_start, c.trimester_3_end,
	c.deleted_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (Course, error) {
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.StartYear,
		&i.EndYear,
		&i.Grade,
		&i.Trimester1Start,
		&i.Trimester1End,
		&i.Trimester2Start,
		&i.Trimester2End,
		&i.Trimester3Start,
		&i.Trimester3End,
		&i.DeletedAt,
	)
	return i, err
}

const getCourse = `SELECT` + courseColumns + `
FROM courses c
WHERE c.id = $1 AND c.deleted_at IS NULL
`

func (q *Queries) GetCourse(ctx context.Context, id int64) (Course, error) {
	row := q.db.QueryRow(ctx, getCourse, id)
	return scanCourse(row)
}

const getCourseForSubject = `SELECT` + courseColumns + `
FROM subjects s
JOIN courses c ON c.id = s.course_id
WHERE s.id = $1 AND c.deleted_at IS NULL
`

func (q *Queries) GetCourseForSubject(ctx context.Context, subjectID int64) (Course, error) {
	row := q.db.QueryRow(ctx, getCourseForSubject, subjectID)
	return scanCourse(row)
}

const listCourses = `SELECT` + courseColumns + `
FROM courses c
WHERE c.deleted_at IS NULL
ORDER BY c.name, c.id
`

func (q *Queries) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := q.db.Query(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Course
	for rows.Next() {
		i, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCalendarEntriesBetween = `
SELECT cal.id, cal.date, cal.description, cal.type_id, cal.deleted_at,
	t.id, t.name, t.color
FROM calendars cal
JOIN types t ON t.id = cal.type_id
WHERE cal.date BETWEEN $1 AND $2
	AND cal.deleted_at IS NULL
ORDER BY cal.date, cal.id
`

type ListCalendarEntriesBetweenParams struct {
	StartDate pgtype.Date `json:"start_date"`
	EndDate   pgtype.Date `json:"end_date"`
}

type ListCalendarEntriesBetweenRow struct {
	Calendar Calendar `json:"calendar"`
	Type     Type     `json:"type"`
}

func (q *Queries) ListCalendarEntriesBetween(ctx context.Context, arg ListCalendarEntriesBetweenParams) ([]ListCalendarEntriesBetweenRow, error) {
	rows, err := q.db.Query(ctx, listCalendarEntriesBetween, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCalendarEntriesBetweenRow
	for rows.Next() {
		var i ListCalendarEntriesBetweenRow
		if err := rows.Scan(
			&i.Calendar.ID,
			&i.Calendar.Date,
			&i.Calendar.Description,
			&i.Calendar.TypeID,
			&i.Calendar.DeletedAt,
			&i.Type.ID,
			&i.Type.Name,
			&i.Type.Color,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listSchedulesForSubject = `
SELECT id, subject_id, user_id, weekday, hours, deleted_at
FROM schedules
WHERE subject_id = $1
	AND deleted_at IS NULL
	AND ($2::bigint IS NULL OR user_id = $2::bigint)
ORDER BY id
`

type ListSchedulesForSubjectParams struct {
	SubjectID int64       `json:"subject_id"`
	UserID    pgtype.Int8 `json:"user_id"`
}

func (q *Queries) ListSchedulesForSubject(ctx context.Context, arg ListSchedulesForSubjectParams) ([]Schedule, error) {
	rows, err := q.db.Query(ctx, listSchedulesForSubject, arg.SubjectID, arg.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Schedule
	for rows.Next() {
		var i Schedule
		if err := rows.Scan(
			&i.ID,
			&i.SubjectID,
			&i.UserID,
			&i.Weekday,
			&i.Hours,
			&i.DeletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getSubject = `
SELECT id, name, weekly_hours, grade, course_id, deleted_at
FROM subjects
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) GetSubject(ctx context.Context, id int64) (Subject, error) {
	row := q.db.QueryRow(ctx, getSubject, id)
	var i Subject
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WeeklyHours,
		&i.Grade,
		&i.CourseID,
		&i.DeletedAt,
	)
	return i, err
}

const listSubjects = `
SELECT id, name, weekly_hours, grade, course_id, deleted_at
FROM subjects
WHERE deleted_at IS NULL
ORDER BY name, id
`

func (q *Queries) ListSubjects(ctx context.Context) ([]Subject, error) {
	rows, err := q.db.Query(ctx, listSubjects)
	if err != nil {
		return nil, err
	}
	return collectSubjects(rows)
}

const listSubjectsForUser = `
SELECT s.id, s.name, s.weekly_hours, s.grade, s.course_id, s.deleted_at
FROM subjects s
JOIN subject_users su ON su.subject_id = s.id
WHERE su.user_id = $1 AND s.deleted_at IS NULL
ORDER BY s.name, s.id
`

func (q *Queries) ListSubjectsForUser(ctx context.Context, userID int64) ([]Subject, error) {
	rows, err := q.db.Query(ctx, listSubjectsForUser, userID)
	if err != nil {
		return nil, err
	}
	return collectSubjects(rows)
}

type subjectRows interface {
	rowScanner
	Next() bool
	Err() error
	Close()
}

func collectSubjects(rows subjectRows) ([]Subject, error) {
	defer rows.Close()
	var items []Subject
	for rows.Next() {
		var i Subject
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.WeeklyHours,
			&i.Grade,
			&i.CourseID,
			&i.DeletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listAssignments = `
SELECT su.subject_id, u.id, u.name, u.email, u.deleted_at
FROM subject_users su
JOIN users u ON u.id = su.user_id
WHERE u.deleted_at IS NULL
ORDER BY su.subject_id, u.id
`

type ListAssignmentsRow struct {
	SubjectID int64 `json:"subject_id"`
	User      User  `json:"user"`
}

func (q *Queries) ListAssignments(ctx context.Context) ([]ListAssignmentsRow, error) {
	rows, err := q.db.Query(ctx, listAssignments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListAssignmentsRow
	for rows.Next() {
		var i ListAssignmentsRow
		if err := rows.Scan(
			&i.SubjectID,
			&i.User.ID,
			&i.User.Name,
			&i.User.Email,
			&i.User.DeletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
