package fixture

// a fixture is a yaml file holding a whole school's setup so hours can be
// counted without a database, see testdata/school.yaml

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Pjt727/classhours/hours"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFixture = errors.New("invalid fixture")

type File struct {
	Types       []TypeRecord       `yaml:"types" validate:"dive"`
	Courses     []CourseRecord     `yaml:"courses" validate:"dive"`
	Subjects    []SubjectRecord    `yaml:"subjects" validate:"dive"`
	Teachers    []TeacherRecord    `yaml:"teachers" validate:"dive"`
	Assignments []AssignmentRecord `yaml:"assignments" validate:"dive"`
	Schedules   []ScheduleRecord   `yaml:"schedules" validate:"dive"`
	Calendar    []CalendarRecord   `yaml:"calendar" validate:"dive"`
}

type TypeRecord struct {
	ID    int64  `yaml:"id" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Color string `yaml:"color" validate:"omitempty,hexcolor"`
}

type TrimesterRecord struct {
	Start string `yaml:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `yaml:"end" validate:"omitempty,datetime=2006-01-02"`
}

type CourseRecord struct {
	ID         int64             `yaml:"id" validate:"required"`
	Name       string            `yaml:"name" validate:"required"`
	StartYear  int32             `yaml:"start_year" validate:"omitempty,min=1900"`
	EndYear    int32             `yaml:"end_year" validate:"omitempty,gtefield=StartYear"`
	Grade      string            `yaml:"grade" validate:"omitempty,oneof=primero segundo"`
	Trimesters []TrimesterRecord `yaml:"trimesters" validate:"max=3,dive"`
	Deleted    bool              `yaml:"deleted"`
}

type SubjectRecord struct {
	ID          int64  `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	WeeklyHours int32  `yaml:"weekly_hours" validate:"min=0"`
	Grade       string `yaml:"grade" validate:"omitempty,oneof=primero segundo"`
	CourseID    int64  `yaml:"course_id"`
	Deleted     bool   `yaml:"deleted"`
}

type TeacherRecord struct {
	ID      int64  `yaml:"id" validate:"required"`
	Name    string `yaml:"name" validate:"required"`
	Email   string `yaml:"email" validate:"omitempty,email"`
	Deleted bool   `yaml:"deleted"`
}

type AssignmentRecord struct {
	SubjectID int64 `yaml:"subject_id" validate:"required"`
	TeacherID int64 `yaml:"teacher_id" validate:"required"`
}

type ScheduleRecord struct {
	ID        int64  `yaml:"id"`
	SubjectID int64  `yaml:"subject_id" validate:"required"`
	TeacherID int64  `yaml:"teacher_id"`
	Weekday   string `yaml:"weekday" validate:"required"`
	Hours     int32  `yaml:"hours" validate:"min=0"`
	Deleted   bool   `yaml:"deleted"`
}

type CalendarRecord struct {
	ID          int64  `yaml:"id"`
	Date        string `yaml:"date" validate:"required,datetime=2006-01-02"`
	Description string `yaml:"description"`
	TypeID      int64  `yaml:"type_id" validate:"required"`
	Deleted     bool   `yaml:"deleted"`
}

// Load reads the fixture at path into a memory store
func Load(path string) (*hours.MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*hours.MemoryStore, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	store, err := f.toStore(time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	return store, nil
}

// deletedAt marks soft deleted records as deleted when the fixture was loaded
func deletedAt(deleted bool, loadedAt time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: loadedAt, Valid: deleted}
}

func parseDate(s string) (pgtype.Date, error) {
	if s == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

func (f File) toStore(loadedAt time.Time) (*hours.MemoryStore, error) {
	store := hours.NewMemoryStore()

	types := make(map[int64]hours.EntryType, len(f.Types))
	for _, t := range f.Types {
		types[t.ID] = hours.EntryType{ID: t.ID, Name: t.Name, Color: t.Color}
	}

	courses := make(map[int64]bool, len(f.Courses))
	for _, c := range f.Courses {
		course := hours.Course{
			ID:        c.ID,
			Name:      c.Name,
			StartYear: c.StartYear,
			EndYear:   c.EndYear,
			Grade:     c.Grade,
			DeletedAt: deletedAt(c.Deleted, loadedAt),
		}
		for i, t := range c.Trimesters {
			start, err := parseDate(t.Start)
			if err != nil {
				return nil, fmt.Errorf("course %d trimester %d start: %w", c.ID, i+1, err)
			}
			end, err := parseDate(t.End)
			if err != nil {
				return nil, fmt.Errorf("course %d trimester %d end: %w", c.ID, i+1, err)
			}
			if start.Valid && end.Valid && end.Time.Before(start.Time) {
				return nil, fmt.Errorf("course %d trimester %d ends before it starts", c.ID, i+1)
			}
			course.Trimesters[i] = hours.Trimester{Start: start, End: end}
		}
		courses[c.ID] = true
		store.AddCourse(course)
	}

	subjects := make(map[int64]bool, len(f.Subjects))
	for _, s := range f.Subjects {
		subject := hours.Subject{
			ID:          s.ID,
			Name:        s.Name,
			WeeklyHours: s.WeeklyHours,
			Grade:       s.Grade,
			DeletedAt:   deletedAt(s.Deleted, loadedAt),
		}
		if s.CourseID != 0 {
			if !courses[s.CourseID] {
				return nil, fmt.Errorf("subject %d has unknown course %d", s.ID, s.CourseID)
			}
			subject.CourseID = pgtype.Int8{Int64: s.CourseID, Valid: true}
		}
		subjects[s.ID] = true
		store.AddSubject(subject)
	}

	teachers := make(map[int64]bool, len(f.Teachers))
	for _, t := range f.Teachers {
		teachers[t.ID] = true
		store.AddTeacher(hours.Teacher{
			ID:        t.ID,
			Name:      t.Name,
			Email:     t.Email,
			DeletedAt: deletedAt(t.Deleted, loadedAt),
		})
	}

	for _, a := range f.Assignments {
		if !subjects[a.SubjectID] || !teachers[a.TeacherID] {
			return nil, fmt.Errorf("assignment of teacher %d to subject %d references unknown records", a.TeacherID, a.SubjectID)
		}
		store.Assign(a.SubjectID, a.TeacherID)
	}

	for i, s := range f.Schedules {
		if !subjects[s.SubjectID] {
			return nil, fmt.Errorf("schedule %d has unknown subject %d", i, s.SubjectID)
		}
		weekday, err := hours.ParseWeekday(s.Weekday)
		if err != nil {
			return nil, fmt.Errorf("schedule %d: %w", i, err)
		}
		row := hours.ScheduleRow{
			ID:        s.ID,
			SubjectID: s.SubjectID,
			Weekday:   weekday,
			Hours:     s.Hours,
			DeletedAt: deletedAt(s.Deleted, loadedAt),
		}
		if s.TeacherID != 0 {
			if !teachers[s.TeacherID] {
				return nil, fmt.Errorf("schedule %d has unknown teacher %d", i, s.TeacherID)
			}
			row.TeacherID = pgtype.Int8{Int64: s.TeacherID, Valid: true}
		}
		store.AddSchedule(row)
	}

	for i, c := range f.Calendar {
		entryType, ok := types[c.TypeID]
		if !ok {
			return nil, fmt.Errorf("calendar entry %d has unknown type %d", i, c.TypeID)
		}
		date, err := parseDate(c.Date)
		if err != nil {
			return nil, fmt.Errorf("calendar entry %d: %w", i, err)
		}
		store.AddCalendarEntry(hours.CalendarEntry{
			ID:          c.ID,
			Date:        date.Time,
			Description: c.Description,
			Type:        entryType,
			DeletedAt:   deletedAt(c.Deleted, loadedAt),
		})
	}

	return store, nil
}
