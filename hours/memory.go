package hours

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"
)

// MemoryStore serves every lookup from records that are already loaded.
// Soft deleted records are kept but never returned.
type MemoryStore struct {
	courses     map[int64]Course
	subjects    map[int64]Subject
	teachers    map[int64]Teacher
	assignments map[int64][]int64 // subject id -> teacher ids
	schedules   []ScheduleRow
	calendar    []CalendarEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		courses:     map[int64]Course{},
		subjects:    map[int64]Subject{},
		teachers:    map[int64]Teacher{},
		assignments: map[int64][]int64{},
	}
}

func (s *MemoryStore) AddCourse(course Course) *MemoryStore {
	s.courses[course.ID] = course
	return s
}

func (s *MemoryStore) AddSubject(subject Subject) *MemoryStore {
	s.subjects[subject.ID] = subject
	return s
}

func (s *MemoryStore) AddTeacher(teacher Teacher) *MemoryStore {
	s.teachers[teacher.ID] = teacher
	return s
}

func (s *MemoryStore) Assign(subjectID, teacherID int64) *MemoryStore {
	if !slices.Contains(s.assignments[subjectID], teacherID) {
		s.assignments[subjectID] = append(s.assignments[subjectID], teacherID)
	}
	return s
}

func (s *MemoryStore) AddSchedule(rows ...ScheduleRow) *MemoryStore {
	s.schedules = append(s.schedules, rows...)
	return s
}

func (s *MemoryStore) AddCalendarEntry(entries ...CalendarEntry) *MemoryStore {
	s.calendar = append(s.calendar, entries...)
	return s
}

func (s *MemoryStore) CourseByID(ctx context.Context, id int64) (Course, bool, error) {
	course, ok := s.courses[id]
	if !ok || course.DeletedAt.Valid {
		return Course{}, false, nil
	}
	return course, true, nil
}

// ListCourses returns the live courses ordered by name
func (s *MemoryStore) ListCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	for _, course := range s.courses {
		if course.DeletedAt.Valid {
			continue
		}
		courses = append(courses, course)
	}
	slices.SortFunc(courses, func(a, b Course) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return courses, nil
}

func (s *MemoryStore) CourseForSubject(ctx context.Context, subject Subject) (Course, bool, error) {
	if !subject.CourseID.Valid {
		return Course{}, false, nil
	}
	return s.CourseByID(ctx, subject.CourseID.Int64)
}

func (s *MemoryStore) CalendarEntriesBetween(ctx context.Context, start, end time.Time) ([]CalendarEntry, error) {
	from, to := DateOf(start), DateOf(end)
	var entries []CalendarEntry
	for _, entry := range s.calendar {
		if entry.DeletedAt.Valid {
			continue
		}
		day := DateOf(entry.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		entries = append(entries, entry)
	}
	slices.SortStableFunc(entries, func(a, b CalendarEntry) int {
		return a.Date.Compare(b.Date)
	})
	return entries, nil
}

func (s *MemoryStore) SchedulesForSubject(ctx context.Context, subjectID int64, teacherID *int64) ([]ScheduleRow, error) {
	var rows []ScheduleRow
	for _, row := range s.schedules {
		if row.DeletedAt.Valid || row.SubjectID != subjectID {
			continue
		}
		if teacherID != nil && (!row.TeacherID.Valid || row.TeacherID.Int64 != *teacherID) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *MemoryStore) SubjectByID(ctx context.Context, id int64) (Subject, bool, error) {
	subject, ok := s.subjects[id]
	if !ok || subject.DeletedAt.Valid {
		return Subject{}, false, nil
	}
	return subject, true, nil
}

// ListSubjects returns the live subjects ordered by name
func (s *MemoryStore) ListSubjects(ctx context.Context) ([]Subject, error) {
	var subjects []Subject
	for _, subject := range s.subjects {
		if subject.DeletedAt.Valid {
			continue
		}
		subjects = append(subjects, subject)
	}
	sortSubjects(subjects)
	return subjects, nil
}

func (s *MemoryStore) ListSubjectsForTeacher(ctx context.Context, teacherID int64) ([]Subject, error) {
	all, err := s.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	var subjects []Subject
	for _, subject := range all {
		if slices.Contains(s.assignments[subject.ID], teacherID) {
			subjects = append(subjects, subject)
		}
	}
	return subjects, nil
}

// ListAssignments skips teachers that are missing or soft deleted
func (s *MemoryStore) ListAssignments(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment
	for subjectID, teacherIDs := range s.assignments {
		for _, teacherID := range teacherIDs {
			teacher, ok := s.teachers[teacherID]
			if !ok || teacher.DeletedAt.Valid {
				continue
			}
			assignments = append(assignments, Assignment{SubjectID: subjectID, Teacher: teacher})
		}
	}
	slices.SortFunc(assignments, func(a, b Assignment) int {
		if a.SubjectID != b.SubjectID {
			return cmp.Compare(a.SubjectID, b.SubjectID)
		}
		return cmp.Compare(a.Teacher.ID, b.Teacher.ID)
	})
	return assignments, nil
}

func sortSubjects(subjects []Subject) {
	slices.SortFunc(subjects, func(a, b Subject) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
