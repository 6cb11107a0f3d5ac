package report

import (
	"context"
	"fmt"

	"github.com/Pjt727/classhours/hours"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const NoCourseName = "Sin curso"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

// Viewer is who a report is built for. Teachers only see the subjects they
// are assigned to.
type Viewer struct {
	UserID int64
	Role   Role
}

func Admin() Viewer {
	return Viewer{Role: RoleAdmin}
}

func TeacherViewer(userID int64) Viewer {
	return Viewer{UserID: userID, Role: RoleTeacher}
}

func (v Viewer) IsTeacher() bool {
	return v.Role == RoleTeacher
}

// SubjectHoursRow is one line of the hours per subject view
type SubjectHoursRow struct {
	SubjectID   int64                     `json:"subject_id"`
	Subject     string                    `json:"subject"`
	Grade       string                    `json:"grade"`
	Course      string                    `json:"course"`
	WeeklyHours int32                     `json:"weekly_hours"`
	Hours       [hours.TrimesterCount]int `json:"hours"`
}

// TeacherRow is the hours one teacher gives of one subject
type TeacherRow struct {
	TeacherID int64                     `json:"teacher_id"`
	Teacher   string                    `json:"teacher"`
	SubjectID int64                     `json:"subject_id"`
	Subject   string                    `json:"subject"`
	Course    string                    `json:"course"`
	Hours     [hours.TrimesterCount]int `json:"hours"`
}

func (r TeacherRow) IsEmpty() bool {
	for _, h := range r.Hours {
		if h != 0 {
			return false
		}
	}
	return true
}

type Builder struct {
	store  hours.Store
	logger *log.Entry
}

func NewBuilder(logger *log.Entry, store hours.Store) *Builder {
	return &Builder{
		store:  store,
		logger: logger,
	}
}

// every build is its own batch with a fresh calculator (and cache)
func (b *Builder) newRun(kind string) (*hours.Calculator, *log.Entry) {
	logger := b.logger.WithFields(log.Fields{
		"report": kind,
		"run":    uuid.NewString(),
	})
	return hours.NewStoreCalculator(logger, b.store), logger
}

func (b *Builder) visibleSubjects(ctx context.Context, viewer Viewer) ([]hours.Subject, error) {
	if viewer.IsTeacher() {
		return b.store.ListSubjectsForTeacher(ctx, viewer.UserID)
	}
	return b.store.ListSubjects(ctx)
}

// SubjectHours lists the trimester hours of every subject the viewer can see.
// Teachers get only the hours of their own schedule rows.
func (b *Builder) SubjectHours(ctx context.Context, viewer Viewer) ([]SubjectHoursRow, error) {
	calc, logger := b.newRun("subject_hours")

	subjects, err := b.visibleSubjects(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("could not list subjects: %w", err)
	}

	var teacherID *int64
	if viewer.IsTeacher() {
		teacherID = &viewer.UserID
	}

	rows := make([]SubjectHoursRow, 0, len(subjects))
	for _, subject := range subjects {
		courseName, err := b.courseName(ctx, subject)
		if err != nil {
			return nil, err
		}
		totals, err := calc.Trimesters(ctx, subject, teacherID)
		if err != nil {
			logger.WithField("subject", subject.ID).Error("Could not count hours ", err)
			return nil, err
		}
		rows = append(rows, SubjectHoursRow{
			SubjectID:   subject.ID,
			Subject:     subject.Name,
			Grade:       subject.Grade,
			Course:      courseName,
			WeeklyHours: subject.WeeklyHours,
			Hours:       totals,
		})
	}
	logger.Infof("Built %d subject rows", len(rows))
	return rows, nil
}

// TeacherRows has a row per visible subject and each of its assigned teachers
// with the hours counted from that teacher's schedule. Teachers only get their
// own rows. Rows without hours in any trimester are left out.
func (b *Builder) TeacherRows(ctx context.Context, viewer Viewer) ([]TeacherRow, error) {
	calc, logger := b.newRun("teacher_rows")

	var (
		subjects    []hours.Subject
		assignments []hours.Assignment
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		subjects, err = b.visibleSubjects(egCtx, viewer)
		if err != nil {
			return fmt.Errorf("could not list subjects: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		assignments, err = b.store.ListAssignments(egCtx)
		if err != nil {
			return fmt.Errorf("could not list assignments: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	teachersOf := make(map[int64][]hours.Teacher)
	for _, a := range assignments {
		if a.Teacher.DeletedAt.Valid {
			continue
		}
		if viewer.IsTeacher() && a.Teacher.ID != viewer.UserID {
			continue
		}
		teachersOf[a.SubjectID] = append(teachersOf[a.SubjectID], a.Teacher)
	}

	var rows []TeacherRow
	skipped := 0
	for _, subject := range subjects {
		teachers := teachersOf[subject.ID]
		if len(teachers) == 0 {
			continue
		}
		courseName, err := b.courseName(ctx, subject)
		if err != nil {
			return nil, err
		}
		for _, teacher := range teachers {
			totals, err := calc.Trimesters(ctx, subject, &teacher.ID)
			if err != nil {
				logger.WithFields(log.Fields{
					"subject": subject.ID,
					"teacher": teacher.ID,
				}).Error("Could not count hours ", err)
				return nil, err
			}
			row := TeacherRow{
				TeacherID: teacher.ID,
				Teacher:   teacher.Name,
				SubjectID: subject.ID,
				Subject:   subject.Name,
				Course:    courseName,
				Hours:     totals,
			}
			if row.IsEmpty() {
				skipped++
				continue
			}
			rows = append(rows, row)
		}
	}
	logger.Infof("Built %d teacher rows, skipped %d without hours", len(rows), skipped)
	return rows, nil
}

func (b *Builder) courseName(ctx context.Context, subject hours.Subject) (string, error) {
	course, ok, err := b.store.CourseForSubject(ctx, subject)
	if err != nil {
		return "", fmt.Errorf("could not get course of subject %d: %w", subject.ID, err)
	}
	if !ok {
		return NoCourseName, nil
	}
	return course.Name, nil
}
