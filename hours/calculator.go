package hours

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Calculator counts the teaching hours of subjects per trimester.
//
// A calculator is meant for one batch, e.i. one report covering many
// subjects. It caches the non teaching days of each trimester range it sees
// so create a new one for every batch rather than keeping one around.
type Calculator struct {
	courses    CourseLookup
	schedules  ScheduleLookup
	exclusions *ExclusionCache
	logger     *log.Entry
}

func NewCalculator(
	logger *log.Entry,
	courses CourseLookup,
	calendar CalendarLookup,
	schedules ScheduleLookup,
) *Calculator {
	return &Calculator{
		courses:    courses,
		schedules:  schedules,
		exclusions: NewExclusionCache(calendar),
		logger:     logger,
	}
}

// NewStoreCalculator is NewCalculator with every lookup served by store
func NewStoreCalculator(logger *log.Entry, store Store) *Calculator {
	return NewCalculator(logger, store, store, store)
}

// Hours is the number of hours subject is taught in trimester, counting only
// the rows of teacherID when it is not nil. Every day of the trimester that
// is not on the calendar adds the hours scheduled for its weekday.
//
// A subject without a course, a trimester without both dates or a trimester
// outside 1..3 has 0 hours. Only lookup failures are returned as errors.
func (c *Calculator) Hours(ctx context.Context, subject Subject, trimester int, teacherID *int64) (int, error) {
	logger := c.logger.WithFields(log.Fields{
		"subject":   subject.ID,
		"trimester": trimester,
	})

	course, ok, err := c.courses.CourseForSubject(ctx, subject)
	if err != nil {
		return 0, fmt.Errorf("could not get course of subject %d: %w", subject.ID, err)
	}
	if !ok {
		logger.Debug("Subject has no course, counting 0 hours")
		return 0, nil
	}

	start, end, err := course.Trimester(trimester)
	if err != nil {
		logger.WithError(err).Debug("Trimester cannot be counted, counting 0 hours")
		return 0, nil
	}

	excluded, err := c.exclusions.Get(ctx, start, end)
	if err != nil {
		return 0, err
	}

	weekly, err := c.weeklyHours(ctx, subject.ID, teacherID)
	if err != nil {
		return 0, err
	}

	total := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if excluded.Contains(day) {
			continue
		}
		total += weekly[WeekdayOf(day)]
	}
	logger.Tracef("Counted %d hours between %s", total, RangeKey(start, end))
	return total, nil
}

// Trimesters gives the hours of all three trimesters using the same cache
func (c *Calculator) Trimesters(ctx context.Context, subject Subject, teacherID *int64) ([TrimesterCount]int, error) {
	var totals [TrimesterCount]int
	for i := range totals {
		h, err := c.Hours(ctx, subject, i+1, teacherID)
		if err != nil {
			return totals, err
		}
		totals[i] = h
	}
	return totals, nil
}

// rows landing on the same weekday are separate sessions so they are summed,
// whether they come from different teachers or are duplicates
func (c *Calculator) weeklyHours(ctx context.Context, subjectID int64, teacherID *int64) (map[Weekday]int, error) {
	rows, err := c.schedules.SchedulesForSubject(ctx, subjectID, teacherID)
	if err != nil {
		return nil, fmt.Errorf("could not get schedule of subject %d: %w", subjectID, err)
	}
	weekly := make(map[Weekday]int, 7)
	for _, row := range rows {
		if row.Hours < 0 {
			c.logger.WithField("schedule", row.ID).Warn("Ignoring schedule row with negative hours")
			continue
		}
		if !row.Weekday.Valid() {
			c.logger.WithFields(log.Fields{
				"schedule": row.ID,
				"weekday":  row.Weekday,
			}).Warn("Ignoring schedule row with unknown weekday")
			continue
		}
		weekly[row.Weekday] += int(row.Hours)
	}
	return weekly, nil
}
