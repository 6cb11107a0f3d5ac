package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pjt727/classhours/hours"
)

// every month is laid out on 6 weeks so they all render the same height
const MonthCells = 42

var ErrCourseDatesMissing = errors.New("course has no start of the first trimester or end of the third")

type Day struct {
	Date       time.Time             `json:"date"`
	Day        int                   `json:"day"`
	ISOWeekday int                   `json:"iso_weekday"`
	Entries    []hours.CalendarEntry `json:"entries"`
	Trimester  int                   `json:"trimester"` // 0 when outside every trimester
}

// Month has MonthCells cells, nil cells are padding before the first day
// (so it lands on its weekday column) and after the last one.
type Month struct {
	Key   string `json:"key"` // YYYY-MM
	Name  string `json:"name"`
	Cells []*Day `json:"cells"`
}

// Temporalization is the whole school year of a course laid out by month
type Temporalization struct {
	Course hours.Course          `json:"course"`
	Months []Month               `json:"months"`
	Marked []hours.CalendarEntry `json:"marked"`
}

// BuildTemporalization lays out every day from the start of the first
// trimester to the end of the third with the calendar entries on each.
func BuildTemporalization(ctx context.Context, calendar hours.CalendarLookup, course hours.Course) (*Temporalization, error) {
	first, last := course.Trimesters[0].Start, course.Trimesters[hours.TrimesterCount-1].End
	if !first.Valid || !last.Valid {
		return nil, fmt.Errorf("%w: %s", ErrCourseDatesMissing, course.Name)
	}
	start, end := hours.DateOf(first.Time), hours.DateOf(last.Time)

	entries, err := calendar.CalendarEntriesBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not get calendar entries: %w", err)
	}
	byDate := make(map[string][]hours.CalendarEntry)
	for _, entry := range entries {
		key := hours.DateKey(entry.Date)
		byDate[key] = append(byDate[key], entry)
	}

	var months []Month
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01")
		if len(months) == 0 || months[len(months)-1].Key != key {
			months = append(months, Month{
				Key:   key,
				Name:  fmt.Sprintf("%s %d", day.Month(), day.Year()),
				Cells: make([]*Day, hours.ISOWeekday(day)-1, MonthCells),
			})
		}
		m := &months[len(months)-1]
		m.Cells = append(m.Cells, &Day{
			Date:       day,
			Day:        day.Day(),
			ISOWeekday: hours.ISOWeekday(day),
			Entries:    byDate[hours.DateKey(day)],
			Trimester:  course.TrimesterOf(day),
		})
	}
	for i := range months {
		for len(months[i].Cells) < MonthCells {
			months[i].Cells = append(months[i].Cells, nil)
		}
	}

	return &Temporalization{
		Course: course,
		Months: months,
		Marked: entries,
	}, nil
}
