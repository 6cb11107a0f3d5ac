package hours

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ExclusionSet holds the non teaching days of a range keyed by DateKey.
// Why a day is excluded (holiday, exam...) does not matter.
type ExclusionSet map[string]struct{}

func NewExclusionSet(entries []CalendarEntry) ExclusionSet {
	set := make(ExclusionSet, len(entries))
	for _, entry := range entries {
		set[DateKey(entry.Date)] = struct{}{}
	}
	return set
}

func (s ExclusionSet) Contains(date time.Time) bool {
	_, ok := s[DateKey(date)]
	return ok
}

// RangeKey identifies a date range in the exclusion cache e.i. 2024-01-01_2024-03-22
func RangeKey(start, end time.Time) string {
	return DateKey(start) + "_" + DateKey(end)
}

// ExclusionCache remembers the exclusion set of every range it was asked for.
// It belongs to one batch of calculations (one report) and is thrown away
// with it, courses share trimester ranges so most lookups are hits.
type ExclusionCache struct {
	lookup CalendarLookup

	mu   sync.Mutex
	sets map[string]ExclusionSet
}

func NewExclusionCache(lookup CalendarLookup) *ExclusionCache {
	return &ExclusionCache{
		lookup: lookup,
		sets:   map[string]ExclusionSet{},
	}
}

func (c *ExclusionCache) Get(ctx context.Context, start, end time.Time) (ExclusionSet, error) {
	key := RangeKey(start, end)

	// held during the lookup so concurrent callers of one range query once
	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok := c.sets[key]; ok {
		return set, nil
	}

	entries, err := c.lookup.CalendarEntriesBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not get calendar entries for %s: %w", key, err)
	}
	set := NewExclusionSet(entries)
	c.sets[key] = set
	return set, nil
}

// Len is the number of cached ranges
func (c *ExclusionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sets)
}
