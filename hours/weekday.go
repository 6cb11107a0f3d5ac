package hours

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Weekday is the canonical ascii key a schedule row is stored under.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// indexed by iso weekday, 0 is unused
var isoWeekdays = [8]Weekday{
	1: Monday,
	2: Tuesday,
	3: Wednesday,
	4: Thursday,
	5: Friday,
	6: Saturday,
	7: Sunday,
}

// names accepted by ParseWeekday after folding, the spanish ones are what
// the admin panel has historically stored
var weekdayAliases = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
	"lunes":     Monday,
	"martes":    Tuesday,
	"miercoles": Wednesday,
	"jueves":    Thursday,
	"viernes":   Friday,
	"sabado":    Saturday,
	"domingo":   Sunday,
}

// ISOWeekday numbers t's day of the week from Monday=1 to Sunday=7
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func WeekdayOf(t time.Time) Weekday {
	return isoWeekdays[ISOWeekday(t)]
}

// Valid is false for keys that are not one of the seven days, e.i. a raw
// name from storage that ParseWeekday rejected
func (w Weekday) Valid() bool {
	return w != "" && slices.Contains(isoWeekdays[1:], w)
}

func (w Weekday) String() string {
	return string(w)
}

// ParseWeekday accepts english or spanish day names in any case, with or
// without accents ("Miércoles", "miercoles", "WEDNESDAY").
func ParseWeekday(s string) (Weekday, error) {
	folded, err := foldName(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
	}
	w, ok := weekdayAliases[folded]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
	}
	return w, nil
}

func foldName(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return strings.ToLower(folded), nil
}
