package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFmt = "2006-01-02"

// DateUnit is the unit of a relative date value.
type DateUnit string

const (
	UnitDay   DateUnit = "day"
	UnitWeek  DateUnit = "week"
	UnitMonth DateUnit = "month"
	UnitYear  DateUnit = "year"
)

// unitSuffixes maps value suffixes to units. Plural forms come first so
// that "3 days" never leaves a stray "s" behind after trimming.
var unitSuffixes = []struct {
	suffix string
	unit   DateUnit
}{
	{"days", UnitDay},
	{"day", UnitDay},
	{"weeks", UnitWeek},
	{"week", UnitWeek},
	{"months", UnitMonth},
	{"month", UnitMonth},
	{"years", UnitYear},
	{"year", UnitYear},
}

// RelativeDate is a magnitude+unit pair counting backwards from a
// reference day, e.g. "3 days" is RelativeDate{3, UnitDay}.
type RelativeDate struct {
	Magnitude uint
	Unit      DateUnit
}

// ParseRelativeDate decodes a stored date value into a magnitude+unit
// pair. A value with no unit suffix is not a relative date (it is an
// absolute keyword such as "today") and yields ok == false.
//
// A value that carries a unit suffix but no valid non-negative integer
// magnitude is corrupted persisted state, not user input, and panics.
func ParseRelativeDate(value string) (rel RelativeDate, ok bool) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "today", "yesterday":
		// absolute keywords; "yesterday" would otherwise match the
		// "day" suffix below
		return RelativeDate{}, false
	}
	for _, u := range unitSuffixes {
		if !strings.HasSuffix(value, u.suffix) {
			continue
		}
		text := strings.TrimSpace(strings.TrimSuffix(value, u.suffix))
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			panic(fmt.Sprintf(
				"corrupted relative date value %q: %v", value, err))
		}
		return RelativeDate{Magnitude: uint(n), Unit: u.unit}, true
	}
	return RelativeDate{}, false
}

// String encodes the pair back into the stored value form, e.g. "1 day"
// or "2 weeks".
func (d RelativeDate) String() string {
	unit := string(d.Unit)
	if d.Magnitude != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", d.Magnitude, unit)
}

// Apply returns t shifted d into the past.
func (d RelativeDate) Apply(t time.Time) time.Time {
	n := int(d.Magnitude)
	switch d.Unit {
	case UnitWeek:
		return t.AddDate(0, 0, -7*n)
	case UnitMonth:
		return t.AddDate(0, -n, 0)
	case UnitYear:
		return t.AddDate(-n, 0, 0)
	default:
		return t.AddDate(0, 0, -n)
	}
}

// ResolveDay translates a stored date value into the [start, end) bounds
// of the day it names, computed against the given reference time. The
// value may be an absolute keyword ("today", "yesterday"), a relative
// pair ("3 days"), or a plain YYYY-MM-DD date. Unrecognized values
// yield ok == false.
func ResolveDay(value string, now time.Time) (start, end time.Time, ok bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "today":
		start = bod(now)
	case "yesterday":
		start = bod(now).AddDate(0, 0, -1)
	default:
		if rel, isRel := ParseRelativeDate(value); isRel {
			start = bod(rel.Apply(now))
			break
		}
		t, err := time.Parse(dateFmt, value)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		start = t
	}
	return start, start.AddDate(0, 0, 1), true
}

// bod returns the begin of the day
func bod(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
