package parse_test

import (
	"testing"
	"time"

	"git.sr.ht/~kanr/smartfolder/lib/parse"
)

func TestParseRelativeDate(t *testing.T) {
	tests := []struct {
		value string
		want  parse.RelativeDate
		ok    bool
	}{
		{
			value: "1 day",
			want:  parse.RelativeDate{Magnitude: 1, Unit: parse.UnitDay},
			ok:    true,
		},
		{
			value: "3 days",
			want:  parse.RelativeDate{Magnitude: 3, Unit: parse.UnitDay},
			ok:    true,
		},
		{
			value: "2 weeks",
			want:  parse.RelativeDate{Magnitude: 2, Unit: parse.UnitWeek},
			ok:    true,
		},
		{
			value: "1 month",
			want:  parse.RelativeDate{Magnitude: 1, Unit: parse.UnitMonth},
			ok:    true,
		},
		{
			value: "5 years",
			want:  parse.RelativeDate{Magnitude: 5, Unit: parse.UnitYear},
			ok:    true,
		},
		{
			value: "0 days",
			want:  parse.RelativeDate{Magnitude: 0, Unit: parse.UnitDay},
			ok:    true,
		},
		{value: "today"},
		{value: "yesterday"},
		{value: "2024-05-01"},
	}

	for _, test := range tests {
		got, ok := parse.ParseRelativeDate(test.value)
		if ok != test.ok {
			t.Errorf("ParseRelativeDate(%q) ok = %v, want %v",
				test.value, ok, test.ok)
			continue
		}
		if got != test.want {
			t.Errorf("ParseRelativeDate(%q) = %v, want %v",
				test.value, got, test.want)
		}
	}
}

func TestParseRelativeDateCorrupted(t *testing.T) {
	for _, value := range []string{"x days", "days", "-3 weeks", "1.5 days"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ParseRelativeDate(%q) did not panic",
						value)
				}
			}()
			parse.ParseRelativeDate(value)
		}()
	}
}

func TestRelativeDateString(t *testing.T) {
	tests := []struct {
		rel  parse.RelativeDate
		want string
	}{
		{parse.RelativeDate{Magnitude: 1, Unit: parse.UnitDay}, "1 day"},
		{parse.RelativeDate{Magnitude: 3, Unit: parse.UnitDay}, "3 days"},
		{parse.RelativeDate{Magnitude: 1, Unit: parse.UnitWeek}, "1 week"},
		{parse.RelativeDate{Magnitude: 0, Unit: parse.UnitMonth}, "0 months"},
	}
	for _, test := range tests {
		if got := test.rel.String(); got != test.want {
			t.Errorf("%#v.String() = %q, want %q",
				test.rel, got, test.want)
		}
		// encode then decode must preserve the pair
		back, ok := parse.ParseRelativeDate(test.rel.String())
		if !ok || back != test.rel {
			t.Errorf("ParseRelativeDate(%q) = %v, %v, want %v",
				test.rel.String(), back, ok, test.rel)
		}
	}
}

func TestResolveDay(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		value string
		start time.Time
		ok    bool
	}{
		{value: "today", start: day(2024, 5, 15), ok: true},
		{value: "yesterday", start: day(2024, 5, 14), ok: true},
		{value: "3 days", start: day(2024, 5, 12), ok: true},
		{value: "1 week", start: day(2024, 5, 8), ok: true},
		{value: "1 month", start: day(2024, 4, 15), ok: true},
		{value: "2024-01-31", start: day(2024, 1, 31), ok: true},
		{value: "whenever"},
	}

	for _, test := range tests {
		start, end, ok := parse.ResolveDay(test.value, now)
		if ok != test.ok {
			t.Errorf("ResolveDay(%q) ok = %v, want %v",
				test.value, ok, test.ok)
			continue
		}
		if !test.ok {
			continue
		}
		if !start.Equal(test.start) {
			t.Errorf("ResolveDay(%q) start = %v, want %v",
				test.value, start, test.start)
		}
		if want := test.start.AddDate(0, 0, 1); !end.Equal(want) {
			t.Errorf("ResolveDay(%q) end = %v, want %v",
				test.value, end, want)
		}
	}
}
