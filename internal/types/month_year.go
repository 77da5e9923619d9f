package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthNames is the fixed month table used by the date picker, January first.
var MonthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthYear is a calendar month. Month is 0-11.
type MonthYear struct {
	Month int
	Year  int
}

// ParseMonthYear parses a "Month Year" token such as "Marzo 2020".
// Month names are matched case-insensitively against MonthNames.
func ParseMonthYear(token string) (MonthYear, error) {
	fields := strings.Fields(token)
	if len(fields) != 2 {
		return MonthYear{}, fmt.Errorf("invalid month/year %q: expected \"Month Year\"", token)
	}

	month := -1
	for i, name := range MonthNames {
		if strings.EqualFold(fields[0], name) {
			month = i
			break
		}
	}
	if month < 0 {
		return MonthYear{}, fmt.Errorf("invalid month/year %q: unknown month %q", token, fields[0])
	}

	year, err := strconv.Atoi(fields[1])
	if err != nil || year <= 0 {
		return MonthYear{}, fmt.Errorf("invalid month/year %q: bad year %q", token, fields[1])
	}

	return MonthYear{Month: month, Year: year}, nil
}

// CanonicalMonthYear returns token in canonical form ("marzo  2020" becomes "Marzo 2020").
// A token that does not parse is returned trimmed.
func CanonicalMonthYear(token string) string {
	token = strings.TrimSpace(token)
	if m, err := ParseMonthYear(token); err == nil {
		return m.String()
	}
	return token
}

// MonthYearOf returns the calendar month containing t.
func MonthYearOf(t time.Time) MonthYear {
	return MonthYear{Month: int(t.Month()) - 1, Year: t.Year()}
}

// String formats the canonical token, e.g. "Marzo 2020".
func (m MonthYear) String() string {
	return fmt.Sprintf("%s %d", MonthNames[m.Month], m.Year)
}

// Time returns midnight on the first day of the month in loc.
func (m MonthYear) Time(loc *time.Location) time.Time {
	return time.Date(m.Year, time.Month(m.Month+1), 1, 0, 0, 0, 0, loc)
}

// Compare orders by (year, month): -1 if m is earlier than o, 0 if equal, 1 if later.
func (m MonthYear) Compare(o MonthYear) int {
	switch {
	case m.Year < o.Year:
		return -1
	case m.Year > o.Year:
		return 1
	case m.Month < o.Month:
		return -1
	case m.Month > o.Month:
		return 1
	}
	return 0
}

// Before reports whether m is strictly earlier than o.
func (m MonthYear) Before(o MonthYear) bool {
	return m.Compare(o) < 0
}

// After reports whether m is strictly later than o.
func (m MonthYear) After(o MonthYear) bool {
	return m.Compare(o) > 0
}
