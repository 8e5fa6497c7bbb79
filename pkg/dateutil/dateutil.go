// Package dateutil holds the calendar arithmetic used by the FERS rules:
// whole years and months between two dates, the Minimum Retirement Age
// table, and ISO date handling.
package dateutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ISOLayout is the stored form of every date field.
const ISOLayout = "2006-01-02"

// YearsMonths is a duration expressed as whole years plus whole months.
type YearsMonths struct {
	Years  int `json:"years" yaml:"years"`
	Months int `json:"months" yaml:"months"`
}

// TotalMonths returns the duration in months.
func (ym YearsMonths) TotalMonths() int {
	return ym.Years*12 + ym.Months
}

// AtLeast reports whether ym is greater than or equal to other.
func (ym YearsMonths) AtLeast(other YearsMonths) bool {
	return ym.TotalMonths() >= other.TotalMonths()
}

// AtLeastYears reports whether ym is at least the given number of whole years.
func (ym YearsMonths) AtLeastYears(years int) bool {
	return ym.TotalMonths() >= years*12
}

// Decimal returns years + months/12 as a fractional year count.
func (ym YearsMonths) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(ym.Years)).
		Add(decimal.NewFromInt(int64(ym.Months)).Div(decimal.NewFromInt(12)))
}

func (ym YearsMonths) String() string {
	return fmt.Sprintf("%dy %dm", ym.Years, ym.Months)
}

// Diff returns the whole years and months from start to end. A month is only
// counted once its day-of-month anniversary has been reached.
func Diff(start, end time.Time) YearsMonths {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	return YearsMonths{Years: years, Months: months}
}

// FromFractionalYears splits a fractional year count into whole years and
// whole months, truncating any remainder.
func FromFractionalYears(years decimal.Decimal) YearsMonths {
	whole := years.Floor()
	months := years.Sub(whole).Mul(decimal.NewFromInt(12)).Floor()
	return YearsMonths{Years: int(whole.IntPart()), Months: int(months.IntPart())}
}

// MinimumRetirementAge returns the FERS MRA for the given birth date.
func MinimumRetirementAge(birthDate time.Time) YearsMonths {
	birthYear := birthDate.Year()

	switch {
	case birthYear <= 1947:
		return YearsMonths{Years: 55}
	case birthYear <= 1952:
		// 1948 through 1952 add two months per year
		return YearsMonths{Years: 55, Months: (birthYear - 1947) * 2}
	case birthYear <= 1964:
		return YearsMonths{Years: 56}
	case birthYear <= 1969:
		return YearsMonths{Years: 56, Months: (birthYear - 1964) * 2}
	default:
		return YearsMonths{Years: 57}
	}
}

// ParseISO parses a YYYY-MM-DD string. Empty or malformed input reports false.
func ParseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatISO formats t as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// Midnight truncates t to the start of its calendar day, keeping the date as
// observed in t's own location so no UTC shift can move it a day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddYears advances t by n calendar years. Feb 29 rolls to Mar 1 in
// non-leap years.
func AddYears(t time.Time, n int) time.Time {
	return t.AddDate(n, 0, 0)
}
