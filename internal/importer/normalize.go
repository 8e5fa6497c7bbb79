package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// HoursPerMonth is the OPM sick leave conversion used for "N months" cells.
const HoursPerMonth = 174

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	moneyNoise    = strings.NewReplacer("$", "", ",", "", " ", "", "\u00a0", "")
	dashOnly      = regexp.MustCompile(`^[-\x{2013}\x{2014}]+$`)
	monthsPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:months?|mos?\.?)$`)
	hoursPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:hours?|hrs?\.?)?$`)
)

var (
	hundred       = decimal.NewFromInt(100)
	survivorHalf  = decimal.RequireFromString("0.45")
	survivorQuart = decimal.RequireFromString("0.20")
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"1-2-2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"02-Jan-2006",
	"2-Jan-06",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// cellText renders any scalar cell value as text.
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case decimal.Decimal:
		return t.String()
	case time.Time:
		return dateutil.FormatISO(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// cellNumber returns the numeric value of typed (non-text) cells.
func cellNumber(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case decimal.Decimal:
		return t, true
	}
	return decimal.Decimal{}, false
}

// NormalizeLabel builds a comparison key: trimmed, lower-cased, inner
// whitespace collapsed.
func NormalizeLabel(v any) string {
	s := strings.TrimSpace(cellText(v))
	return strings.ToLower(whitespaceRun.ReplaceAllString(s, " "))
}

// ParseMoney strips currency noise and returns the amount rounded to the cent
// with trailing zeros removed, or "" when the cell holds no amount.
func ParseMoney(v any) string {
	if d, ok := cellNumber(v); ok {
		return d.Round(2).String()
	}
	s := moneyNoise.Replace(strings.TrimSpace(cellText(v)))
	if s == "" || dashOnly.MatchString(s) {
		return ""
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ""
	}
	return d.Round(2).String()
}

// ParseAllocPct accepts a fraction (0.1724) or a whole percentage (17.24,
// "17.24%") and returns the percentage rounded to two places.
func ParseAllocPct(v any) string {
	d, ok := cellNumber(v)
	if !ok {
		s := strings.TrimSpace(cellText(v))
		s = strings.TrimSuffix(s, "%")
		s = moneyNoise.Replace(s)
		if s == "" || dashOnly.MatchString(s) {
			return ""
		}
		var err error
		if d, err = decimal.NewFromString(s); err != nil {
			return ""
		}
	}
	if d.IsPositive() && d.LessThan(decimal.NewFromInt(1)) {
		d = d.Mul(hundred)
	}
	return d.Round(2).String()
}

// ParseDate accepts a textual date or a spreadsheet date serial and returns
// YYYY-MM-DD, or "" when neither interpretation works.
func ParseDate(v any) string {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return dateutil.FormatISO(dateutil.Midnight(t))
	}
	if d, ok := cellNumber(v); ok {
		return fromSerial(d)
	}

	s := strings.TrimSpace(cellText(v))
	if s == "" {
		return ""
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return fromSerial(d)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateutil.FormatISO(dateutil.Midnight(t))
		}
	}
	return ""
}

func fromSerial(d decimal.Decimal) string {
	if !d.IsPositive() {
		return ""
	}
	t, err := excelize.ExcelDateToTime(d.InexactFloat64(), false)
	if err != nil {
		return ""
	}
	return dateutil.FormatISO(dateutil.Midnight(t))
}

// ParseSickLeave accepts an hour count or an "N months" expression and
// returns hours. Months convert at HoursPerMonth, rounded to the hour.
func ParseSickLeave(v any) string {
	if d, ok := cellNumber(v); ok {
		return d.String()
	}
	s := strings.ToLower(strings.TrimSpace(cellText(v)))
	s = strings.ReplaceAll(s, ",", "")
	if m := monthsPattern.FindStringSubmatch(s); m != nil {
		months := decimal.RequireFromString(m[1])
		return months.Mul(decimal.NewFromInt(HoursPerMonth)).Round(0).String()
	}
	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		return decimal.RequireFromString(m[1]).String()
	}
	return ""
}

// MapSelect matches v case-insensitively against allowed and returns the
// canonical allowed value, or fallback.
func MapSelect(v any, allowed []string, fallback string) string {
	s := strings.TrimSpace(cellText(v))
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return a
		}
	}
	return fallback
}

// MapSurvivorElection maps a cell to "0", "25" or "50".
func MapSurvivorElection(v any) string {
	if d, ok := cellNumber(v); ok {
		// whole percentages are scaled down to fractions first
		if d.GreaterThan(decimal.NewFromInt(1)) {
			d = d.Div(hundred)
		}
		switch {
		case d.GreaterThanOrEqual(survivorHalf):
			return "50"
		case d.GreaterThanOrEqual(survivorQuart):
			return "25"
		default:
			return "0"
		}
	}

	s := strings.TrimSuffix(strings.TrimSpace(cellText(v)), "%")
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "0"
	}
	switch {
	case d.Equal(decimal.NewFromInt(50)), d.Equal(decimal.RequireFromString("0.5")):
		return "50"
	case d.Equal(decimal.NewFromInt(25)), d.Equal(decimal.RequireFromString("0.25")):
		return "25"
	default:
		return "0"
	}
}
