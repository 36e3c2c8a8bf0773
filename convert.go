package ofxstream

import (
	"errors"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

// ErrInvalidDate is returned when a date string has no YYYYMMDD prefix.
var ErrInvalidDate = errors.New("error - date string can not be parsed")

// ParseDate parses an OFX date string to midnight UTC of its calendar date.
// Only the YYYYMMDD prefix is read; time of day, fractional seconds and the
// [offset:tz] suffix are ignored.
func ParseDate(d string) (time.Time, error) {
	d = strings.TrimSpace(d)
	if len(d) < 8 {
		return time.Time{}, ErrInvalidDate
	}
	for i := 0; i < 8; i++ {
		if d[i] < '0' || d[i] > '9' {
			return time.Time{}, ErrInvalidDate
		}
	}
	year := atoi(d[0:4])
	month := atoi(d[4:6])
	day := atoi(d[6:8])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out of range values, 20230231 would become March 3rd.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// atoi converts a string of ASCII digits.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// ParseAmount parses an OFX amount. Amounts are expected with a dot decimal
// separator, but some banks export a comma instead ("1234,56" or
// "1.234,56"), which is accepted as a fallback.
// A malformed amount is logged and read as zero.
func ParseAmount(amount string) decimal.Decimal {
	// Some banks pad the value with spaces.
	s := strings.TrimSpace(amount)
	d, err := decimal.NewFromString(s)
	if err == nil {
		return d
	}
	if strings.Contains(s, ",") {
		if d, ok := parseCommaDecimal(s); ok {
			return d
		}
	}
	glog.Warningf("Parse amount was: %q: %v", amount, err)
	return decimal.Zero
}

// parseCommaDecimal parses an amount written with a comma decimal separator,
// optionally grouped with dots or spaces.
func parseCommaDecimal(s string) (decimal.Decimal, bool) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
	comma := strings.LastIndex(s, ",")
	if strings.Count(s, ",") != 1 || strings.LastIndex(s, ".") > comma {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s[:comma], ".", "") + "." + s[comma+1:]
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CollapseSpace replaces every run of whitespace with a single space and
// trims the result.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
