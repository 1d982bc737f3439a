package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	timeRegex  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	dateRegex  = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/\d{4}$`)
	colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
)

// Time reports whether s is a 24-hour HH:MM time.
func Time(s string) bool {
	return timeRegex.MatchString(s)
}

// Date reports whether s is a DD/MM/YYYY date. Day and month ranges are
// checked, calendar validity is not (31/02 passes).
func Date(s string) bool {
	return dateRegex.MatchString(s)
}

// Color reports whether s is a #RGB or #RRGGBB hex color.
func Color(s string) bool {
	return colorRegex.MatchString(s)
}

// ParseDate turns a DD/MM/YYYY string into a time.Time. Out-of-range days
// roll over into the next month rather than erroring, keeping 31/02 and the
// like syntactically acceptable.
func ParseDate(s string) time.Time {
	parts := strings.Split(s, "/")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateOrder reports whether start is on or before end. Both must already
// have passed Date; comparison is at day granularity.
func DateOrder(startDate, endDate string) bool {
	return !ParseDate(startDate).After(ParseDate(endDate))
}
