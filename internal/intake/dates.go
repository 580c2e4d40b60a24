package intake

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	inDaysRe  = regexp.MustCompile(`^in\s+(\d+)\s+days?$`)
	weekdayRe = regexp.MustCompile(`^(next\s+)?(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`)
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseRelativeDate resolves a date expression against a reference time.
// Supported forms: ISO (2006-01-02), today/tomorrow/yesterday, "in N days",
// and weekday names with an optional "next". A bare weekday resolves to the
// nearest occurrence on or after the reference day; "next <day>" always
// lands in the following week, even when the reference day already matches.
// Anything unrecognized reports ok=false rather than an error.
func ParseRelativeDate(expr string, now time.Time) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(expr))
	s = strings.TrimPrefix(s, "on ")
	s = strings.TrimSpace(strings.TrimSuffix(s, "."))
	if s == "" {
		return time.Time{}, false
	}

	today := StartOfDay(now)

	if m := isoDateRe.FindString(s); m != "" {
		parsed, err := time.Parse("2006-01-02", m)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location()), true
	}

	switch s {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	}

	if m := inDaysRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return today.AddDate(0, 0, n), true
	}

	if m := weekdayRe.FindStringSubmatch(s); m != nil {
		target := weekdayNames[m[2]]
		delta := (int(target) - int(today.Weekday()) + 7) % 7
		if m[1] != "" {
			delta += 7
		}
		return today.AddDate(0, 0, delta), true
	}

	return time.Time{}, false
}

// dateExprPattern mirrors what ParseRelativeDate accepts, for embedding in
// larger extraction regexes.
const dateExprPattern = `\d{4}-\d{2}-\d{2}|today|tomorrow|yesterday|in\s+\d+\s+days?|(?:next\s+)?(?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)`
