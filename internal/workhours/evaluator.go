package workhours

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/directory-microservice/internal/domain"
)

// Verdict - tri-state open/closed result of a schedule evaluation.
type Verdict string

const (
	// VerdictUnknown means the entity carries no schedule at all.
	VerdictUnknown Verdict = "unknown"
	VerdictOpen    Verdict = "open"
	VerdictClosed  Verdict = "closed"
)

// Evaluate produces the verdict for a weekly schedule at the given
// instant, interpreted in loc. The open interval is half-open: the
// closing minute itself already counts as closed.
//
// Schedules wrapping past midnight (close < open) are not supported;
// such a day evaluates closed once the close time has passed.
func Evaluate(schedule domain.WeekSchedule, now time.Time, loc *time.Location) Verdict {
	if len(schedule) == 0 {
		return VerdictUnknown
	}

	local := now.In(loc)
	day, ok := schedule[domain.WeekdayFromTime(local.Weekday())]
	if !ok || day.Closed {
		return VerdictClosed
	}

	openMin, err := parseMinutes(day.Open)
	if err != nil {
		return VerdictClosed
	}
	closeMin, err := parseMinutes(day.Close)
	if err != nil {
		return VerdictClosed
	}

	nowMin := local.Hour()*60 + local.Minute()
	if nowMin >= openMin && nowMin < closeMin {
		return VerdictOpen
	}
	return VerdictClosed
}

// FormatWeek renders the schedule as seven display strings, Monday
// first. Days absent from the schedule render the same as closed days.
func FormatWeek(schedule domain.WeekSchedule) []string {
	out := make([]string, 0, len(domain.WeekOrder))
	for _, weekday := range domain.WeekOrder {
		label := displayName(weekday)
		day, ok := schedule[weekday]
		if !ok || day.Closed {
			out = append(out, fmt.Sprintf("%s: closed", label))
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s-%s", label, day.Open, day.Close))
	}
	return out
}

// parseMinutes converts "HH:MM" to minutes since midnight.
func parseMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed hours in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed minutes in %q", s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}

	return hours*60 + minutes, nil
}

func displayName(d domain.Weekday) string {
	s := string(d)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
