package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/archivehq/whatsapp-import/internal/model"
)

// NormalizeTimestamp converts an exported "D/M/YY", "H:MM", "am|pm" triple
// into an absolute UTC instant. Two-digit years map to 2000+YY; the export
// carries no timezone, so wall-clock components are taken as UTC directly.
func NormalizeTimestamp(dateStr, timeStr, period string) (time.Time, error) {
	dateParts := strings.Split(dateStr, "/")
	if len(dateParts) != 3 {
		return time.Time{}, fmt.Errorf("%w: date %q", model.ErrMalformedTimestamp, dateStr)
	}

	day, err := atoiInRange(dateParts[0], 1, 31)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day %q", model.ErrMalformedTimestamp, dateParts[0])
	}
	month, err := atoiInRange(dateParts[1], 1, 12)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q", model.ErrMalformedTimestamp, dateParts[1])
	}
	year, err := atoiInRange(dateParts[2], 0, 99)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: year %q", model.ErrMalformedTimestamp, dateParts[2])
	}

	timeParts := strings.Split(timeStr, ":")
	if len(timeParts) != 2 {
		return time.Time{}, fmt.Errorf("%w: time %q", model.ErrMalformedTimestamp, timeStr)
	}
	hours, err := atoiInRange(timeParts[0], 1, 12)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: hour %q", model.ErrMalformedTimestamp, timeParts[0])
	}
	minutes, err := atoiInRange(timeParts[1], 0, 59)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: minute %q", model.ErrMalformedTimestamp, timeParts[1])
	}

	switch strings.ToLower(period) {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	default:
		return time.Time{}, fmt.Errorf("%w: period %q", model.ErrMalformedTimestamp, period)
	}

	return time.Date(2000+year, time.Month(month), day, hours, minutes, 0, 0, time.UTC), nil
}

func atoiInRange(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, fmt.Errorf("value %d out of range [%d, %d]", n, min, max)
	}
	return n, nil
}
