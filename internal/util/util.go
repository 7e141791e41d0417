package util

import (
	"fmt"
	"time"

	"eventhub/internal/errors"

	"github.com/klauspost/lctime"
)

// DateFormatter renders timestamps with a strftime layout in a fixed locale
// and time zone.
type DateFormatter struct {
	locale   string
	layout   string
	location *time.Location
}

// NewDateFormatter validates locale and zone up front so Format never fails.
// An empty zone means UTC.
func NewDateFormatter(locale, layout, zone string) (*DateFormatter, error) {
	location := time.UTC
	if zone != "" {
		loaded, err := time.LoadLocation(zone)
		if err != nil {
			return nil, errors.Wrapf(err, "unknown time zone %q", zone)
		}
		location = loaded
	}

	if _, err := lctime.StrftimeLoc(locale, layout, time.Now()); err != nil {
		return nil, errors.Wrapf(err, "unsupported locale %q", locale)
	}

	return &DateFormatter{locale: locale, layout: layout, location: location}, nil
}

// Format renders t in the formatter's zone.
func (f *DateFormatter) Format(t time.Time) string {
	text, err := lctime.StrftimeLoc(f.locale, f.layout, t.In(f.location))
	if err != nil {
		return t.In(f.location).Format(time.RFC1123)
	}

	return text
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
