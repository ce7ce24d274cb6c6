// Package dateutil normalizes analysis window boundaries.
//
// Inputs may be bare dates (YYYY-MM-DD) or full ISO-8601 datetimes. Both are
// normalized to the fixed layout YYYY-MM-DDTHH:MM:SSZ in UTC, which is
// zero-padded and fixed-width, so normalized values compare correctly as
// plain strings.
package dateutil

import (
	"time"

	"github.com/repopulse/repopulse/pkg/errors"
)

// Layout is the normalized ISO-8601 form all boundaries are formatted to.
const Layout = "2006-01-02T15:04:05Z"

// dateLayout matches bare dates without a time component.
const dateLayout = "2006-01-02"

// datetimeLayouts are the ISO-8601 datetime forms accepted as-is, tried in
// order. Naive datetimes (no offset) are interpreted as UTC.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Epoch is the normalized Unix epoch, the default start of an analysis window.
var Epoch = time.Unix(0, 0).UTC().Format(Layout)

// Now returns the current UTC time in the normalized layout, the default end
// of an analysis window.
func Now() string {
	return time.Now().UTC().Format(Layout)
}

// IsDate reports whether s is a bare YYYY-MM-DD date.
func IsDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsDateTime reports whether s is an accepted ISO-8601 datetime.
func IsDateTime(s string) bool {
	_, err := parseDateTime(s)
	return err == nil
}

// NormalizeStart converts a window start to the normalized layout.
// A bare date is expanded to midnight UTC of that day.
func NormalizeStart(s string) (string, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.Format(Layout), nil
	}
	t, err := parseDateTime(s)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(Layout), nil
}

// NormalizeEnd converts a window end to the normalized layout.
// A bare date is expanded to 23:59:59 UTC of the same day.
func NormalizeEnd(s string) (string, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.Add(24*time.Hour - time.Second).Format(Layout), nil
	}
	t, err := parseDateTime(s)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(Layout), nil
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(errors.ErrCodeInvalidDate, "%s is not a valid date (YYYY-MM-DD) or ISO-8601 datetime", s)
}
