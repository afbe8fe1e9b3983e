package data

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts used in the database. All date/time columns are stored as
// ISO-formatted TEXT. Reading tolerates two legacy encodings left behind by
// earlier versions of the schema: Unix epoch milliseconds and space-separated
// datetimes.
const (
	dateTimeLayout     = "2006-01-02T15:04:05"
	dateTimeFracLayout = "2006-01-02T15:04:05.999999999"
	dateLayout         = "2006-01-02"
)

// TextTime is a time.Time persisted as ISO-8601 TEXT.
type TextTime struct {
	time.Time
}

// NewTextTime wraps t, truncated to second precision.
func NewTextTime(t time.Time) TextTime {
	return TextTime{Time: t.Truncate(time.Second)}
}

// Value implements driver.Valuer.
func (t TextTime) Value() (driver.Value, error) {
	return t.Format(dateTimeLayout), nil
}

// Scan implements sql.Scanner.
func (t *TextTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into TextTime", src)
	}
}

func (t *TextTime) parse(s string) error {
	parsed, err := parseStoredDateTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// parseStoredDateTime parses a stored datetime string. It tries the ISO
// layout first, then Unix epoch milliseconds, then the space-separated
// datetime form SQLite produces. Anything else is a hard error.
func parseStoredDateTime(s string) (time.Time, error) {
	if parsed, err := time.Parse(dateTimeLayout, s); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(dateTimeFracLayout, s); err == nil {
		return parsed, nil
	}
	if millis, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(millis), nil
	}
	if strings.Contains(s, " ") {
		candidate := strings.Replace(s, " ", "T", 1)
		if parsed, err := time.Parse(dateTimeLayout, candidate); err == nil {
			return parsed, nil
		}
		if parsed, err := time.Parse(dateTimeFracLayout, candidate); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse stored datetime %q", s)
}

// TextDate is a nullable calendar date persisted as ISO-8601 TEXT.
// The zero value is the null date.
type TextDate struct {
	Time  time.Time
	Valid bool
}

// NewTextDate wraps t, keeping only the calendar date.
func NewTextDate(t time.Time) TextDate {
	y, m, d := t.Date()
	return TextDate{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// Value implements driver.Valuer.
func (d TextDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

// Scan implements sql.Scanner.
func (d *TextDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		d.Time, d.Valid = time.Time{}, false
		return nil
	case time.Time:
		d.Time, d.Valid = v, true
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into TextDate", src)
	}
}

func (d *TextDate) parse(s string) error {
	if s == "" {
		d.Time, d.Valid = time.Time{}, false
		return nil
	}
	if parsed, err := time.Parse(dateLayout, s); err == nil {
		d.Time, d.Valid = parsed, true
		return nil
	}
	// Legacy rows may carry a full datetime or an epoch-millis value in a
	// date column; keep just the calendar date.
	if parsed, err := parseStoredDateTime(s); err == nil {
		*d = NewTextDate(parsed)
		return nil
	}
	return fmt.Errorf("unable to parse stored date %q", s)
}

// Format renders the date with the given layout, or "" when null.
func (d TextDate) Format(layout string) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(layout)
}

// After reports whether the date is set and falls strictly after cutoff.
func (d TextDate) After(cutoff time.Time) bool {
	return d.Valid && d.Time.After(cutoff)
}
