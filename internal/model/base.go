package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout wire and storage format of calendar dates
const DateLayout = "2006-01-02"

// ── calendar date ──

// Date a calendar date without time of day. Stored as DATE and serialized
// as "YYYY-MM-DD". Always normalized to midnight UTC.
type Date time.Time

// NewDate builds a Date from its components
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates t to its calendar date (in t's location)
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today current UTC date
func Today() Date {
	return DateOf(time.Now().UTC())
}

// ParseDate parses a "YYYY-MM-DD" string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

// Time underlying time.Time at midnight UTC
func (d Date) Time() time.Time { return time.Time(d) }

// IsZero reports whether the date is unset
func (d Date) IsZero() bool { return time.Time(d).IsZero() }

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool { return time.Time(d).Before(time.Time(other)) }

// AddDays shifts the date by n days
func (d Date) AddDays(n int) Date { return Date(time.Time(d).AddDate(0, 0, n)) }

func (d Date) String() string { return time.Time(d).Format(DateLayout) }

// MarshalJSON encodes as "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes "YYYY-MM-DD"
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner. Drivers hand back time.Time (postgres,
// mysql with parseTime, sqlite DATE columns) or text.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("Date.Scan: unsupported type %T", src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) < len(DateLayout) {
		return fmt.Errorf("Date.Scan: invalid date %q", s)
	}
	parsed, err := ParseDate(strings.TrimSpace(s)[:len(DateLayout)])
	if err != nil {
		return fmt.Errorf("Date.Scan: %w", err)
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// GormDataType column type used by AutoMigrate
func (Date) GormDataType() string { return "date" }

// DatePtr converts an optional date to its wire form
func DatePtr(d *Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
