// Package dates holds the calendar-date type used on the wire.
package dates

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// accepted input layouts, tried in order
var layouts = []string{
	Layout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Date is a calendar date without time of day. It decodes from YYYY-MM-DD or a
// full timestamp and always encodes as YYYY-MM-DD.
type Date struct {
	time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar date.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return New(t.Year(), t.Month(), t.Day())
}

func Parse(value string) (Date, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
