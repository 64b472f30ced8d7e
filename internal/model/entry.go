// Package model defines the journal entry data types.
package model

import (
	"encoding/json"
	"time"
)

// Entry is one journal record. Entries are read-only once loaded.
type Entry struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     Date   `json:"date"`
	Body     string `json:"body"`
	Mood     string `json:"mood"`
	Archived bool   `json:"archived"`
}

// LongDateLayout is the en-US long form, e.g. "January 2, 2006".
const LongDateLayout = "January 2, 2006"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date is an entry date as written in the source document. The raw string
// is kept so values that do not parse still round-trip and render.
type Date struct {
	Raw  string
	Time time.Time
}

// ParseDate parses s with the accepted layouts. It never fails: an
// unparseable s yields a Date with a zero Time.
func ParseDate(s string) Date {
	d := Date{Raw: s}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			break
		}
	}
	return d
}

// NewDate returns a Date for a calendar day.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Raw: t.Format("2006-01-02"), Time: t}
}

// Valid reports whether the raw value parsed.
func (d Date) Valid() bool {
	return !d.Time.IsZero()
}

// Long renders the date as "January 2, 2006", or the raw value if it did
// not parse. The day is the one written in the source.
func (d Date) Long() string {
	if !d.Valid() {
		return d.Raw
	}
	return d.Time.Format(LongDateLayout)
}

func (d Date) String() string {
	return d.Raw
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Raw)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = ParseDate(s)
	return nil
}
