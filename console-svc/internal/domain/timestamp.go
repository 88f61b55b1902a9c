package domain

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp decodes the order dates the ordering API emits, with or without
// a zone suffix. A date without a zone is the server's wall clock and is
// shown as is.
type Timestamp struct {
	time.Time
	Zoneless bool
}

const zonelessLayout = "2006-01-02T15:04:05.999999999"

var zonelessLayouts = []string{
	zonelessLayout,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func ParseTimestamp(value string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return Timestamp{Time: t}, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t, Zoneless: true}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// Display returns the time to render in loc. Zoneless dates keep their wall
// clock.
func (t Timestamp) Display(loc *time.Location) time.Time {
	if t.Zoneless || loc == nil {
		return t.Time
	}
	return t.Time.In(loc)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if t.Zoneless {
		return []byte(`"` + t.Time.Format(zonelessLayout) + `"`), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}
