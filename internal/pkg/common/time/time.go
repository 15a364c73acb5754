package time

import (
	"encoding/json"
	"time"
)

// Time wraps stdlib time.Time to customize JSON marshaling.
// When zero, it marshals to an empty string ""; otherwise RFC3339.
type Time time.Time

// FromUnix converts a manager-side epoch timestamp. Zero means the event was
// never recorded and maps to the zero Time, which renders as "".
func FromUnix(sec int64) Time {
	if sec <= 0 {
		return Time{}
	}
	return Time(time.Unix(sec, 0))
}

// MarshalJSON renders zero time as "" and non-zero in RFC3339 format.
func (t Time) MarshalJSON() ([]byte, error) {
	if time.Time(t).IsZero() {
		return []byte(`""`), nil
	}

	return json.Marshal((time.Time)(t))
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}
