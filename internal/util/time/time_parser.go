package time_parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrEmptyTimestamp       = errors.New("timestamp is empty")
	ErrUnsupportedTimestamp = errors.New("unsupported timestamp type")
	ErrInvalidTimestamp     = errors.New("invalid timestamp format")
)

// Timestamps above this are unix milliseconds, below it unix seconds
const millisecondsThreshold = 1e12

// Numeric timestamps must land in years 1 to 9999
var (
	minUnixSeconds = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxUnixSeconds = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

var layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp converts a decoded JSON value to a UTC time.
// Supported formats:
//   - ISO strings: RFC3339, RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"
//   - Unix timestamps: seconds (< 1e12) or milliseconds (>= 1e12) as int, int64, float64 or json.Number
//
// Numeric input outside years 1 to 9999 is rejected with ErrInvalidTimestamp.
// Nil, empty and unknown input is an error, a date is never defaulted to now.
func ParseTimestamp(timestamp any) (time.Time, error) {
	switch v := timestamp.(type) {
	case nil:
		return time.Time{}, ErrEmptyTimestamp

	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return time.Time{}, ErrEmptyTimestamp
		}

		for _, layout := range layouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC(), nil
			}
		}

		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, v)

	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, v)
		}
		if v >= millisecondsThreshold {
			if v > float64(maxUnixSeconds)*1000 {
				return time.Time{}, fmt.Errorf("%w: %v out of range", ErrInvalidTimestamp, v)
			}
			return time.UnixMilli(int64(v)).UTC(), nil
		}
		if v < float64(minUnixSeconds) || v > float64(maxUnixSeconds) {
			return time.Time{}, fmt.Errorf("%w: %v out of range", ErrInvalidTimestamp, v)
		}
		return time.Unix(int64(v), 0).UTC(), nil

	case int64:
		if v >= millisecondsThreshold {
			if v > maxUnixSeconds*1000 {
				return time.Time{}, fmt.Errorf("%w: %d out of range", ErrInvalidTimestamp, v)
			}
			return time.UnixMilli(v).UTC(), nil
		}
		if v < minUnixSeconds || v > maxUnixSeconds {
			return time.Time{}, fmt.Errorf("%w: %d out of range", ErrInvalidTimestamp, v)
		}
		return time.Unix(v, 0).UTC(), nil

	case int:
		return ParseTimestamp(int64(v))

	case json.Number:
		if i, err := v.Int64(); err == nil {
			return ParseTimestamp(i)
		}
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimestamp, v)
		}
		return ParseTimestamp(f)

	default:
		return time.Time{}, fmt.Errorf("%w: %T", ErrUnsupportedTimestamp, timestamp)
	}
}
