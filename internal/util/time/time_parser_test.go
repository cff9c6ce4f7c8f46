package time_parser

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ParseTimestamp_WithNilInput_ReturnsError(t *testing.T) {
	_, err := ParseTimestamp(nil)

	assert.ErrorIs(t, err, ErrEmptyTimestamp)
}

func Test_ParseTimestamp_WithEmptyString_ReturnsError(t *testing.T) {
	_, err := ParseTimestamp("   ")

	assert.ErrorIs(t, err, ErrEmptyTimestamp)
}

func Test_ParseTimestamp_WithValidISOStrings_ParsesCorrectly(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "RFC3339 format",
			input:    "2023-12-25T15:30:45Z",
			expected: time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC),
		},
		{
			name:     "RFC3339 with timezone",
			input:    "2023-12-25T15:30:45+02:00",
			expected: time.Date(2023, 12, 25, 13, 30, 45, 0, time.UTC),
		},
		{
			name:     "RFC3339Nano format",
			input:    "2023-12-25T15:30:45.123456789Z",
			expected: time.Date(2023, 12, 25, 15, 30, 45, 123456789, time.UTC),
		},
		{
			name:     "ISO without timezone",
			input:    "2023-12-25T15:30:45",
			expected: time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC),
		},
		{
			name:     "space separated",
			input:    "2023-12-25 15:30:45",
			expected: time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2023-12-25",
			expected: time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimestamp(tt.input)

			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "expected %v, got %v", tt.expected, result)
			assert.Equal(t, time.UTC, result.Location())
		})
	}
}

func Test_ParseTimestamp_WithInvalidString_ReturnsError(t *testing.T) {
	for _, input := range []string{"tomorrow", "25/12/2023", "2023-13-45"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimestamp(input)

			assert.ErrorIs(t, err, ErrInvalidTimestamp)
		})
	}
}

func Test_ParseTimestamp_WithUnixTimestamps_ParsesCorrectly(t *testing.T) {
	expected := time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC)
	expectedMillis := time.Date(2023, 12, 25, 15, 30, 45, 123000000, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected time.Time
	}{
		{name: "seconds float64", input: float64(expected.Unix()), expected: expected},
		{name: "milliseconds float64", input: float64(expectedMillis.UnixMilli()), expected: expectedMillis},
		{name: "seconds int64", input: expected.Unix(), expected: expected},
		{name: "milliseconds int64", input: expectedMillis.UnixMilli(), expected: expectedMillis},
		{name: "seconds int", input: int(expected.Unix()), expected: expected},
		{name: "seconds json.Number", input: json.Number("1703518245"), expected: expected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimestamp(tt.input)

			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "expected %v, got %v", tt.expected, result)
		})
	}
}

func Test_ParseTimestamp_WithUnsupportedTypes_ReturnsError(t *testing.T) {
	for _, input := range []any{true, []string{"2023-12-25"}, map[string]any{"date": "2023-12-25"}} {
		_, err := ParseTimestamp(input)

		assert.ErrorIs(t, err, ErrUnsupportedTimestamp)
	}
}

func Test_ParseTimestamp_ThresholdBehavior_DistinguishesSecondsFromMilliseconds(t *testing.T) {
	lastSecond, err := ParseTimestamp(maxUnixSeconds)
	assert.NoError(t, err)
	assert.Equal(t, 9999, lastSecond.Year())

	atThreshold, err := ParseTimestamp(int64(1000000000000))
	assert.NoError(t, err)
	assert.Equal(t, int64(1000000000000), atThreshold.UnixMilli())

	_, err = ParseTimestamp(int64(999999999999))
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func Test_ParseTimestamp_WithOutOfRangeNumbers_ReturnsError(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{name: "huge float", input: 1e300},
		{name: "float past int64", input: 9.3e18},
		{name: "huge negative float", input: -1e25},
		{name: "NaN", input: math.NaN()},
		{name: "positive infinity", input: math.Inf(1)},
		{name: "max int64", input: int64(math.MaxInt64)},
		{name: "before year 1", input: minUnixSeconds - 1},
		{name: "milliseconds after year 9999", input: maxUnixSeconds*1000 + 1000},
		{name: "huge json.Number", input: json.Number("1e300")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestamp(tt.input)

			assert.ErrorIs(t, err, ErrInvalidTimestamp)
		})
	}
}

func Test_ParseTimestamp_WithNegativeSeconds_ParsesDateBeforeEpoch(t *testing.T) {
	result, err := ParseTimestamp(float64(-86400))

	assert.NoError(t, err)
	assert.True(t, time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC).Equal(result))
}
