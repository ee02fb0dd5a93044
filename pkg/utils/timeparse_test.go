package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractLiteralTime(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
		ok   bool
	}{
		{"afternoon with positive offset", "2025-01-01T14:30:00+10:00", "2:30 PM", true},
		{"morning with negative offset", "2025-01-01T09:05:00-05:00", "9:05 AM", true},
		{"midnight", "2025-01-01T00:15:00+00:00", "12:15 AM", true},
		{"noon with zulu suffix", "2025-01-01T12:00:00Z", "12:00 PM", true},
		{"late evening", "2025-06-15T23:45:00+08:00", "11:45 PM", true},
		{"no time part", "2025-01-01", "", false},
		{"empty string", "", "", false},
		{"not a timestamp", "garbage", "", false},
		{"time part empty", "2025-01-01T", "", false},
		{"non-numeric time", "2025-01-01Tab:cd:ef", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractLiteralTime(tc.iso)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractLiteralTimeIgnoresOffset(t *testing.T) {
	// The same wall clock must come back regardless of the offset suffix
	for _, iso := range []string{
		"2025-01-01T06:00:00+00:00",
		"2025-01-01T06:00:00+10:00",
		"2025-01-01T06:00:00-07:00",
		"2025-01-01T06:00:00Z",
	} {
		got, ok := ExtractLiteralTime(iso)
		assert.True(t, ok, iso)
		assert.Equal(t, "6:00 AM", got, iso)
	}
}

func TestExtractLiteralDate(t *testing.T) {
	got, ok := ExtractLiteralDate("2025-03-07T10:00:00+10:00")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), got)

	got, ok = ExtractLiteralDate("2025-03-07")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), got)

	_, ok = ExtractLiteralDate("garbage")
	assert.False(t, ok)

	_, ok = ExtractLiteralDate("")
	assert.False(t, ok)
}

func TestArrivalDayOffset(t *testing.T) {
	tests := []struct {
		name string
		dep  string
		arr  string
		want int
	}{
		{"same literal day", "2025-01-01T08:00:00+10:00", "2025-01-01T22:00:00+10:00", 0},
		{"crosses midnight by the literal dates", "2025-01-01T22:00:00+04:00", "2025-01-02T06:00:00+00:00", 1},
		{"long haul two days", "2025-01-01T10:00:00+00:00", "2025-01-03T05:00:00+09:00", 2},
		{"arrival before departure clamps to zero", "2025-01-02T08:00:00+00:00", "2025-01-01T22:00:00+00:00", 0},
		{"unparseable departure", "garbage", "2025-01-02T06:00:00+00:00", 0},
		{"unparseable arrival", "2025-01-01T22:00:00+00:00", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ArrivalDayOffset(tc.dep, tc.arr))
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 5, 20, 18, 42, 13, 999, time.FixedZone("AEST", 10*3600))
	got := TruncateToDay(in)
	assert.Equal(t, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), got)
}
