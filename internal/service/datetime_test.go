package service_test

import (
	"testing"
	"time"

	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDatetime(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		raw      string
		loc      *time.Location
		expected *time.Time
	}{
		{name: "empty", raw: "", loc: time.UTC},
		{name: "blank", raw: "   ", loc: time.UTC},
		{name: "utc", raw: "2030-01-02T15:04:05Z", loc: newYork, expected: ptrTime(time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC))},
		{name: "offset", raw: "2030-01-02T15:04:05+02:00", loc: newYork, expected: ptrTime(time.Date(2030, 1, 2, 13, 4, 5, 0, time.UTC))},
		{name: "fractional seconds dropped", raw: "2030-01-02T15:04:05.987Z", loc: time.UTC, expected: ptrTime(time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC))},
		{name: "zone-less uses default zone", raw: "2030-01-02T15:04:05", loc: newYork, expected: ptrTime(time.Date(2030, 1, 2, 20, 4, 5, 0, time.UTC))},
		{name: "datetime-local input", raw: "2030-07-02T09:30", loc: newYork, expected: ptrTime(time.Date(2030, 7, 2, 13, 30, 0, 0, time.UTC))},
		{name: "space separated", raw: "2030-01-02 15:04", loc: time.UTC, expected: ptrTime(time.Date(2030, 1, 2, 15, 4, 0, 0, time.UTC))},
		{name: "date only", raw: "2030-01-02", loc: nil, expected: ptrTime(time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := service.NormalizeDatetime(tc.raw, tc.loc)
			require.NoError(t, err)
			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.expected.Equal(*got), "expected %s, got %s", tc.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNormalizeDatetime_Invalid(t *testing.T) {
	for _, raw := range []string{"tomorrow", "2030-13-01", "02/01/2030 15:04"} {
		_, err := service.NormalizeDatetime(raw, time.UTC)
		assert.True(t, apperrors.IsValidation(err), raw)
	}
}

func TestFormatDatetime(t *testing.T) {
	assert.Nil(t, service.FormatDatetime(nil))

	athens, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	local := time.Date(2030, 1, 2, 17, 4, 5, 0, athens)
	assert.Equal(t, "2030-01-02T15:04:05Z", *service.FormatDatetime(&local))
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
