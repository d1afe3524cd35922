package services

import (
	"testing"
	"time"

	"habittracker/config"
	"habittracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHabitWithLogs(t *testing.T, name string, timestamps ...time.Time) *models.Habit {
	t.Helper()
	habit, err := CreateHabit(name)
	require.NoError(t, err)
	for _, ts := range timestamps {
		_, _, err := CreateLog(habit.ID, ts, nil)
		require.NoError(t, err)
	}
	return habit
}

func TestMonthSummaryValidation(t *testing.T) {
	setupTestDB(t)

	cases := []struct{ year, month int }{
		{2026, 0}, {2026, 13}, {0, 5}, {10000, 5}, {-1, 1},
	}
	for _, tc := range cases {
		_, err := MonthSummary(tc.year, tc.month)
		assert.ErrorIs(t, err, ErrInvalidDate, "year=%d month=%d", tc.year, tc.month)
	}
}

func TestMonthSummaryGroupsByUTCDay(t *testing.T) {
	setupTestDB(t)

	seedHabitWithLogs(t, "Gym",
		time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 21, 15, 30, 0, 0, time.UTC),
		time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC), // outside January
	)

	days, err := MonthSummary(2026, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 21}, days)
}

func TestMonthSummaryNormalizesOffsetsToUTC(t *testing.T) {
	setupTestDB(t)

	ts, err := ParseLogTimestamp("2026-03-05T08:30:00+05:30")
	require.NoError(t, err)
	seedHabitWithLogs(t, "Gym", ts)

	days, err := MonthSummary(2026, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, days)
}

func TestMonthSummaryEmptyMonth(t *testing.T) {
	setupTestDB(t)

	days, err := MonthSummary(2026, 6)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestMonthSummaryRespectsMonthBoundaries(t *testing.T) {
	setupTestDB(t)

	seedHabitWithLogs(t, "Gym",
		time.Date(2028, 2, 29, 23, 59, 59, 0, time.UTC), // leap day
		time.Date(2028, 3, 1, 0, 0, 0, 0, time.UTC),
	)

	days, err := MonthSummary(2028, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{29}, days)

	days, err = MonthSummary(2028, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, days)
}

func TestDayDetailValidation(t *testing.T) {
	setupTestDB(t)

	cases := []struct{ year, month, day int }{
		{2026, 1, 0}, {2026, 1, 32}, {2026, 2, 29}, {2026, 4, 31}, {2026, 13, 1},
	}
	for _, tc := range cases {
		_, err := DayDetail(tc.year, tc.month, tc.day)
		assert.ErrorIs(t, err, ErrInvalidDate, "%d-%d-%d", tc.year, tc.month, tc.day)
	}

	// leap day is a real date in 2028
	_, err := DayDetail(2028, 2, 29)
	assert.NoError(t, err)
}

func TestDayDetailOrderedWithHabitNames(t *testing.T) {
	setupTestDB(t)

	gym := seedHabitWithLogs(t, "Gym", time.Date(2026, 1, 21, 15, 30, 0, 0, time.UTC))
	read := seedHabitWithLogs(t, "Read", time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC))

	logs, err := DayDetail(2026, 1, 21)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, read.ID, logs[0].HabitID)
	assert.Equal(t, "Read", logs[0].HabitName)
	assert.Equal(t, gym.ID, logs[1].HabitID)
	assert.Equal(t, "Gym", logs[1].HabitName)
	assert.True(t, logs[0].Timestamp.Before(logs[1].Timestamp))
}

func TestDayDetailHalfOpenInterval(t *testing.T) {
	setupTestDB(t)

	seedHabitWithLogs(t, "Gym",
		time.Date(2026, 1, 4, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
	)

	logs, err := DayDetail(2026, 1, 5)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), logs[0].Timestamp)
}

func TestCalendarDegradesWithoutTimestampColumn(t *testing.T) {
	setupTestDB(t)

	seedHabitWithLogs(t, "Gym", time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC))
	require.NoError(t, config.DB.Migrator().DropColumn(&models.HabitLog{}, "Timestamp"))

	days, err := MonthSummary(2026, 1)
	require.NoError(t, err)
	assert.Empty(t, days)

	logs, err := DayDetail(2026, 1, 21)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
