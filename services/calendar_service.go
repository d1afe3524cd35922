package services

import (
	"errors"
	"sort"
	"time"

	"habittracker/config"
	"habittracker/models"
)

var ErrInvalidDate = errors.New("invalid date")

// LogEntry is a check-in enriched with its habit's name for day views.
type LogEntry struct {
	ID        uint      `json:"id"`
	HabitID   uint      `json:"habit_id"`
	HabitName string    `json:"habit_name"`
	Timestamp time.Time `json:"timestamp"`
}

func validYearMonth(year, month int) bool {
	return year >= 1 && year <= 9999 && month >= 1 && month <= 12
}

func daysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthSummary returns the sorted, de-duplicated days of the month with at
// least one check-in, grouping log timestamps by UTC day. Databases that
// predate the timestamp column get an empty result, not an error.
func MonthSummary(year, month int) ([]int, error) {
	if !validYearMonth(year, month) {
		return nil, ErrInvalidDate
	}
	if !config.HasLogTimestamps(config.DB) {
		return []int{}, nil
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var logs []models.HabitLog
	if err := config.DB.
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	for _, entry := range logs {
		seen[entry.Timestamp.UTC().Day()] = true
	}
	days := make([]int, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Ints(days)
	return days, nil
}

// DayDetail returns the day's check-ins in ascending time order, each with
// its habit's name. Same schema fallback as MonthSummary.
func DayDetail(year, month, day int) ([]LogEntry, error) {
	if !validYearMonth(year, month) || day < 1 || day > daysInMonth(year, month) {
		return nil, ErrInvalidDate
	}
	if !config.HasLogTimestamps(config.DB) {
		return []LogEntry{}, nil
	}

	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	entries := []LogEntry{}
	err := config.DB.Model(&models.HabitLog{}).
		Select("habit_logs.id, habit_logs.habit_id, habits.name AS habit_name, habit_logs.timestamp").
		Joins("JOIN habits ON habits.id = habit_logs.habit_id").
		Where("habit_logs.timestamp >= ? AND habit_logs.timestamp < ?", start, end).
		Order("habit_logs.timestamp ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Timestamp = entries[i].Timestamp.UTC()
	}
	return entries, nil
}
