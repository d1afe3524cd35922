package services

import (
	"errors"
	"time"

	"habittracker/config"
	"habittracker/models"
)

var (
	ErrBadTimestamp = errors.New("timestamp must be an ISO-8601 datetime")
	ErrBadMoodScore = errors.New("mood_score must be between 1 and 10")
)

// naiveLayouts cover ISO-8601 datetimes without a UTC offset; they are
// interpreted as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseLogTimestamp turns an optional ISO-8601 string into a UTC instant.
// Empty means "now". A value with an explicit offset is normalized to UTC;
// one without an offset is taken as already UTC.
func ParseLogTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}

// CreateLog records a check-in for an existing habit. The legacy date
// column is kept in sync with the timestamp's UTC date.
func CreateLog(habitID uint, timestamp time.Time, moodScore *int) (*models.HabitLog, *models.Habit, error) {
	if moodScore != nil && (*moodScore < 1 || *moodScore > 10) {
		return nil, nil, ErrBadMoodScore
	}

	var habit models.Habit
	if err := config.DB.First(&habit, habitID).Error; err != nil {
		return nil, nil, err
	}

	ts := timestamp.UTC()
	entry := models.HabitLog{
		HabitID:   habit.ID,
		Timestamp: ts,
		Date:      time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
		MoodScore: moodScore,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, nil, err
	}
	return &entry, &habit, nil
}

// DeleteLog removes a single check-in.
func DeleteLog(id uint) error {
	var entry models.HabitLog
	if err := config.DB.First(&entry, id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&entry).Error
}
