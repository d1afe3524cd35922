package models

import (
	"time"
)

// Habit is a named recurring activity the user tracks.
type Habit struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Logs      []HabitLog `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}

// HabitLog records one check-in event. Timestamp is the authoritative
// instant (stored in UTC); Date mirrors its UTC date for older readers
// that still query the legacy column.
type HabitLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HabitID   uint      `gorm:"index;not null" json:"habit_id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Date      time.Time `gorm:"not null" json:"date"`
	MoodScore *int      `json:"mood_score,omitempty"`
}
