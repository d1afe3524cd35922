package services

import (
	"errors"
	"strings"

	"habittracker/config"
	"habittracker/models"

	"gorm.io/gorm"
)

var (
	ErrEmptyHabitName   = errors.New("habit name is required")
	ErrHabitNameTooLong = errors.New("habit name must be 100 characters or fewer")
)

// CreateHabit trims the name and persists a new habit with a
// server-assigned creation time.
func CreateHabit(name string) (*models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyHabitName
	}
	if len(name) > 100 {
		return nil, ErrHabitNameTooLong
	}

	habit := models.Habit{Name: name}
	if err := config.DB.Create(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// DeleteHabit removes a habit and every log that belongs to it.
func DeleteHabit(id uint) error {
	var habit models.Habit
	if err := config.DB.First(&habit, id).Error; err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.HabitLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&habit).Error
	})
}

// ListHabits returns all habits newest-first for the dashboard.
func ListHabits() ([]models.Habit, error) {
	var habits []models.Habit
	err := config.DB.Order("created_at DESC").Find(&habits).Error
	return habits, err
}
