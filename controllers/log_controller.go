package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"habittracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateLogInput struct {
	HabitID   *uint  `json:"habit_id"`
	Timestamp string `json:"timestamp"`
	MoodScore *int   `json:"mood_score"`
}

func CreateLog(c *gin.Context) {
	var input CreateLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.HabitID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "habit_id is required"})
		return
	}

	timestamp, err := services.ParseLogTimestamp(input.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, habit, err := services.CreateLog(*input.HabitID, timestamp, input.MoodScore)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		case errors.Is(err, services.ErrBadMoodScore):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         entry.ID,
		"habit_id":   habit.ID,
		"habit_name": habit.Name,
		"timestamp":  entry.Timestamp.UTC(),
	})
}

func DeleteLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
		return
	}

	if err := services.DeleteLog(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
