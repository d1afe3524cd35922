package controllers

import (
	"errors"
	"net/http"
	"strings"

	"habittracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddHabitInput struct {
	Name string `json:"name"`
}

// AddHabit accepts both JSON posts from the client script and plain form
// submissions from the dashboard.
func AddHabit(c *gin.Context) {
	var name string
	isJSON := strings.HasPrefix(c.ContentType(), "application/json")
	if isJSON {
		var input AddHabitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		name = input.Name
	} else {
		name = c.PostForm("name")
	}

	habit, err := services.CreateHabit(name)
	if err != nil {
		if errors.Is(err, services.ErrEmptyHabitName) || errors.Is(err, services.ErrHabitNameTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !isJSON {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":         habit.ID,
		"name":       habit.Name,
		"created_at": habit.CreatedAt.UTC(),
	})
}

func DeleteHabit(c *gin.Context) {
	var input struct {
		ID *uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := services.DeleteHabit(*input.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
