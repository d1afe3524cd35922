package controllers

import (
	"net/http"

	"habittracker/services"

	"github.com/gin-gonic/gin"
)

// Dashboard renders the habit list, newest first.
func Dashboard(c *gin.Context) {
	habits, err := services.ListHabits()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Habits": habits})
}

// PlaceholderPage serves the nav stubs (streaks, graph, insights, …) that
// don't have real features behind them yet.
func PlaceholderPage(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "page.html", gin.H{"Title": title})
	}
}
