package routes

import (
	"habittracker/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/", controllers.Dashboard)
	r.POST("/add_habit", controllers.AddHabit)
	r.POST("/delete_habit", controllers.DeleteHabit)

	r.POST("/logs", controllers.CreateLog)
	r.DELETE("/logs/:id", controllers.DeleteLog)

	r.GET("/calendar/:year/:month", controllers.MonthSummary)
	r.GET("/day/:year/:month/:day", controllers.DayDetail)

	r.GET("/profile", controllers.ShowProfile)
	r.POST("/profile", controllers.UpdateProfile)
	r.DELETE("/profile/picture", controllers.DeleteProfilePicture)

	// Navigation stubs until their features land
	r.GET("/streaks", controllers.PlaceholderPage("Streaks"))
	r.GET("/graph", controllers.PlaceholderPage("Graph"))
	r.GET("/insights", controllers.PlaceholderPage("Insights"))
	r.GET("/settings", controllers.PlaceholderPage("Settings"))
	r.GET("/help", controllers.PlaceholderPage("Help"))
	r.GET("/calendar", controllers.PlaceholderPage("Calendar"))

	return r
}
