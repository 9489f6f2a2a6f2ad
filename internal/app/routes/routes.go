package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deniz/studytrack/internal/app/controllers"
	"github.com/deniz/studytrack/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	sessionController *controllers.SessionController,
	goalController *controllers.GoalController,
	userController *controllers.UserController,
	analyticsController *controllers.AnalyticsController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
		courses.GET("/:id/progress", courseController.GetCourseProgress)

		// Sessions nested under their course
		courses.POST("/:id/sessions", sessionController.StartSession)
		courses.GET("/:id/sessions", sessionController.GetSessionsByCourse)
	}

	// Session routes
	sessions := v1.Group("/sessions")
	{
		sessions.GET("/:id", sessionController.GetSessionByID)
		sessions.PUT("/:id", sessionController.UpdateSessionNotes)
		sessions.POST("/:id/end", sessionController.EndSession)
	}

	// Goal routes
	goals := v1.Group("/goals")
	{
		goals.POST("", goalController.CreateGoal)
		goals.GET("", goalController.GetAllGoals)
		goals.GET("/:id", goalController.GetGoalByID)
		goals.PUT("/:id", goalController.UpdateGoal)
		goals.DELETE("/:id", goalController.DeleteGoal)
		goals.POST("/:id/complete", goalController.CompleteGoal)
	}

	// User routes
	users := v1.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)
		users.DELETE("/:id", userController.DeleteUser)
	}

	// Analytics routes (read only)
	analytics := v1.Group("/analytics")
	{
		analytics.GET("/stats", analyticsController.GetOverallStats)
		analytics.GET("/weekly", analyticsController.GetWeeklyProgress)
		analytics.GET("/difficulty", analyticsController.GetDifficultyDistribution)
		analytics.GET("/deadlines", analyticsController.GetGoalDeadlines)
		analytics.GET("/report", analyticsController.GenerateReport)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
