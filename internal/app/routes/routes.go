package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kasule/studentledger/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	api.POST("/login", authController.Login)

	// --- Student routes ---
	students := api.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.CreateStudent)
		students.POST("/setup", authController.Setup)
		students.PATCH("/:id/pay", studentController.RecordPayment)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
