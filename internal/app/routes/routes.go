package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/controllers"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	feedbackController *controllers.FeedbackController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	})

	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		authProtected := auth.Group("")
		authProtected.Use(authMiddleware.JWTAuth())
		{
			authProtected.GET("/profile", authController.Profile)
		}
	}

	// --- Student routes ---
	feedback := api.Group("/feedback")
	feedback.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleStudent))
	{
		feedback.GET("/faculties", feedbackController.GetFaculties)
		feedback.GET("/status", feedbackController.GetStatus)
		feedback.GET("/my-feedbacks", feedbackController.GetMyFeedbacks)
		feedback.POST("/submit", feedbackController.Submit)
		feedback.PUT("/update/:id", feedbackController.Update)
		feedback.DELETE("/delete/:id", feedbackController.Delete)
	}

	// --- Admin routes ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/feedback", adminController.GetAllFeedback)
		admin.GET("/feedback/faculty/:faculty_id", adminController.GetFacultyFeedback)
		admin.GET("/statistics/faculty/:faculty_id", adminController.GetFacultyStatistics)
		admin.GET("/analytics/top-bottom-faculty", adminController.GetTopBottomFaculty)
		admin.GET("/analytics/rating-distribution", adminController.GetRatingDistribution)

		admin.GET("/faculties", adminController.GetFaculties)
		admin.POST("/faculties", adminController.CreateFaculty)
		admin.PUT("/faculties/:id", adminController.UpdateFaculty)
		admin.DELETE("/faculties/:id", adminController.DeleteFaculty)
	}
}
