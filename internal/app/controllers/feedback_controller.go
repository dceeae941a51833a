package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models/dto"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/services"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/middleware"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
)

// FeedbackController handles the student-facing feedback endpoints
type FeedbackController struct {
	feedbackService services.FeedbackService
	facultyService  services.FacultyService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService, facultyService services.FacultyService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		facultyService:  facultyService,
	}
}

func facultyResponse(faculty *models.Faculty) dto.FacultyResponse {
	return dto.FacultyResponse{
		ID:         faculty.ID,
		Name:       faculty.Name,
		Department: faculty.Department,
		Email:      faculty.Email,
	}
}

func anonymousFeedbackResponses(feedbacks []*models.AnonymousFeedback) []dto.AnonymousFeedbackResponse {
	out := make([]dto.AnonymousFeedbackResponse, 0, len(feedbacks))
	for _, fb := range feedbacks {
		out = append(out, dto.AnonymousFeedbackResponse{
			ID:          fb.ID,
			FacultyID:   fb.FacultyID,
			FacultyName: fb.FacultyName,
			Department:  fb.Department,
			Rating:      fb.Rating,
			Comments:    fb.Comments,
			CreatedAt:   fb.CreatedAt,
		})
	}
	return out
}

// GetFaculties lists every faculty, alphabetically
func (c *FeedbackController) GetFaculties(ctx *gin.Context) {
	faculties, err := c.facultyService.GetAllFaculties(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := make([]dto.FacultyResponse, 0, len(faculties))
	for _, f := range faculties {
		list = append(list, facultyResponse(f))
	}

	ctx.JSON(http.StatusOK, dto.FacultyListResponse{
		Success:   true,
		Faculties: list,
	})
}

// GetStatus reports, per faculty, whether the student already submitted
func (c *FeedbackController) GetStatus(ctx *gin.Context) {
	status, err := c.feedbackService.StatusForStudent(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]dto.FacultyStatusResponse, 0, len(status))
	for _, s := range status {
		rows = append(rows, dto.FacultyStatusResponse{
			ID:           s.FacultyID,
			Name:         s.FacultyName,
			Department:   s.Department,
			HasFeedback:  s.HasFeedback,
			FeedbackID:   s.FeedbackID,
			Rating:       s.Rating,
			FeedbackDate: s.FeedbackDate,
		})
	}

	ctx.JSON(http.StatusOK, dto.StatusListResponse{
		Success: true,
		Status:  rows,
	})
}

// GetMyFeedbacks lists the student's own submissions, newest first
func (c *FeedbackController) GetMyFeedbacks(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.ListForStudent(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]dto.StudentSubmissionResponse, 0, len(feedbacks))
	for _, fb := range feedbacks {
		rows = append(rows, dto.StudentSubmissionResponse{
			ID:          fb.ID,
			FacultyID:   fb.FacultyID,
			FacultyName: fb.FacultyName,
			Rating:      fb.Rating,
			CreatedAt:   fb.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, dto.MyFeedbacksResponse{
		Success:   true,
		Feedbacks: rows,
	})
}

// Submit records one feedback for a faculty. A second submission for the
// same faculty is rejected with a conflict.
func (c *FeedbackController) Submit(ctx *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	id, err := c.feedbackService.Submit(ctx.Request.Context(), middleware.UserID(ctx), req.FacultyID, req.Rating, req.Comments)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubmitFeedbackResponse{
		Success:    true,
		Message:    "Feedback submitted successfully",
		FeedbackID: id,
	})
}

// Update changes the rating and comments of the student's own feedback
func (c *FeedbackController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrFeedbackNotFound)
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	if err := c.feedbackService.Update(ctx.Request.Context(), id, middleware.UserID(ctx), req.Rating, req.Comments); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Feedback updated successfully"))
}

// Delete removes the student's own feedback
func (c *FeedbackController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrFeedbackNotFound)
		return
	}

	if err := c.feedbackService.Delete(ctx.Request.Context(), id, middleware.UserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Feedback deleted successfully"))
}
