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

// AdminController handles the admin-facing feedback, analytics and
// faculty management endpoints. Every feedback row it returns is
// anonymized; no response body ever identifies the submitting student.
type AdminController struct {
	feedbackService  services.FeedbackService
	analyticsService services.AnalyticsService
	facultyService   services.FacultyService
}

// NewAdminController creates a new AdminController
func NewAdminController(
	feedbackService services.FeedbackService,
	analyticsService services.AnalyticsService,
	facultyService services.FacultyService,
) *AdminController {
	return &AdminController{
		feedbackService:  feedbackService,
		analyticsService: analyticsService,
		facultyService:   facultyService,
	}
}

func parseFacultyID(ctx *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrFacultyNotFound)
		return 0, false
	}
	return id, true
}

// GetAllFeedback lists every feedback in the system, anonymized and
// newest first
func (c *AdminController) GetAllFeedback(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.ListAnonymized(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminFeedbackListResponse{
		Success:   true,
		Feedbacks: anonymousFeedbackResponses(feedbacks),
	})
}

// GetFacultyFeedback lists one faculty's feedback, anonymized
func (c *AdminController) GetFacultyFeedback(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx, "faculty_id")
	if !ok {
		return
	}

	faculty, feedbacks, err := c.feedbackService.ListForFaculty(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FacultyFeedbackListResponse{
		Success:   true,
		Faculty:   facultyResponse(faculty),
		Feedbacks: anonymousFeedbackResponses(feedbacks),
	})
}

// GetFacultyStatistics reports aggregates for one faculty. A faculty
// without feedback reports all zeroes.
func (c *AdminController) GetFacultyStatistics(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx, "faculty_id")
	if !ok {
		return
	}

	faculty, stats, err := c.analyticsService.StatisticsForFaculty(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatisticsResponse{
		Success: true,
		Faculty: dto.FacultySummary{
			ID:         faculty.ID,
			Name:       faculty.Name,
			Department: faculty.Department,
		},
		Statistics: dto.StatisticsData{
			TotalFeedbacks: stats.TotalFeedbacks,
			AverageRating:  stats.AverageRating,
			MinRating:      stats.MinRating,
			MaxRating:      stats.MaxRating,
		},
	})
}

// GetTopBottomFaculty ranks faculties by average rating and returns the
// best and worst three
func (c *AdminController) GetTopBottomFaculty(ctx *gin.Context) {
	top, bottom, err := c.analyticsService.TopBottomFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	toResponses := func(ratings []*models.FacultyRating) []dto.FacultyRatingResponse {
		out := make([]dto.FacultyRatingResponse, 0, len(ratings))
		for _, r := range ratings {
			out = append(out, dto.FacultyRatingResponse{
				FacultyID:      r.FacultyID,
				FacultyName:    r.FacultyName,
				Department:     r.Department,
				AverageRating:  r.AverageRating,
				TotalFeedbacks: r.TotalFeedbacks,
			})
		}
		return out
	}

	ctx.JSON(http.StatusOK, dto.TopBottomResponse{
		Success: true,
		Top:     toResponses(top),
		Bottom:  toResponses(bottom),
	})
}

// GetRatingDistribution reports the system-wide count per rating value
func (c *AdminController) GetRatingDistribution(ctx *gin.Context) {
	distribution, err := c.analyticsService.RatingDistribution(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DistributionResponse{
		Success:      true,
		Distribution: distribution,
	})
}

// GetFaculties lists every faculty for the management screen
func (c *AdminController) GetFaculties(ctx *gin.Context) {
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

// CreateFaculty adds a new faculty
func (c *AdminController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	faculty := &models.Faculty{
		Name:       req.Name,
		Department: req.Department,
		Email:      req.Email,
	}

	id, err := c.facultyService.CreateFaculty(ctx.Request.Context(), faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateFacultyResponse{
		Success:   true,
		Message:   "Faculty created successfully",
		FacultyID: id,
	})
}

// UpdateFaculty changes a faculty's details
func (c *AdminController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	faculty := &models.Faculty{
		ID:         id,
		Name:       req.Name,
		Department: req.Department,
		Email:      req.Email,
	}

	if err := c.facultyService.UpdateFaculty(ctx.Request.Context(), faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty updated successfully"))
}

// DeleteFaculty removes a faculty and, through the schema, its feedback
func (c *AdminController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty deleted successfully"))
}
