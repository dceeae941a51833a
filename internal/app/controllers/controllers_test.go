package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models/dto"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
)

// Stub services with overridable funcs. A zero stub fails loudly if an
// unexpected method is hit.

type stubAuthService struct {
	registerFn func(*dto.RegisterRequest) (string, *models.User, error)
	loginFn    func(*dto.LoginRequest) (string, *models.User, error)
	profileFn  func(int64) (*models.User, error)
}

func (s *stubAuthService) Register(_ context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	return s.registerFn(req)
}

func (s *stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	return s.loginFn(req)
}

func (s *stubAuthService) Profile(_ context.Context, userID int64) (*models.User, error) {
	return s.profileFn(userID)
}

type stubFeedbackService struct {
	submitFn         func(studentID, facultyID int64, rating int, comments string) (int64, error)
	updateFn         func(feedbackID, studentID int64, rating int, comments string) error
	deleteFn         func(feedbackID, studentID int64) error
	listForStudentFn func(int64) ([]*models.StudentSubmission, error)
	statusFn         func(int64) ([]*models.FacultyFeedbackStatus, error)
	listAnonymizedFn func() ([]*models.AnonymousFeedback, error)
	listForFacultyFn func(int64) (*models.Faculty, []*models.AnonymousFeedback, error)
}

func (s *stubFeedbackService) Submit(_ context.Context, studentID, facultyID int64, rating int, comments string) (int64, error) {
	return s.submitFn(studentID, facultyID, rating, comments)
}

func (s *stubFeedbackService) Update(_ context.Context, feedbackID, studentID int64, rating int, comments string) error {
	return s.updateFn(feedbackID, studentID, rating, comments)
}

func (s *stubFeedbackService) Delete(_ context.Context, feedbackID, studentID int64) error {
	return s.deleteFn(feedbackID, studentID)
}

func (s *stubFeedbackService) ListForStudent(_ context.Context, studentID int64) ([]*models.StudentSubmission, error) {
	return s.listForStudentFn(studentID)
}

func (s *stubFeedbackService) StatusForStudent(_ context.Context, studentID int64) ([]*models.FacultyFeedbackStatus, error) {
	return s.statusFn(studentID)
}

func (s *stubFeedbackService) ListAnonymized(_ context.Context) ([]*models.AnonymousFeedback, error) {
	return s.listAnonymizedFn()
}

func (s *stubFeedbackService) ListForFaculty(_ context.Context, facultyID int64) (*models.Faculty, []*models.AnonymousFeedback, error) {
	return s.listForFacultyFn(facultyID)
}

type stubAnalyticsService struct {
	statisticsFn   func(int64) (*models.Faculty, *models.FacultyStatistics, error)
	topBottomFn    func() ([]*models.FacultyRating, []*models.FacultyRating, error)
	distributionFn func() (map[int]int, error)
}

func (s *stubAnalyticsService) StatisticsForFaculty(_ context.Context, facultyID int64) (*models.Faculty, *models.FacultyStatistics, error) {
	return s.statisticsFn(facultyID)
}

func (s *stubAnalyticsService) TopBottomFaculty(_ context.Context) ([]*models.FacultyRating, []*models.FacultyRating, error) {
	return s.topBottomFn()
}

func (s *stubAnalyticsService) RatingDistribution(_ context.Context) (map[int]int, error) {
	return s.distributionFn()
}

type stubFacultyService struct {
	createFn func(*models.Faculty) (int64, error)
	getFn    func(int64) (*models.Faculty, error)
	getAllFn func() ([]*models.Faculty, error)
	updateFn func(*models.Faculty) error
	deleteFn func(int64) error
}

func (s *stubFacultyService) CreateFaculty(_ context.Context, faculty *models.Faculty) (int64, error) {
	return s.createFn(faculty)
}

func (s *stubFacultyService) GetFacultyByID(_ context.Context, id int64) (*models.Faculty, error) {
	return s.getFn(id)
}

func (s *stubFacultyService) GetAllFaculties(_ context.Context) ([]*models.Faculty, error) {
	return s.getAllFn()
}

func (s *stubFacultyService) UpdateFaculty(_ context.Context, faculty *models.Faculty) error {
	return s.updateFn(faculty)
}

func (s *stubFacultyService) DeleteFaculty(_ context.Context, id int64) error {
	return s.deleteFn(id)
}

// asStudent simulates the auth middleware having already run
func asStudent(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", "student")
	}
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitFeedbackWireShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	feedback := &stubFeedbackService{
		submitFn: func(studentID, facultyID int64, rating int, comments string) (int64, error) {
			assert.Equal(t, int64(7), studentID)
			assert.Equal(t, int64(3), facultyID)
			assert.Equal(t, 5, rating)
			assert.Equal(t, "great course", comments)
			return 42, nil
		},
	}
	ctrl := NewFeedbackController(feedback, &stubFacultyService{})

	router := gin.New()
	router.POST("/submit", asStudent(7), ctrl.Submit)

	w := serve(router, http.MethodPost, "/submit", `{"faculty_id":3,"rating":5,"comments":"great course"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Feedback submitted successfully","feedback_id":42}`, w.Body.String())
}

func TestSubmitDuplicateFeedback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	feedback := &stubFeedbackService{
		submitFn: func(int64, int64, int, string) (int64, error) {
			return 0, apperrors.ErrDuplicateFeedback
		},
	}
	ctrl := NewFeedbackController(feedback, &stubFacultyService{})

	router := gin.New()
	router.POST("/submit", asStudent(7), ctrl.Submit)

	w := serve(router, http.MethodPost, "/submit", `{"faculty_id":3,"rating":5}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"You have already submitted feedback for this faculty"}`, w.Body.String())
}

func TestUpdateFeedbackUnparsableID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := NewFeedbackController(&stubFeedbackService{}, &stubFacultyService{})
	router := gin.New()
	router.PUT("/update/:id", asStudent(7), ctrl.Update)

	// A garbage id is treated like a missing row, not a bad request
	w := serve(router, http.MethodPut, "/update/abc", `{"rating":4}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Feedback not found"}`, w.Body.String())
}

func TestAdminFeedbackListIsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feedback := &stubFeedbackService{
		listAnonymizedFn: func() ([]*models.AnonymousFeedback, error) {
			return []*models.AnonymousFeedback{{
				ID:          9,
				FacultyID:   3,
				FacultyName: "Dr. Smith",
				Department:  "Physics",
				Rating:      4,
				Comments:    "solid lectures",
				CreatedAt:   created,
			}}, nil
		},
	}
	ctrl := NewAdminController(feedback, &stubAnalyticsService{}, &stubFacultyService{})

	router := gin.New()
	router.GET("/feedback", ctrl.GetAllFeedback)

	w := serve(router, http.MethodGet, "/feedback", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "user_id")
	assert.JSONEq(t, `{
		"success": true,
		"feedbacks": [{
			"id": 9,
			"faculty_id": 3,
			"faculty_name": "Dr. Smith",
			"department": "Physics",
			"rating": 4,
			"comments": "solid lectures",
			"created_at": "2026-03-01T12:00:00Z"
		}]
	}`, body)
}

func TestFacultyStatisticsWireShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	analytics := &stubAnalyticsService{
		statisticsFn: func(facultyID int64) (*models.Faculty, *models.FacultyStatistics, error) {
			require.Equal(t, int64(3), facultyID)
			return &models.Faculty{ID: 3, Name: "Dr. Smith", Department: "Physics", Email: "smith@example.edu"},
				&models.FacultyStatistics{TotalFeedbacks: 2, AverageRating: 4.5, MinRating: 4, MaxRating: 5}, nil
		},
	}
	ctrl := NewAdminController(&stubFeedbackService{}, analytics, &stubFacultyService{})

	router := gin.New()
	router.GET("/statistics/faculty/:faculty_id", ctrl.GetFacultyStatistics)

	w := serve(router, http.MethodGet, "/statistics/faculty/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"faculty": {"id": 3, "name": "Dr. Smith", "department": "Physics"},
		"statistics": {"total_feedbacks": 2, "average_rating": 4.5, "min_rating": 4, "max_rating": 5}
	}`, w.Body.String())
}

func TestFacultyStatisticsUnparsableID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := NewAdminController(&stubFeedbackService{}, &stubAnalyticsService{}, &stubFacultyService{})
	router := gin.New()
	router.GET("/statistics/faculty/:faculty_id", ctrl.GetFacultyStatistics)

	w := serve(router, http.MethodGet, "/statistics/faculty/oops", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Faculty not found"}`, w.Body.String())
}

func TestRatingDistributionWireShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	analytics := &stubAnalyticsService{
		distributionFn: func() (map[int]int, error) {
			return map[int]int{1: 0, 2: 1, 3: 0, 4: 2, 5: 3}, nil
		},
	}
	ctrl := NewAdminController(&stubFeedbackService{}, analytics, &stubFacultyService{})

	router := gin.New()
	router.GET("/analytics/rating-distribution", ctrl.GetRatingDistribution)

	w := serve(router, http.MethodGet, "/analytics/rating-distribution", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"distribution":{"1":0,"2":1,"3":0,"4":2,"5":3}}`, w.Body.String())
}

func TestCreateFaculty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	faculty := &stubFacultyService{
		createFn: func(f *models.Faculty) (int64, error) {
			assert.Equal(t, "Dr. New", f.Name)
			return 11, nil
		},
	}
	ctrl := NewAdminController(&stubFeedbackService{}, &stubAnalyticsService{}, faculty)

	router := gin.New()
	router.POST("/faculties", ctrl.CreateFaculty)

	w := serve(router, http.MethodPost, "/faculties", `{"name":"Dr. New","department":"Math","email":"new@example.edu"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Faculty created successfully","faculty_id":11}`, w.Body.String())
}

func TestRegisterWireShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := &stubAuthService{
		registerFn: func(req *dto.RegisterRequest) (string, *models.User, error) {
			return "signed.jwt.token", &models.User{
				ID:              7,
				Email:           req.Email,
				Password:        "never-serialized",
				InstitutionalID: req.InstitutionalID,
				Name:            req.Name,
				Role:            models.RoleStudent,
			}, nil
		},
	}
	ctrl := NewAuthController(auth)

	router := gin.New()
	router.POST("/register", ctrl.Register)

	w := serve(router, http.MethodPost, "/register",
		`{"email":"sam@example.edu","password":"secret1","institutional_id":"S2024001","name":"Sam Student"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "never-serialized")
	assert.JSONEq(t, `{
		"success": true,
		"message": "Registration successful",
		"token": "signed.jwt.token",
		"user": {
			"id": 7,
			"email": "sam@example.edu",
			"institutional_id": "S2024001",
			"name": "Sam Student",
			"role": "student"
		}
	}`, w.Body.String())
}

func TestStatusWireShapeKeepsNullFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	feedback := &stubFeedbackService{
		statusFn: func(int64) ([]*models.FacultyFeedbackStatus, error) {
			return []*models.FacultyFeedbackStatus{{
				FacultyID:   3,
				FacultyName: "Dr. Smith",
				Department:  "Physics",
			}}, nil
		},
	}
	ctrl := NewFeedbackController(feedback, &stubFacultyService{})

	router := gin.New()
	router.GET("/status", asStudent(7), ctrl.GetStatus)

	w := serve(router, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	// Unrated faculties keep explicit nulls rather than dropping the keys
	assert.JSONEq(t, `{
		"success": true,
		"status": [{
			"id": 3,
			"name": "Dr. Smith",
			"department": "Physics",
			"has_feedback": false,
			"feedback_id": null,
			"rating": null,
			"feedback_date": null
		}]
	}`, w.Body.String())
}
