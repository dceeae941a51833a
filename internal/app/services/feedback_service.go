package services

import (
	"context"
	"fmt"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/validation"
)

// FeedbackRepository defines the feedback persistence operations the
// service needs. The pgx implementation lives in the repositories package;
// tests substitute an in-memory double.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) (int64, error)
	Update(ctx context.Context, id, userID int64, rating int, comments string) error
	Delete(ctx context.Context, id, userID int64) error
	GetByUser(ctx context.Context, userID int64) ([]*models.StudentSubmission, error)
	GetStatusForAllFaculties(ctx context.Context, userID int64) ([]*models.FacultyFeedbackStatus, error)
	GetAllAnonymized(ctx context.Context) ([]*models.AnonymousFeedback, error)
	GetByFaculty(ctx context.Context, facultyID int64) ([]*models.AnonymousFeedback, error)
}

// FacultyReader is the read-only faculty access the feedback and analytics
// services need.
type FacultyReader interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
}

// FeedbackService defines the interface for the feedback ledger: it owns
// create/update/delete of a student's own feedback and the anonymized read
// paths.
type FeedbackService interface {
	Submit(ctx context.Context, studentID, facultyID int64, rating int, comments string) (int64, error)
	Update(ctx context.Context, feedbackID, studentID int64, rating int, comments string) error
	Delete(ctx context.Context, feedbackID, studentID int64) error
	ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentSubmission, error)
	StatusForStudent(ctx context.Context, studentID int64) ([]*models.FacultyFeedbackStatus, error)
	ListAnonymized(ctx context.Context) ([]*models.AnonymousFeedback, error)
	ListForFaculty(ctx context.Context, facultyID int64) (*models.Faculty, []*models.AnonymousFeedback, error)
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedbackRepo FeedbackRepository
	facultyRepo  FacultyReader
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo FeedbackRepository, facultyRepo FacultyReader) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		facultyRepo:  facultyRepo,
	}
}

// validateRating checks the rating scale shared by submit and update
func validateRating(rating int) error {
	if !validation.RatingInRange(rating) {
		return apperrors.NewValidationError("Rating must be between 1 and 5")
	}
	return nil
}

// Submit records a new feedback row for the student. The duplicate check
// relies on the storage-level unique constraint so two concurrent submits
// for the same pair cannot both pass.
func (s *feedbackServiceImpl) Submit(ctx context.Context, studentID, facultyID int64, rating int, comments string) (int64, error) {
	if facultyID == 0 || rating == 0 {
		return 0, apperrors.NewValidationError("Faculty ID and rating are required")
	}
	if err := validateRating(rating); err != nil {
		return 0, err
	}
	if !validation.CommentsWithinLimit(comments) {
		return 0, apperrors.NewValidationError("Comments cannot exceed 1000 characters")
	}

	if _, err := s.facultyRepo.GetByID(ctx, facultyID); err != nil {
		return 0, err
	}

	feedback := &models.Feedback{
		UserID:    studentID,
		FacultyID: facultyID,
		Rating:    rating,
		Comments:  comments,
	}

	id, err := s.feedbackRepo.Create(ctx, feedback)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update changes rating and comments of the student's own feedback.
// A non-owner gets the same not-found outcome as a nonexistent id.
func (s *feedbackServiceImpl) Update(ctx context.Context, feedbackID, studentID int64, rating int, comments string) error {
	if rating == 0 {
		return apperrors.NewValidationError("Rating is required")
	}
	if err := validateRating(rating); err != nil {
		return err
	}
	if !validation.CommentsWithinLimit(comments) {
		return apperrors.NewValidationError("Comments cannot exceed 1000 characters")
	}

	return s.feedbackRepo.Update(ctx, feedbackID, studentID, rating, comments)
}

// Delete removes the student's own feedback
func (s *feedbackServiceImpl) Delete(ctx context.Context, feedbackID, studentID int64) error {
	return s.feedbackRepo.Delete(ctx, feedbackID, studentID)
}

// ListForStudent returns the student's own submissions, newest first
func (s *feedbackServiceImpl) ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentSubmission, error) {
	submissions, err := s.feedbackRepo.GetByUser(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving submissions: %w", err)
	}
	return submissions, nil
}

// StatusForStudent returns the submission state for every faculty,
// each faculty appearing exactly once.
func (s *feedbackServiceImpl) StatusForStudent(ctx context.Context, studentID int64) ([]*models.FacultyFeedbackStatus, error) {
	status, err := s.feedbackRepo.GetStatusForAllFaculties(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback status: %w", err)
	}
	return status, nil
}

// ListAnonymized returns every feedback row without student identity
func (s *feedbackServiceImpl) ListAnonymized(ctx context.Context) ([]*models.AnonymousFeedback, error) {
	feedbacks, err := s.feedbackRepo.GetAllAnonymized(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return feedbacks, nil
}

// ListForFaculty returns one faculty's anonymized feedback together with
// the faculty record itself.
func (s *feedbackServiceImpl) ListForFaculty(ctx context.Context, facultyID int64) (*models.Faculty, []*models.AnonymousFeedback, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, nil, err
	}

	feedbacks, err := s.feedbackRepo.GetByFaculty(ctx, facultyID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving faculty feedback: %w", err)
	}

	return faculty, feedbacks, nil
}
