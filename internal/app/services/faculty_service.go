package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
)

// FacultyRepository defines the faculty persistence operations
type FacultyRepository interface {
	FacultyReader
	Create(ctx context.Context, faculty *models.Faculty) (int64, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

// FacultyService defines the interface for faculty management
type FacultyService interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo FacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo FacultyRepository) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// validateFaculty validates faculty data before database operations
func validateFaculty(faculty *models.Faculty) error {
	if faculty == nil {
		return apperrors.NewValidationError("Faculty data is required")
	}
	if strings.TrimSpace(faculty.Name) == "" ||
		strings.TrimSpace(faculty.Department) == "" ||
		strings.TrimSpace(faculty.Email) == "" {
		return apperrors.NewValidationError("Name, department, and email are required")
	}
	return nil
}

// CreateFaculty creates a new faculty
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	if err := validateFaculty(faculty); err != nil {
		return 0, err
	}

	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}
	return id, nil
}

// GetFacultyByID retrieves a faculty by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, apperrors.ErrFacultyNotFound
	}
	return s.facultyRepo.GetByID(ctx, id)
}

// GetAllFaculties retrieves all faculties ordered by name
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	faculties, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// UpdateFaculty updates an existing faculty
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if err := validateFaculty(faculty); err != nil {
		return err
	}
	if faculty.ID <= 0 {
		return apperrors.ErrFacultyNotFound
	}
	return s.facultyRepo.Update(ctx, faculty)
}

// DeleteFaculty deletes a faculty by ID
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrFacultyNotFound
	}
	return s.facultyRepo.Delete(ctx, id)
}
