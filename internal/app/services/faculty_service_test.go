package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
)

func TestCreateFacultyValidation(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		faculty *models.Faculty
	}{
		{"nil faculty", nil},
		{"missing name", &models.Faculty{Department: "Physics", Email: "a@b.edu"}},
		{"missing department", &models.Faculty{Name: "Dr. Smith", Email: "a@b.edu"}},
		{"missing email", &models.Faculty{Name: "Dr. Smith", Department: "Physics"}},
		{"blank name", &models.Faculty{Name: "   ", Department: "Physics", Email: "a@b.edu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateFaculty(ctx, tt.faculty)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestFacultyCRUD(t *testing.T) {
	repo := newFakeFacultyRepo()
	svc := NewFacultyService(repo)
	ctx := context.Background()

	id, err := svc.CreateFaculty(ctx, &models.Faculty{
		Name:       "Dr. Smith",
		Department: "Physics",
		Email:      "smith@example.edu",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	faculty, err := svc.GetFacultyByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Smith", faculty.Name)

	err = svc.UpdateFaculty(ctx, &models.Faculty{
		ID:         id,
		Name:       "Dr. Jane Smith",
		Department: "Applied Physics",
		Email:      "smith@example.edu",
	})
	require.NoError(t, err)

	faculty, err = svc.GetFacultyByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Smith", faculty.Name)
	assert.Equal(t, "Applied Physics", faculty.Department)

	require.NoError(t, svc.DeleteFaculty(ctx, id))
	_, err = svc.GetFacultyByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestFacultyNotFoundPaths(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo())
	ctx := context.Background()

	_, err := svc.GetFacultyByID(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)

	err = svc.UpdateFaculty(ctx, &models.Faculty{
		ID: 42, Name: "Dr. Ghost", Department: "Math", Email: "g@b.edu",
	})
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)

	assert.ErrorIs(t, svc.DeleteFaculty(ctx, 42), apperrors.ErrFacultyNotFound)
}

func TestGetAllFacultiesOrderedByName(t *testing.T) {
	repo := newFakeFacultyRepo()
	svc := NewFacultyService(repo)
	ctx := context.Background()

	for _, name := range []string{"Dr. Zeta", "Dr. Alpha", "Dr. Mid"} {
		_, err := svc.CreateFaculty(ctx, &models.Faculty{
			Name: name, Department: "Dept", Email: name + "@example.edu",
		})
		require.NoError(t, err)
	}

	faculties, err := svc.GetAllFaculties(ctx)
	require.NoError(t, err)
	require.Len(t, faculties, 3)
	assert.Equal(t, "Dr. Alpha", faculties[0].Name)
	assert.Equal(t, "Dr. Mid", faculties[1].Name)
	assert.Equal(t, "Dr. Zeta", faculties[2].Name)
}
