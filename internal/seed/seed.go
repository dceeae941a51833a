package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	appRepos "github.com/ChandraVardhanReddy23/Feedback-System/internal/app/repositories"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@feedbacksystem.edu"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData creates the default admin account and a couple of demo
// faculties if they don't exist. Safe to call on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	facultyRepo := appRepos.NewFacultyRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin user, demo faculties)...")
	var finalErr error

	if err := seedAdmin(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedFaculties(ctx, facultyRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.UserExists(ctx, defaultAdminEmail, "ADMIN001")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:           defaultAdminEmail,
		Password:        hashed,
		InstitutionalID: "ADMIN001",
		Name:            "System Administrator",
		Role:            appModels.RoleAdmin,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		// A concurrent instance may have created it first
		lgr.Warn().Err(err).Msg("Could not create default admin")
		return nil
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin user created")
	return nil
}

func seedFaculties(ctx context.Context, facultyRepo *appRepos.FacultyRepository, lgr zerolog.Logger) error {
	existing, err := facultyRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing faculties for seeding")
		return err
	}

	byEmail := make(map[string]bool, len(existing))
	for _, f := range existing {
		byEmail[f.Email] = true
	}

	demo := []*appModels.Faculty{
		{Name: "Dr. Alice Raman", Department: "Computer Science", Email: "alice.raman@feedbacksystem.edu"},
		{Name: "Dr. Brian Kovacs", Department: "Mathematics", Email: "brian.kovacs@feedbacksystem.edu"},
		{Name: "Dr. Carla Mendes", Department: "Physics", Email: "carla.mendes@feedbacksystem.edu"},
	}

	for _, faculty := range demo {
		if byEmail[faculty.Email] {
			continue
		}
		if _, err := facultyRepo.Create(ctx, faculty); err != nil {
			lgr.Error().Err(err).Str("email", faculty.Email).Msg("Error creating demo faculty")
			continue
		}
		lgr.Info().Str("name", faculty.Name).Msg("Demo faculty created")
	}

	return nil
}
