package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models/dto"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/auth"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/validation"
)

// UserRepository defines the user persistence operations the auth service
// needs.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UserExists(ctx context.Context, email, institutionalID string) (bool, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	Profile(ctx context.Context, userID int64) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account and returns a signed token for it.
// Passwords are stored as bcrypt hashes.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	if req.Email == "" || req.Password == "" || req.InstitutionalID == "" || req.Name == "" {
		return "", nil, apperrors.NewValidationError("All fields are required (email, password, institutional_id, name)")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return "", nil, apperrors.NewValidationError("Password must be at least 6 characters long")
	}

	role := models.Role(req.Role)
	switch role {
	case "":
		role = models.RoleStudent
	case models.RoleStudent, models.RoleAdmin:
	default:
		return "", nil, apperrors.NewValidationError("Role must be student or admin")
	}

	exists, err := s.userRepo.UserExists(ctx, req.Email, req.InstitutionalID)
	if err != nil {
		return "", nil, fmt.Errorf("error checking existing user: %w", err)
	}
	if exists {
		return "", nil, apperrors.NewConflictError(apperrors.ErrUserAlreadyExists,
			"Email or Institutional ID already registered")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:           req.Email,
		Password:        hashed,
		InstitutionalID: req.InstitutionalID,
		Name:            req.Name,
		Role:            role,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		// Concurrent registration with the same email lands here
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return "", nil, apperrors.NewConflictError(apperrors.ErrUserAlreadyExists,
				"Email or Institutional ID already registered")
		}
		return "", nil, fmt.Errorf("error registering user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return token, user, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	if req.Email == "" || req.Password == "" {
		return "", nil, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("error generating token: %w", err)
	}

	return token, user, nil
}

// Profile returns the authenticated user's own record
func (s *authServiceImpl) Profile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
