package dto

// RegisterRequest represents registration data
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	InstitutionalID string `json:"institutional_id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents public user information
type UserResponse struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	InstitutionalID string `json:"institutional_id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse is returned by the profile endpoint
type ProfileResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
