package dto

// FacultyResponse represents basic faculty information
type FacultyResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// UpdateFacultyRequest represents faculty update data
type UpdateFacultyRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// FacultyListResponse represents a list of faculties
type FacultyListResponse struct {
	Success   bool              `json:"success"`
	Faculties []FacultyResponse `json:"faculties"`
}

// CreateFacultyResponse is returned after creating a faculty
type CreateFacultyResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	FacultyID int64  `json:"faculty_id"`
}
