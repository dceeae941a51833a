package dto

import "time"

// SubmitFeedbackRequest represents feedback submission data. Field
// presence and ranges are validated by the service so that missing or
// out-of-range values produce the exact messages the frontend expects.
type SubmitFeedbackRequest struct {
	FacultyID int64  `json:"faculty_id"`
	Rating    int    `json:"rating"`
	Comments  string `json:"comments"`
}

// UpdateFeedbackRequest represents feedback update data. Only rating and
// comments are mutable; faculty_id and ownership are fixed at creation.
type UpdateFeedbackRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// SubmitFeedbackResponse is returned after a successful submission
type SubmitFeedbackResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	FeedbackID int64  `json:"feedback_id"`
}

// StudentSubmissionResponse is one entry of a student's own submissions
type StudentSubmissionResponse struct {
	ID          int64     `json:"id"`
	FacultyID   int64     `json:"faculty_id"`
	FacultyName string    `json:"faculty_name"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// MyFeedbacksResponse lists a student's own submissions, newest first
type MyFeedbacksResponse struct {
	Success   bool                        `json:"success"`
	Feedbacks []StudentSubmissionResponse `json:"feedbacks"`
}

// FacultyStatusResponse is one row of the per-faculty submission status
type FacultyStatusResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Department   string     `json:"department"`
	HasFeedback  bool       `json:"has_feedback"`
	FeedbackID   *int64     `json:"feedback_id"`
	Rating       *int       `json:"rating"`
	FeedbackDate *time.Time `json:"feedback_date"`
}

// StatusListResponse covers every faculty exactly once for a student
type StatusListResponse struct {
	Success bool                    `json:"success"`
	Status  []FacultyStatusResponse `json:"status"`
}

// AnonymousFeedbackResponse is an admin-facing feedback row. It carries no
// field identifying the submitting student. faculty_name and department
// are present only on the cross-faculty listing.
type AnonymousFeedbackResponse struct {
	ID          int64     `json:"id"`
	FacultyID   int64     `json:"faculty_id"`
	FacultyName string    `json:"faculty_name,omitempty"`
	Department  string    `json:"department,omitempty"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminFeedbackListResponse lists all feedback, anonymized
type AdminFeedbackListResponse struct {
	Success   bool                        `json:"success"`
	Feedbacks []AnonymousFeedbackResponse `json:"feedbacks"`
}

// FacultyFeedbackListResponse lists one faculty's feedback, anonymized
type FacultyFeedbackListResponse struct {
	Success   bool                        `json:"success"`
	Faculty   FacultyResponse             `json:"faculty"`
	Feedbacks []AnonymousFeedbackResponse `json:"feedbacks"`
}
