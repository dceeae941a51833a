package models

import "time"

// Feedback defines the feedback model based on the 'feedbacks' table.
// At most one row may exist per (user_id, faculty_id) pair; the storage
// layer enforces this with a unique constraint.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	FacultyID int64     `json:"faculty_id" db:"faculty_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comments  string    `json:"comments" db:"comments"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StudentSubmission is a student's own feedback row joined with the faculty name.
type StudentSubmission struct {
	ID          int64     `db:"id"`
	FacultyID   int64     `db:"faculty_id"`
	FacultyName string    `db:"faculty_name"`
	Rating      int       `db:"rating"`
	CreatedAt   time.Time `db:"created_at"`
}

// FacultyFeedbackStatus is one row of the per-student submission status,
// covering every faculty whether or not feedback exists (left-join).
type FacultyFeedbackStatus struct {
	FacultyID    int64      `db:"id"`
	FacultyName  string     `db:"name"`
	Department   string     `db:"department"`
	HasFeedback  bool       `db:"has_feedback"`
	FeedbackID   *int64     `db:"feedback_id"`
	Rating       *int       `db:"rating"`
	FeedbackDate *time.Time `db:"feedback_date"`
}

// AnonymousFeedback is the admin-facing projection of a feedback row.
// It never carries the submitting user's id. FacultyName and Department
// are only populated on the cross-faculty listing.
type AnonymousFeedback struct {
	ID          int64     `db:"id"`
	FacultyID   int64     `db:"faculty_id"`
	FacultyName string    `db:"faculty_name"`
	Department  string    `db:"department"`
	Rating      int       `db:"rating"`
	Comments    string    `db:"comments"`
	CreatedAt   time.Time `db:"created_at"`
}

// FacultyStatistics holds per-faculty aggregates. All fields are zero
// (never null) when the faculty has no feedback.
type FacultyStatistics struct {
	TotalFeedbacks int64   `db:"total_feedbacks"`
	AverageRating  float64 `db:"average_rating"`
	MinRating      int     `db:"min_rating"`
	MaxRating      int     `db:"max_rating"`
}

// FacultyRating is one entry of the cross-faculty ranking. Faculties with
// zero feedback are excluded from the ranking entirely.
type FacultyRating struct {
	FacultyID      int64   `db:"faculty_id"`
	FacultyName    string  `db:"faculty_name"`
	Department     string  `db:"department"`
	AverageRating  float64 `db:"average_rating"`
	TotalFeedbacks int64   `db:"total_feedbacks"`
}
