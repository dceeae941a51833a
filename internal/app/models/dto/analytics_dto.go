package dto

// FacultySummary identifies a faculty in analytics responses
type FacultySummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// StatisticsData holds per-faculty aggregates. All fields report zero when
// the faculty has no feedback; the frontend relies on this.
type StatisticsData struct {
	TotalFeedbacks int64   `json:"total_feedbacks"`
	AverageRating  float64 `json:"average_rating"`
	MinRating      int     `json:"min_rating"`
	MaxRating      int     `json:"max_rating"`
}

// StatisticsResponse is returned by the per-faculty statistics endpoint
type StatisticsResponse struct {
	Success    bool           `json:"success"`
	Faculty    FacultySummary `json:"faculty"`
	Statistics StatisticsData `json:"statistics"`
}

// FacultyRatingResponse is one ranked faculty in the top/bottom analytics
type FacultyRatingResponse struct {
	FacultyID      int64   `json:"faculty_id"`
	FacultyName    string  `json:"faculty_name"`
	Department     string  `json:"department"`
	AverageRating  float64 `json:"average_rating"`
	TotalFeedbacks int64   `json:"total_feedbacks"`
}

// TopBottomResponse ranks faculties by average rating. Both lists may
// overlap when fewer than six faculties have feedback.
type TopBottomResponse struct {
	Success bool                    `json:"success"`
	Top     []FacultyRatingResponse `json:"top"`
	Bottom  []FacultyRatingResponse `json:"bottom"`
}

// DistributionResponse maps each rating 1..5 to its system-wide count.
// All five keys are always present.
type DistributionResponse struct {
	Success      bool        `json:"success"`
	Distribution map[int]int `json:"distribution"`
}
