package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
)

// fakeFacultyRepo is an in-memory FacultyRepository
type fakeFacultyRepo struct {
	mu        sync.Mutex
	nextID    int64
	faculties map[int64]*models.Faculty
}

func newFakeFacultyRepo() *fakeFacultyRepo {
	return &fakeFacultyRepo{faculties: make(map[int64]*models.Faculty)}
}

func (r *fakeFacultyRepo) Create(_ context.Context, faculty *models.Faculty) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f := *faculty
	f.ID = r.nextID
	f.CreatedAt = time.Now()
	r.faculties[f.ID] = &f
	return f.ID, nil
}

func (r *fakeFacultyRepo) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.faculties[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFacultyRepo) GetAll(_ context.Context) ([]*models.Faculty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Faculty, 0, len(r.faculties))
	for _, f := range r.faculties {
		copied := *f
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFacultyRepo) Update(_ context.Context, faculty *models.Faculty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.faculties[faculty.ID]
	if !ok {
		return apperrors.ErrFacultyNotFound
	}
	existing.Name = faculty.Name
	existing.Department = faculty.Department
	existing.Email = faculty.Email
	return nil
}

func (r *fakeFacultyRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.faculties[id]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	delete(r.faculties, id)
	return nil
}

// fakeFeedbackRepo is an in-memory FeedbackRepository and
// AnalyticsRepository. Like the real table it enforces one feedback per
// (user, faculty) pair under its own lock, so concurrent Create calls
// behave like racing inserts against the unique constraint.
type fakeFeedbackRepo struct {
	mu        sync.Mutex
	nextID    int64
	feedbacks map[int64]*models.Feedback
	faculties *fakeFacultyRepo
}

func newFakeFeedbackRepo(faculties *fakeFacultyRepo) *fakeFeedbackRepo {
	return &fakeFeedbackRepo{
		feedbacks: make(map[int64]*models.Feedback),
		faculties: faculties,
	}
}

func (r *fakeFeedbackRepo) Create(_ context.Context, feedback *models.Feedback) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fb := range r.feedbacks {
		if fb.UserID == feedback.UserID && fb.FacultyID == feedback.FacultyID {
			return 0, apperrors.ErrDuplicateFeedback
		}
	}
	r.nextID++
	fb := *feedback
	fb.ID = r.nextID
	fb.CreatedAt = time.Now()
	r.feedbacks[fb.ID] = &fb
	return fb.ID, nil
}

func (r *fakeFeedbackRepo) Update(_ context.Context, id, userID int64, rating int, comments string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fb, ok := r.feedbacks[id]
	if !ok || fb.UserID != userID {
		return apperrors.ErrFeedbackNotFound
	}
	fb.Rating = rating
	fb.Comments = comments
	return nil
}

func (r *fakeFeedbackRepo) Delete(_ context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fb, ok := r.feedbacks[id]
	if !ok || fb.UserID != userID {
		return apperrors.ErrFeedbackNotFound
	}
	delete(r.feedbacks, id)
	return nil
}

// sortedNewestFirst returns all rows ordered like the SQL read paths,
// newest first. IDs increase monotonically so they stand in for time.
func (r *fakeFeedbackRepo) sortedNewestFirst() []*models.Feedback {
	out := make([]*models.Feedback, 0, len(r.feedbacks))
	for _, fb := range r.feedbacks {
		out = append(out, fb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeFeedbackRepo) GetByUser(_ context.Context, userID int64) ([]*models.StudentSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.StudentSubmission
	for _, fb := range r.sortedNewestFirst() {
		if fb.UserID != userID {
			continue
		}
		name := ""
		if f, ok := r.faculties.faculties[fb.FacultyID]; ok {
			name = f.Name
		}
		out = append(out, &models.StudentSubmission{
			ID:          fb.ID,
			FacultyID:   fb.FacultyID,
			FacultyName: name,
			Rating:      fb.Rating,
			CreatedAt:   fb.CreatedAt,
		})
	}
	return out, nil
}

func (r *fakeFeedbackRepo) GetStatusForAllFaculties(ctx context.Context, userID int64) ([]*models.FacultyFeedbackStatus, error) {
	faculties, err := r.faculties.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.FacultyFeedbackStatus, 0, len(faculties))
	for _, f := range faculties {
		row := &models.FacultyFeedbackStatus{
			FacultyID:   f.ID,
			FacultyName: f.Name,
			Department:  f.Department,
		}
		for _, fb := range r.feedbacks {
			if fb.UserID == userID && fb.FacultyID == f.ID {
				id, rating, date := fb.ID, fb.Rating, fb.CreatedAt
				row.HasFeedback = true
				row.FeedbackID = &id
				row.Rating = &rating
				row.FeedbackDate = &date
				break
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeFeedbackRepo) anonymize(fb *models.Feedback, withFaculty bool) *models.AnonymousFeedback {
	row := &models.AnonymousFeedback{
		ID:        fb.ID,
		FacultyID: fb.FacultyID,
		Rating:    fb.Rating,
		Comments:  fb.Comments,
		CreatedAt: fb.CreatedAt,
	}
	if withFaculty {
		if f, ok := r.faculties.faculties[fb.FacultyID]; ok {
			row.FacultyName = f.Name
			row.Department = f.Department
		}
	}
	return row
}

func (r *fakeFeedbackRepo) GetAllAnonymized(_ context.Context) ([]*models.AnonymousFeedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.AnonymousFeedback
	for _, fb := range r.sortedNewestFirst() {
		out = append(out, r.anonymize(fb, true))
	}
	return out, nil
}

func (r *fakeFeedbackRepo) GetByFaculty(_ context.Context, facultyID int64) ([]*models.AnonymousFeedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.AnonymousFeedback
	for _, fb := range r.sortedNewestFirst() {
		if fb.FacultyID == facultyID {
			out = append(out, r.anonymize(fb, false))
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) GetStatistics(_ context.Context, facultyID int64) (*models.FacultyStatistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &models.FacultyStatistics{}
	var sum int
	for _, fb := range r.feedbacks {
		if fb.FacultyID != facultyID {
			continue
		}
		stats.TotalFeedbacks++
		sum += fb.Rating
		if stats.MinRating == 0 || fb.Rating < stats.MinRating {
			stats.MinRating = fb.Rating
		}
		if fb.Rating > stats.MaxRating {
			stats.MaxRating = fb.Rating
		}
	}
	if stats.TotalFeedbacks > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalFeedbacks)
	}
	return stats, nil
}

func (r *fakeFeedbackRepo) GetFacultyAverages(_ context.Context) ([]*models.FacultyRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sums := make(map[int64]int)
	counts := make(map[int64]int64)
	for _, fb := range r.feedbacks {
		sums[fb.FacultyID] += fb.Rating
		counts[fb.FacultyID]++
	}

	var out []*models.FacultyRating
	for id, count := range counts {
		fr := &models.FacultyRating{
			FacultyID:      id,
			AverageRating:  float64(sums[id]) / float64(count),
			TotalFeedbacks: count,
		}
		if f, ok := r.faculties.faculties[id]; ok {
			fr.FacultyName = f.Name
			fr.Department = f.Department
		}
		out = append(out, fr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating > out[j].AverageRating
		}
		return out[i].FacultyID < out[j].FacultyID
	})
	return out, nil
}

func (r *fakeFeedbackRepo) GetRatingDistribution(_ context.Context) (map[int]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[int]int)
	for _, fb := range r.feedbacks {
		counts[fb.Rating]++
	}
	return counts, nil
}
