package services

import (
	"context"
	"fmt"
	"math"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/validation"
)

// rankedListSize is the number of faculties in each of the top and bottom
// lists.
const rankedListSize = 3

// AnalyticsRepository defines the aggregate queries the analytics service
// needs. The pgx FeedbackRepository implements it.
type AnalyticsRepository interface {
	GetStatistics(ctx context.Context, facultyID int64) (*models.FacultyStatistics, error)
	GetFacultyAverages(ctx context.Context) ([]*models.FacultyRating, error)
	GetRatingDistribution(ctx context.Context) (map[int]int, error)
}

// AnalyticsService defines the interface for the aggregation engine
type AnalyticsService interface {
	StatisticsForFaculty(ctx context.Context, facultyID int64) (*models.Faculty, *models.FacultyStatistics, error)
	TopBottomFaculty(ctx context.Context) (top, bottom []*models.FacultyRating, err error)
	RatingDistribution(ctx context.Context) (map[int]int, error)
}

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	analyticsRepo AnalyticsRepository
	facultyRepo   FacultyReader
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(analyticsRepo AnalyticsRepository, facultyRepo FacultyReader) AnalyticsService {
	return &analyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		facultyRepo:   facultyRepo,
	}
}

// round2 rounds to two decimal places, half away from zero
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StatisticsForFaculty returns count, average, min and max rating for one
// faculty. With no feedback every field is zero, never null; the frontend
// depends on that shape.
func (s *analyticsServiceImpl) StatisticsForFaculty(ctx context.Context, facultyID int64) (*models.Faculty, *models.FacultyStatistics, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.analyticsRepo.GetStatistics(ctx, facultyID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving statistics: %w", err)
	}

	stats.AverageRating = round2(stats.AverageRating)
	return faculty, stats, nil
}

// TopBottomFaculty ranks faculties by descending average rating, excluding
// faculties with no feedback. Top is the first three of the ranking,
// bottom the last three reversed so the worst faculty comes first. The
// lists may overlap when fewer than six faculties are ranked.
func (s *analyticsServiceImpl) TopBottomFaculty(ctx context.Context) ([]*models.FacultyRating, []*models.FacultyRating, error) {
	ranked, err := s.analyticsRepo.GetFacultyAverages(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving faculty averages: %w", err)
	}

	for _, fr := range ranked {
		fr.AverageRating = round2(fr.AverageRating)
	}

	n := rankedListSize
	topEnd := n
	if topEnd > len(ranked) {
		topEnd = len(ranked)
	}
	top := make([]*models.FacultyRating, topEnd)
	copy(top, ranked[:topEnd])

	bottomStart := len(ranked) - n
	if bottomStart < 0 {
		bottomStart = 0
	}
	tail := ranked[bottomStart:]
	bottom := make([]*models.FacultyRating, len(tail))
	for i, fr := range tail {
		bottom[len(tail)-1-i] = fr
	}

	return top, bottom, nil
}

// RatingDistribution returns the system-wide count per rating value with
// all five keys always present.
func (s *analyticsServiceImpl) RatingDistribution(ctx context.Context) (map[int]int, error) {
	counts, err := s.analyticsRepo.GetRatingDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rating distribution: %w", err)
	}

	distribution := make(map[int]int, validation.RatingMax)
	for rating := validation.RatingMin; rating <= validation.RatingMax; rating++ {
		distribution[rating] = counts[rating]
	}

	return distribution, nil
}
