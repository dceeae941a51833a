package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ChandraVardhanReddy23/Feedback-System/internal/app/models"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/apperrors"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/dberrors"
	"github.com/ChandraVardhanReddy23/Feedback-System/internal/pkg/logger"
)

// uniqueSubmissionConstraint is the storage-level guarantee that a student
// submits at most once per faculty. Its violation is the duplicate check:
// check-then-insert as two statements would race under concurrency.
const uniqueSubmissionConstraint = "uq_feedbacks_user_faculty"

// FeedbackRepository handles feedback database operations including the
// anonymized read paths and the aggregate queries.
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new feedback row and returns its id. A violation of the
// (user_id, faculty_id) unique constraint is reported as
// ErrDuplicateFeedback, a faculty foreign key violation as
// ErrFacultyNotFound.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) (int64, error) {
	sql, args, err := r.sb.Insert("feedbacks").
		Columns("user_id", "faculty_id", "rating", "comments").
		Values(feedback.UserID, feedback.FacultyID, feedback.Rating, feedback.Comments).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create feedback query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, uniqueSubmissionConstraint) {
			return 0, apperrors.ErrDuplicateFeedback
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Msg("Error executing create feedback query")
		return 0, fmt.Errorf("error creating feedback: %w", err)
	}

	return feedback.ID, nil
}

// Update changes rating and comments of a feedback row. The predicate
// binds both id and user_id so a non-owner gets the same not-found outcome
// as a nonexistent id.
func (r *FeedbackRepository) Update(ctx context.Context, id, userID int64, rating int, comments string) error {
	sql, args, err := r.sb.Update("feedbacks").
		SetMap(map[string]interface{}{
			"rating":   rating,
			"comments": comments,
		}).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update feedback query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("feedbackID", id).Msg("Error executing update feedback query")
		return fmt.Errorf("error updating feedback: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}

	return nil
}

// Delete removes a feedback row using the same ownership-matched predicate
// as Update.
func (r *FeedbackRepository) Delete(ctx context.Context, id, userID int64) error {
	sql, args, err := r.sb.Delete("feedbacks").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete feedback query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("feedbackID", id).Msg("Error executing delete feedback query")
		return fmt.Errorf("error deleting feedback: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}

	return nil
}

// GetByUser retrieves a student's own submissions, newest first
func (r *FeedbackRepository) GetByUser(ctx context.Context, userID int64) ([]*models.StudentSubmission, error) {
	sql, args, err := r.sb.Select("f.id", "f.faculty_id", "fac.name AS faculty_name", "f.rating", "f.created_at").
		From("feedbacks f").
		Join("faculties fac ON f.faculty_id = fac.id").
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user submissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing get user submissions query")
		return nil, fmt.Errorf("error querying user submissions: %w", err)
	}
	defer rows.Close()

	submissions := []*models.StudentSubmission{}
	for rows.Next() {
		s := &models.StudentSubmission{}
		if err := rows.Scan(&s.ID, &s.FacultyID, &s.FacultyName, &s.Rating, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning submission row: %w", err)
		}
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return submissions, nil
}

// GetStatusForAllFaculties returns one row per faculty with the student's
// submission state, left-joining so faculties without feedback still appear.
func (r *FeedbackRepository) GetStatusForAllFaculties(ctx context.Context, userID int64) ([]*models.FacultyFeedbackStatus, error) {
	sql, args, err := r.sb.Select(
		"fac.id",
		"fac.name",
		"fac.department",
		"f.id IS NOT NULL AS has_feedback",
		"f.id AS feedback_id",
		"f.rating",
		"f.created_at AS feedback_date",
	).
		From("faculties fac").
		LeftJoin("feedbacks f ON fac.id = f.faculty_id AND f.user_id = ?", userID).
		OrderBy("fac.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build feedback status query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing feedback status query")
		return nil, fmt.Errorf("error querying feedback status: %w", err)
	}
	defer rows.Close()

	status := []*models.FacultyFeedbackStatus{}
	for rows.Next() {
		s := &models.FacultyFeedbackStatus{}
		if err := rows.Scan(&s.FacultyID, &s.FacultyName, &s.Department, &s.HasFeedback, &s.FeedbackID, &s.Rating, &s.FeedbackDate); err != nil {
			return nil, fmt.Errorf("error scanning feedback status row: %w", err)
		}
		status = append(status, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback status rows: %w", err)
	}

	return status, nil
}

// GetAllAnonymized returns every feedback row joined with faculty name and
// department, newest first. user_id is never selected.
func (r *FeedbackRepository) GetAllAnonymized(ctx context.Context) ([]*models.AnonymousFeedback, error) {
	sql, args, err := r.sb.Select(
		"f.id", "f.faculty_id", "fac.name AS faculty_name", "fac.department",
		"f.rating", "f.comments", "f.created_at",
	).
		From("feedbacks f").
		Join("faculties fac ON f.faculty_id = fac.id").
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build all feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing all feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	feedbacks := []*models.AnonymousFeedback{}
	for rows.Next() {
		fb := &models.AnonymousFeedback{}
		if err := rows.Scan(&fb.ID, &fb.FacultyID, &fb.FacultyName, &fb.Department, &fb.Rating, &fb.Comments, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		feedbacks = append(feedbacks, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return feedbacks, nil
}

// GetByFaculty returns one faculty's feedback rows, newest first, without
// user_id or faculty columns.
func (r *FeedbackRepository) GetByFaculty(ctx context.Context, facultyID int64) ([]*models.AnonymousFeedback, error) {
	sql, args, err := r.sb.Select("id", "faculty_id", "rating", "comments", "created_at").
		From("feedbacks").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing faculty feedback query")
		return nil, fmt.Errorf("error querying faculty feedback: %w", err)
	}
	defer rows.Close()

	feedbacks := []*models.AnonymousFeedback{}
	for rows.Next() {
		fb := &models.AnonymousFeedback{}
		if err := rows.Scan(&fb.ID, &fb.FacultyID, &fb.Rating, &fb.Comments, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		feedbacks = append(feedbacks, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return feedbacks, nil
}

// GetStatistics computes count, average, min and max rating for a faculty.
// COALESCE keeps every field zero when no rows exist.
func (r *FeedbackRepository) GetStatistics(ctx context.Context, facultyID int64) (*models.FacultyStatistics, error) {
	sql, args, err := r.sb.Select(
		"COUNT(*) AS total_feedbacks",
		"COALESCE(AVG(rating), 0) AS average_rating",
		"COALESCE(MIN(rating), 0) AS min_rating",
		"COALESCE(MAX(rating), 0) AS max_rating",
	).
		From("feedbacks").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build statistics query: %w", err)
	}

	stats := &models.FacultyStatistics{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stats.TotalFeedbacks, &stats.AverageRating, &stats.MinRating, &stats.MaxRating)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing statistics query")
		return nil, fmt.Errorf("error querying statistics: %w", err)
	}

	return stats, nil
}

// GetFacultyAverages ranks faculties by average rating, excluding those
// with no feedback. Equal averages order by faculty id ascending so the
// ranking is deterministic.
func (r *FeedbackRepository) GetFacultyAverages(ctx context.Context) ([]*models.FacultyRating, error) {
	sql, args, err := r.sb.Select(
		"fac.id AS faculty_id",
		"fac.name AS faculty_name",
		"fac.department",
		"AVG(f.rating) AS average_rating",
		"COUNT(f.id) AS total_feedbacks",
	).
		From("faculties fac").
		Join("feedbacks f ON fac.id = f.faculty_id").
		GroupBy("fac.id", "fac.name", "fac.department").
		OrderBy("average_rating DESC", "faculty_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty averages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing faculty averages query")
		return nil, fmt.Errorf("error querying faculty averages: %w", err)
	}
	defer rows.Close()

	ratings := []*models.FacultyRating{}
	for rows.Next() {
		fr := &models.FacultyRating{}
		if err := rows.Scan(&fr.FacultyID, &fr.FacultyName, &fr.Department, &fr.AverageRating, &fr.TotalFeedbacks); err != nil {
			return nil, fmt.Errorf("error scanning faculty rating row: %w", err)
		}
		ratings = append(ratings, fr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rating rows: %w", err)
	}

	return ratings, nil
}

// GetRatingDistribution counts every feedback row by rating value. Missing
// ratings are absent from the result; the service fills the 1..5 keys.
func (r *FeedbackRepository) GetRatingDistribution(ctx context.Context) (map[int]int, error) {
	sql, args, err := r.sb.Select("rating", "COUNT(*) AS count").
		From("feedbacks").
		GroupBy("rating").
		OrderBy("rating ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build rating distribution query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing rating distribution query")
		return nil, fmt.Errorf("error querying rating distribution: %w", err)
	}
	defer rows.Close()

	distribution := map[int]int{}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("error scanning rating distribution row: %w", err)
		}
		distribution[rating] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating distribution rows: %w", err)
	}

	return distribution, nil
}

