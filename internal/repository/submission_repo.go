package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mentora-labs/mentora-go-api/internal/models"
)

// SubmissionRepository manages persistence for quiz submissions.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.QuizSubmission) error
	ListByUser(ctx context.Context, userID uint) ([]models.QuizSubmission, error)
	LatestByUser(ctx context.Context, userID uint) (*models.QuizSubmission, error)
	GlobalAverageScore(ctx context.Context) (float64, error)
	AverageScoreByClass(ctx context.Context, classID string) (float64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository constructs a gorm-backed submission repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.QuizSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// ListByUser returns the user's submissions most recent first. Every
// aggregation in the service layer relies on this ordering.
func (r *submissionRepository) ListByUser(ctx context.Context, userID uint) ([]models.QuizSubmission, error) {
	var submissions []models.QuizSubmission
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) LatestByUser(ctx context.Context, userID uint) (*models.QuizSubmission, error) {
	var submissions []models.QuizSubmission
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Limit(1).
		Find(&submissions).Error
	if err != nil || len(submissions) == 0 {
		return nil, err
	}
	return &submissions[0], nil
}

func (r *submissionRepository) GlobalAverageScore(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&models.QuizSubmission{}).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *submissionRepository) AverageScoreByClass(ctx context.Context, classID string) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&models.QuizSubmission{}).
		Joins("JOIN users ON users.id = quiz_submissions.user_id").
		Where("users.class_id = ? AND users.role = ?", classID, models.RoleStudent).
		Select("AVG(quiz_submissions.score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
