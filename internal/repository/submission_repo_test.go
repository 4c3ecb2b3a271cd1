package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mentora-labs/mentora-go-api/internal/models"
)

func seedStudent(t *testing.T, db *gorm.DB, email, classID string) models.User {
	t.Helper()
	user := models.User{Name: email, Email: email, Password: "hash", Role: models.RoleStudent, ClassID: classID}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), &user))
	return user
}

func at(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestSubmissionRepositoryListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()
	student := seedStudent(t, db, "alex@example.com", "CS101")

	stamps := []time.Time{
		at("2026-03-08T10:00:00Z"),
		at("2026-03-10T10:00:00Z"),
		at("2026-03-09T10:00:00Z"),
	}
	for i, stamp := range stamps {
		submission := models.QuizSubmission{UserID: student.ID, Score: i + 5, SubmittedAt: stamp}
		require.NoError(t, repo.Create(ctx, &submission))
	}

	listed, err := repo.ListByUser(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.True(t, listed[0].SubmittedAt.After(listed[1].SubmittedAt))
	require.True(t, listed[1].SubmittedAt.After(listed[2].SubmittedAt))

	latest, err := repo.LatestByUser(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, 6, latest.Score, "submission from 2026-03-10 is the most recent")
}

func TestSubmissionRepositoryLatestEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	student := seedStudent(t, db, "alex@example.com", "CS101")

	latest, err := repo.LatestByUser(context.Background(), student.ID)
	require.NoError(t, err)
	require.Nil(t, latest)
}

func TestSubmissionRepositoryJSONRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()
	student := seedStudent(t, db, "alex@example.com", "CS101")

	submission := models.QuizSubmission{
		UserID:             student.ID,
		Score:              8,
		TopicMastery:       []byte(`{"Java":85,"SQL":90}`),
		RecommendedCourses: []byte(`["Cybersecurity"]`),
		SubmittedAt:        at("2026-03-10T10:00:00Z"),
	}
	require.NoError(t, repo.Create(ctx, &submission))

	latest, err := repo.LatestByUser(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)

	mastery, err := latest.ParseTopicMastery()
	require.NoError(t, err)
	require.InDelta(t, 85.0, mastery["Java"], 0.001)

	courses, err := latest.ParseRecommendedCourses()
	require.NoError(t, err)
	require.Equal(t, []string{"Cybersecurity"}, courses)
}

func TestSubmissionRepositoryGlobalAverage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	empty, err := repo.GlobalAverageScore(ctx)
	require.NoError(t, err)
	require.Zero(t, empty, "no rows yields zero, not an error")

	alex := seedStudent(t, db, "alex@example.com", "CS101")
	blake := seedStudent(t, db, "blake@example.com", "CS202")

	for _, row := range []struct {
		user  models.User
		score int
	}{
		{alex, 6}, {alex, 8}, {blake, 10},
	} {
		submission := models.QuizSubmission{UserID: row.user.ID, Score: row.score, SubmittedAt: at("2026-03-10T10:00:00Z")}
		require.NoError(t, repo.Create(ctx, &submission))
	}

	avg, err := repo.GlobalAverageScore(ctx)
	require.NoError(t, err)
	require.InDelta(t, 8.0, avg, 0.001)
}

func TestSubmissionRepositoryAverageByClass(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	alex := seedStudent(t, db, "alex@example.com", "CS101")
	blake := seedStudent(t, db, "blake@example.com", "CS101")
	drew := seedStudent(t, db, "drew@example.com", "CS202")

	for _, row := range []struct {
		user  models.User
		score int
	}{
		{alex, 4}, {blake, 8}, {drew, 10},
	} {
		submission := models.QuizSubmission{UserID: row.user.ID, Score: row.score, SubmittedAt: at("2026-03-10T10:00:00Z")}
		require.NoError(t, repo.Create(ctx, &submission))
	}

	avg, err := repo.AverageScoreByClass(ctx, "CS101")
	require.NoError(t, err)
	require.InDelta(t, 6.0, avg, 0.001, "only CS101 submissions count")

	none, err := repo.AverageScoreByClass(ctx, "EMPTY")
	require.NoError(t, err)
	require.Zero(t, none)
}
