package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentora-labs/mentora-go-api/internal/models"
)

func TestSeedEmptyDatabase(t *testing.T) {
	users := newFakeUserRepo()
	submissions := newFakeSubmissionRepo()
	svc := NewSeedService(users, submissions, testLogger())

	require.NoError(t, svc.Seed(context.Background()))

	hod, err := users.FindByEmail(context.Background(), "hod@university.edu")
	require.NoError(t, err)
	require.Equal(t, models.RoleHOD, hod.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hod.Password), []byte("admin123")))

	professor, err := users.FindByEmail(context.Background(), "prof@example.com")
	require.NoError(t, err)
	require.Equal(t, models.RoleProfessor, professor.Role)
	require.Equal(t, "CS101", professor.ClassID)

	student, err := users.FindByEmail(context.Background(), "student@example.com")
	require.NoError(t, err)
	require.Equal(t, "CS101", student.ClassID)

	require.Len(t, submissions.created, 2)
	for _, submission := range submissions.created {
		require.Equal(t, student.ID, submission.UserID)
		mastery, parseErr := submission.ParseTopicMastery()
		require.NoError(t, parseErr)
		require.NotEmpty(t, mastery)
	}
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	users := newFakeUserRepo(
		models.User{ID: 1, Email: "hod@university.edu", Role: models.RoleHOD},
		models.User{ID: 2, Email: "existing@example.com", Role: models.RoleStudent},
	)
	submissions := newFakeSubmissionRepo()
	svc := NewSeedService(users, submissions, testLogger())

	require.NoError(t, svc.Seed(context.Background()))

	require.Empty(t, users.created, "no sample users on a populated database")
	require.Empty(t, submissions.created)
}

func TestSeedRestoresMissingHOD(t *testing.T) {
	users := newFakeUserRepo(
		models.User{ID: 1, Email: "a@example.com", Role: models.RoleStudent},
		models.User{ID: 2, Email: "b@example.com", Role: models.RoleStudent},
	)
	svc := NewSeedService(users, newFakeSubmissionRepo(), testLogger())

	require.NoError(t, svc.Seed(context.Background()))

	hod, err := users.FindByEmail(context.Background(), "hod@university.edu")
	require.NoError(t, err)
	require.Equal(t, models.RoleHOD, hod.Role)
	require.Len(t, users.created, 1, "only the HOD account is restored")
}
