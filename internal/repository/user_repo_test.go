package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mentora-labs/mentora-go-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.QuizSubmission{}))
	return db
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := models.User{Name: "Alex", Email: "alex@example.com", Password: "hash", Role: models.RoleStudent, ClassID: "CS101"}
	require.NoError(t, repo.Create(ctx, &user))
	require.NotZero(t, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "alex@example.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "alex@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepositoryNotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryUpdate(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := models.User{Name: "Alex", Email: "alex@example.com", Password: "hash", Role: models.RoleStudent}
	require.NoError(t, repo.Create(ctx, &user))

	user.ClassID = "CS202"
	user.CurrentStreak = 5
	require.NoError(t, repo.Update(ctx, &user))

	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "CS202", reloaded.ClassID)
	require.Equal(t, 5, reloaded.CurrentStreak)
}

func TestUserRepositoryListByClassAndRole(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	seed := []models.User{
		{Name: "Zoe", Email: "zoe@example.com", Password: "hash", Role: models.RoleStudent, ClassID: "CS101"},
		{Name: "Avery", Email: "avery@example.com", Password: "hash", Role: models.RoleStudent, ClassID: "CS101"},
		{Name: "Professor Smith", Email: "prof@example.com", Password: "hash", Role: models.RoleProfessor, ClassID: "CS101"},
		{Name: "Drew", Email: "drew@example.com", Password: "hash", Role: models.RoleStudent, ClassID: "CS202"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	students, err := repo.ListByClassAndRole(ctx, "CS101", models.RoleStudent)
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, "Avery", students[0].Name, "ordered by name")
	require.Equal(t, "Zoe", students[1].Name)

	professors, err := repo.ListByRole(ctx, models.RoleProfessor)
	require.NoError(t, err)
	require.Len(t, professors, 1)
}

func TestUserRepositoryCounts(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	seed := []models.User{
		{Name: "A", Email: "a@example.com", Password: "hash", Role: models.RoleStudent},
		{Name: "B", Email: "b@example.com", Password: "hash", Role: models.RoleStudent},
		{Name: "C", Email: "c@example.com", Password: "hash", Role: models.RoleHOD},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	students, err := repo.CountByRole(ctx, models.RoleStudent)
	require.NoError(t, err)
	require.Equal(t, int64(2), students)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
}
