package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentora-labs/mentora-go-api/internal/models"
	"github.com/mentora-labs/mentora-go-api/internal/repository"
)

// SeedService provisions the default head-of-department account and, on an
// empty database, a small sample class so dashboards render something useful
// on first boot.
type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	users       repository.UserRepository
	submissions repository.SubmissionRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSeedService constructs the seeding service.
func NewSeedService(users repository.UserRepository, submissions repository.SubmissionRepository, logger zerolog.Logger) SeedService {
	return &seedService{
		users:       users,
		submissions: submissions,
		logger:      logger.With().Str("component", "seed_service").Logger(),
		now:         time.Now,
	}
}

func (s *seedService) Seed(ctx context.Context) error {
	if _, err := s.users.FindByEmail(ctx, "hod@university.edu"); errors.Is(err, repository.ErrNotFound) {
		s.logger.Info().Msg("seeding default HOD account")
		hod, buildErr := s.buildUser("Department Head", "hod@university.edu", "admin123", models.RoleHOD, "", "Active")
		if buildErr != nil {
			return buildErr
		}
		if err := s.users.Create(ctx, &hod); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 1 {
		s.logger.Debug().Msg("database already seeded with sample data")
		return nil
	}

	s.logger.Info().Msg("seeding sample professor, student, and submissions")

	professor, err := s.buildUser("Professor Smith", "prof@example.com", "password", models.RoleProfessor, "CS101", "Active")
	if err != nil {
		return err
	}
	if err := s.users.Create(ctx, &professor); err != nil {
		return err
	}

	student, err := s.buildUser("Alex Johnson", "student@example.com", "password", models.RoleStudent, "CS101", "On Track")
	if err != nil {
		return err
	}
	if err := s.users.Create(ctx, &student); err != nil {
		return err
	}

	samples := []struct {
		score    int
		accuracy int
		speed    int
		mastery  map[string]float64
	}{
		{score: 8, accuracy: 92, speed: 45, mastery: map[string]float64{"Java": 85, "Spring": 70, "SQL": 90}},
		{score: 7, accuracy: 80, speed: 48, mastery: map[string]float64{"Java": 88, "Spring": 60, "Algorithms": 75}},
	}

	for idx, sample := range samples {
		masteryJSON, marshalErr := json.Marshal(sample.mastery)
		if marshalErr != nil {
			return marshalErr
		}

		submission := models.QuizSubmission{
			UserID:       student.ID,
			Score:        sample.score,
			Accuracy:     sample.accuracy,
			TypingSpeed:  sample.speed,
			TopicMastery: masteryJSON,
			SubmittedAt:  s.now().Add(-time.Duration(len(samples)-idx) * time.Hour),
		}
		if err := s.submissions.Create(ctx, &submission); err != nil {
			return err
		}
	}

	s.logger.Info().Msg("database seeded")
	return nil
}

func (s *seedService) buildUser(name, email, password, role, classID, status string) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		ClassID:  classID,
		Status:   status,
	}, nil
}
