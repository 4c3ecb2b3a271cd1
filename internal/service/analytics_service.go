package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mentora-labs/mentora-go-api/internal/dto"
	"github.com/mentora-labs/mentora-go-api/internal/models"
	"github.com/mentora-labs/mentora-go-api/internal/repository"
)

var (
	// ErrUserNotFound indicates the referenced user id or email does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID indicates the supplied identifier is not a valid user id.
	ErrInvalidUserID = errors.New("invalid user id")
)

const recentSubmissionLimit = 10

// AnalyticsService derives per-student, per-class, and department-wide
// rollups from current user and submission state. Rollups are recomputed on
// every call; the only state is an optional read-through cache.
type AnalyticsService interface {
	GetStudentSummary(ctx context.Context, email string) (dto.StudentSummaryResponse, error)
	GetStudentAnalytics(ctx context.Context, studentID uint) (dto.StudentAnalyticsResponse, error)
	GetClassAnalytics(ctx context.Context, classID string) (dto.ClassAnalyticsResponse, error)
	GetDepartmentAnalytics(ctx context.Context) (dto.DepartmentAnalyticsResponse, error)
	GetRecommendation(ctx context.Context, studentID, scoreParam string) (dto.RecommendationResponse, error)
}

type analyticsService struct {
	users       repository.UserRepository
	submissions repository.SubmissionRepository
	engine      *RecommendationEngine
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
}

// NewAnalyticsService constructs the analytics aggregator.
func NewAnalyticsService(users repository.UserRepository, submissions repository.SubmissionRepository, engine *RecommendationEngine, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		users:       users,
		submissions: submissions,
		engine:      engine,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "analytics_service").Logger(),
	}
}

func (s *analyticsService) GetStudentSummary(ctx context.Context, email string) (dto.StudentSummaryResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.StudentSummaryResponse{}, ErrUserNotFound
		}
		return dto.StudentSummaryResponse{}, err
	}

	submissions, err := s.submissions.ListByUser(ctx, user.ID)
	if err != nil {
		return dto.StudentSummaryResponse{}, err
	}

	if len(submissions) == 0 {
		return dto.StudentSummaryResponse{
			CurrentStreak:     user.CurrentStreak,
			TopicMastery:      map[string]float64{},
			RecentSubmissions: []models.QuizSubmission{},
		}, nil
	}

	var totalScore, totalAccuracy, totalSpeed float64
	for _, submission := range submissions {
		totalScore += float64(submission.Score)
		totalAccuracy += float64(submission.Accuracy)
		totalSpeed += float64(submission.TypingSpeed)
	}

	mastery, skipped := AggregateMastery(submissions)
	if skipped > 0 {
		s.logger.Debug().
			Uint("user_id", user.ID).
			Int("skipped", skipped).
			Msg("skipped submissions with malformed topic mastery")
	}

	count := len(submissions)
	recent := submissions
	if len(recent) > recentSubmissionLimit {
		recent = recent[:recentSubmissionLimit]
	}

	return dto.StudentSummaryResponse{
		AverageScore:       totalScore / float64(count),
		AverageAccuracy:    totalAccuracy / float64(count),
		AverageTypingSpeed: totalSpeed / float64(count),
		TotalQuizzes:       count,
		CurrentStreak:      user.CurrentStreak,
		TopicMastery:       mastery,
		RecentSubmissions:  recent,
	}, nil
}

func (s *analyticsService) GetStudentAnalytics(ctx context.Context, studentID uint) (dto.StudentAnalyticsResponse, error) {
	user, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.StudentAnalyticsResponse{}, ErrUserNotFound
		}
		return dto.StudentAnalyticsResponse{}, err
	}

	submissions, err := s.submissions.ListByUser(ctx, user.ID)
	if err != nil {
		return dto.StudentAnalyticsResponse{}, err
	}

	var totalAccuracy, totalSpeed float64
	for _, submission := range submissions {
		totalAccuracy += float64(submission.Accuracy)
		totalSpeed += float64(submission.TypingSpeed)
	}

	avgSpeed := 0
	avgAccuracy := 0
	if len(submissions) > 0 {
		avgSpeed = int(totalSpeed / float64(len(submissions)))
		avgAccuracy = int(totalAccuracy / float64(len(submissions)))
	}

	activity := make([]dto.ActivityEntry, 0, 5)
	for idx, submission := range submissions {
		if idx >= 5 {
			break
		}
		activity = append(activity, dto.ActivityEntry{
			Type:    "Quiz",
			Subject: "Assessment",
			Score:   submission.Score,
			Date:    submission.SubmittedAt.Format("2006-01-02"),
		})
	}

	return dto.StudentAnalyticsResponse{
		AverageSpeed:    avgSpeed,
		Accuracy:        avgAccuracy,
		QuizzesTaken:    len(submissions),
		TotalStudyHours: float64(len(submissions)) * 0.5,
		CurrentStreak:   user.CurrentStreak,
		ModuleProgress:  illustrativeModuleProgress(),
		SkillsMastery:   illustrativeSkillsMastery(),
		RecentActivity:  activity,
	}, nil
}

func (s *analyticsService) GetClassAnalytics(ctx context.Context, classID string) (dto.ClassAnalyticsResponse, error) {
	cacheKey := fmt.Sprintf("analytics:class:%s", classID)
	tracer := otel.Tracer("github.com/mentora-labs/mentora-go-api/internal/service/analytics")
	ctx, span := tracer.Start(ctx, "analytics.class")
	span.SetAttributes(attribute.String("analytics.class_id", classID))
	defer span.End()

	var cached dto.ClassAnalyticsResponse
	if s.readCache(ctx, cacheKey, &cached) {
		span.SetAttributes(attribute.Bool("analytics.cache_hit", true))
		return cached, nil
	}

	students, err := s.users.ListByClassAndRole(ctx, classID, models.RoleStudent)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_class_students_failed")
		return dto.ClassAnalyticsResponse{}, err
	}

	entries := make([]dto.ClassStudentEntry, 0, len(students))
	var normalizedSum float64
	activeStudents := 0

	for _, student := range students {
		submissions, err := s.submissions.ListByUser(ctx, student.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "list_submissions_failed")
			return dto.ClassAnalyticsResponse{}, err
		}

		entry := dto.ClassStudentEntry{
			ID:         student.ID,
			Name:       student.Name,
			Status:     "New",
			LastActive: "Never",
		}

		if len(submissions) > 0 {
			activeStudents++

			var total float64
			for _, submission := range submissions {
				total += float64(submission.Score)
			}
			normalized := normalizeScore(total / float64(len(submissions)))
			normalizedSum += normalized

			entry.Score = int(normalized)
			entry.Status = classifyNormalizedScore(normalized)
			entry.LastActive = submissions[0].SubmittedAt.Format("2006-01-02")
		}

		entries = append(entries, entry)
	}

	classAverage := 0.0
	if activeStudents > 0 {
		classAverage = normalizedSum / float64(activeStudents)
	}

	response := dto.ClassAnalyticsResponse{
		AverageScore:   int(classAverage),
		TotalStudents:  len(students),
		PendingReviews: 0,
		Students:       entries,
	}

	span.SetAttributes(
		attribute.Int("analytics.total_students", len(students)),
		attribute.Int("analytics.active_students", activeStudents),
	)

	s.writeCache(ctx, cacheKey, response)
	return response, nil
}

func (s *analyticsService) GetDepartmentAnalytics(ctx context.Context) (dto.DepartmentAnalyticsResponse, error) {
	const cacheKey = "analytics:department"
	tracer := otel.Tracer("github.com/mentora-labs/mentora-go-api/internal/service/analytics")
	ctx, span := tracer.Start(ctx, "analytics.department")
	defer span.End()

	var cached dto.DepartmentAnalyticsResponse
	if s.readCache(ctx, cacheKey, &cached) {
		span.SetAttributes(attribute.Bool("analytics.cache_hit", true))
		return cached, nil
	}

	totalProfessors, err := s.users.CountByRole(ctx, models.RoleProfessor)
	if err != nil {
		span.RecordError(err)
		return dto.DepartmentAnalyticsResponse{}, err
	}

	totalStudents, err := s.users.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		span.RecordError(err)
		return dto.DepartmentAnalyticsResponse{}, err
	}

	// The department-wide average stays on the raw 0-10 scale; only the class
	// view projects scores to 0-100.
	globalAverage, err := s.submissions.GlobalAverageScore(ctx)
	if err != nil {
		span.RecordError(err)
		return dto.DepartmentAnalyticsResponse{}, err
	}

	professors, err := s.users.ListByRole(ctx, models.RoleProfessor)
	if err != nil {
		span.RecordError(err)
		return dto.DepartmentAnalyticsResponse{}, err
	}

	professorEntries := make([]dto.ProfessorEntry, 0, len(professors))
	for _, professor := range professors {
		entry := dto.ProfessorEntry{
			ID:            professor.ID,
			Name:          professor.Name,
			AssignedClass: "Unassigned",
			Status:        professor.StatusOrDefault("Active"),
		}

		if professor.ClassID != "" {
			entry.AssignedClass = professor.ClassID

			classStudents, err := s.users.ListByClassAndRole(ctx, professor.ClassID, models.RoleStudent)
			if err != nil {
				span.RecordError(err)
				return dto.DepartmentAnalyticsResponse{}, err
			}
			entry.StudentsCount = len(classStudents)

			classAverage, err := s.submissions.AverageScoreByClass(ctx, professor.ClassID)
			if err != nil {
				span.RecordError(err)
				return dto.DepartmentAnalyticsResponse{}, err
			}
			entry.AvgClassScore = int(classAverage)
		}

		professorEntries = append(professorEntries, entry)
	}

	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		span.RecordError(err)
		return dto.DepartmentAnalyticsResponse{}, err
	}

	studentEntries := make([]dto.ClassStudentEntry, 0, len(students))
	for _, student := range students {
		latest, err := s.submissions.LatestByUser(ctx, student.ID)
		if err != nil {
			span.RecordError(err)
			return dto.DepartmentAnalyticsResponse{}, err
		}

		score := 0
		if latest != nil {
			score = latest.Score
		}

		studentEntries = append(studentEntries, dto.ClassStudentEntry{
			ID:         student.ID,
			Name:       student.Name,
			Score:      score,
			Status:     student.StatusOrDefault("On Track"),
			LastActive: student.LastActive(),
		})
	}

	response := dto.DepartmentAnalyticsResponse{
		Overview: dto.DepartmentOverview{
			TotalProfessors: totalProfessors,
			TotalStudents:   totalStudents,
			AvgDeptScore:    int(globalAverage),
		},
		Professors: professorEntries,
		Students:   studentEntries,
	}

	span.SetAttributes(
		attribute.Int64("analytics.total_professors", totalProfessors),
		attribute.Int64("analytics.total_students", totalStudents),
	)

	s.writeCache(ctx, cacheKey, response)
	return response, nil
}

func (s *analyticsService) GetRecommendation(ctx context.Context, studentID, scoreParam string) (dto.RecommendationResponse, error) {
	id, err := parseUserID(studentID)
	if err != nil {
		return dto.RecommendationResponse{}, ErrInvalidUserID
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.RecommendationResponse{}, ErrUserNotFound
		}
		return dto.RecommendationResponse{}, err
	}

	response := dto.RecommendationResponse{
		StudentID:           studentID,
		RecommendedSubjects: []string{},
	}

	latest, err := s.submissions.LatestByUser(ctx, id)
	if err != nil {
		return dto.RecommendationResponse{}, err
	}

	if latest == nil {
		response.RecommendedSubject = "General Assessment"
	} else {
		courses, parseErr := latest.ParseRecommendedCourses()
		if parseErr != nil {
			s.logger.Debug().Uint("submission_id", latest.ID).Msg("malformed recommended courses payload")
		}
		if len(courses) > 0 {
			response.RecommendedSubjects = courses
			response.RecommendedSubject = courses[0]
		}
	}

	if len(response.RecommendedSubjects) == 0 && scoreParam != "" {
		score, convErr := strconv.Atoi(scoreParam)
		if convErr != nil {
			return dto.RecommendationResponse{}, ErrInvalidUserID
		}
		course := s.engine.RecommendByScore(score)
		response.RecommendedSubjects = []string{course}
		response.RecommendedSubject = course
	}

	return response, nil
}

func (s *analyticsService) readCache(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}

	cached, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to read analytics cache")
		}
		return false
	}

	return json.Unmarshal([]byte(cached), out) == nil
}

func (s *analyticsService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to store analytics cache")
	}
}

// normalizeScore projects a raw 0-10 average onto the 0-100 scale used by
// class dashboards.
func normalizeScore(raw float64) float64 {
	return raw * 10
}

func classifyNormalizedScore(normalized float64) string {
	switch {
	case normalized < 50:
		return "At Risk"
	case normalized < 70:
		return "Needs Attention"
	default:
		return "On Track"
	}
}

func parseUserID(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}

func illustrativeModuleProgress() []dto.ModuleProgress {
	return []dto.ModuleProgress{
		{ID: 1, Name: "Data Structures", Progress: 85, Status: "In Progress"},
		{ID: 2, Name: "Algorithms", Progress: 60, Status: "In Progress"},
		{ID: 3, Name: "Database Systems", Progress: 100, Status: "Completed"},
	}
}

func illustrativeSkillsMastery() []dto.SkillMastery {
	return []dto.SkillMastery{
		{Name: "Problem Solving", Level: 80},
		{Name: "Java", Level: 90},
	}
}
