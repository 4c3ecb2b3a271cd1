package dto

import "github.com/mentora-labs/mentora-go-api/internal/models"

// StudentSummaryResponse is the user-level aggregate over all submissions.
// Field names are part of the compatibility surface consumed by the web app.
type StudentSummaryResponse struct {
	AverageScore       float64                 `json:"averageScore"`
	AverageAccuracy    float64                 `json:"averageAccuracy"`
	AverageTypingSpeed float64                 `json:"averageTypingSpeed"`
	TotalQuizzes       int                     `json:"totalQuizzes"`
	CurrentStreak      int                     `json:"currentStreak"`
	TopicMastery       map[string]float64      `json:"topicMastery"`
	RecentSubmissions  []models.QuizSubmission `json:"recentSubmissions"`
}

// ModuleProgress is an illustrative per-module progress entry on the student
// dashboard; module entities are not tracked yet so the content is static.
type ModuleProgress struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

// SkillMastery is an illustrative per-skill level entry on the student dashboard.
type SkillMastery struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// ActivityEntry is one row of the student's recent activity feed.
type ActivityEntry struct {
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Score   int    `json:"score"`
	Date    string `json:"date"`
}

// StudentAnalyticsResponse is the student dashboard payload.
type StudentAnalyticsResponse struct {
	AverageSpeed    int              `json:"average_speed"`
	Accuracy        int              `json:"accuracy"`
	QuizzesTaken    int              `json:"quizzes_taken"`
	TotalStudyHours float64          `json:"total_study_hours"`
	CurrentStreak   int              `json:"current_streak"`
	ModuleProgress  []ModuleProgress `json:"module_progress"`
	SkillsMastery   []SkillMastery   `json:"skills_mastery"`
	RecentActivity  []ActivityEntry  `json:"recent_activity"`
}

// RecommendationResponse is the course recommendation lookup payload.
type RecommendationResponse struct {
	StudentID           string   `json:"student_id"`
	RecommendedSubject  string   `json:"recommended_subject"`
	RecommendedSubjects []string `json:"recommended_subjects"`
}

// ClassStudentEntry is one student's row inside a class or department rollup.
type ClassStudentEntry struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Status     string `json:"status"`
	LastActive string `json:"last_active"`
}

// ClassAnalyticsResponse summarises one class for its professor.
type ClassAnalyticsResponse struct {
	AverageScore   int                 `json:"average_score"`
	TotalStudents  int                 `json:"total_students"`
	PendingReviews int                 `json:"pending_reviews"`
	Students       []ClassStudentEntry `json:"students"`
}

// DepartmentOverview carries the department-wide headline counters.
type DepartmentOverview struct {
	TotalProfessors int64 `json:"total_professors"`
	TotalStudents   int64 `json:"total_students"`
	AvgDeptScore    int   `json:"avg_dept_score"`
}

// ProfessorEntry summarises one professor and their assigned class.
type ProfessorEntry struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	AssignedClass string `json:"assigned_class"`
	StudentsCount int    `json:"students_count"`
	AvgClassScore int    `json:"avg_class_score"`
	Status        string `json:"status"`
}

// DepartmentAnalyticsResponse is the head-of-department dashboard payload.
type DepartmentAnalyticsResponse struct {
	Overview   DepartmentOverview  `json:"overview"`
	Professors []ProfessorEntry    `json:"professors"`
	Students   []ClassStudentEntry `json:"students"`
}
