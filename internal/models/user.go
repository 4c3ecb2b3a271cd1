package models

import "time"

// User roles. Professors carry the class they teach in ClassID, students the
// class they are enrolled in.
const (
	RoleStudent   = "STUDENT"
	RoleProfessor = "PROFESSOR"
	RoleHOD       = "HOD"
)

// User represents an account in the department: a student, a professor, or the
// head of department.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"size:255" json:"name"`
	Email         string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password      string     `gorm:"size:255;not null" json:"-"`
	Role          string     `gorm:"size:32;not null" json:"role"`
	ClassID       string     `gorm:"size:64;index" json:"class_id"`
	Status        string     `gorm:"size:64" json:"status"`
	CurrentStreak int        `gorm:"not null;default:0" json:"current_streak"`
	LastLoginDate *time.Time `json:"last_login_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// StatusOrDefault returns the stored status label, falling back to the given
// default when none has been set.
func (u User) StatusOrDefault(fallback string) string {
	if u.Status == "" {
		return fallback
	}
	return u.Status
}

// LastActive renders the last login date for dashboards, or "Never" when the
// user has not logged in yet.
func (u User) LastActive() string {
	if u.LastLoginDate == nil {
		return "Never"
	}
	return u.LastLoginDate.Format("2006-01-02")
}

// IsStudent reports whether the user holds the student role.
func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}
