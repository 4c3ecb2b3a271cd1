package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// QuizSubmission records a single completed quiz. Score is on the raw 0-10
// scale; class rollups project it to 0-100. Rows are immutable once created.
type QuizSubmission struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             uint           `gorm:"not null;index" json:"user_id"`
	Score              int            `gorm:"not null" json:"score"`
	Accuracy           int            `gorm:"not null;default:0" json:"accuracy"`
	TypingSpeed        int            `gorm:"not null;default:0" json:"typing_speed"`
	TopicMastery       datatypes.JSON `json:"topic_mastery"`
	RecommendedCourses datatypes.JSON `json:"recommended_courses"`
	SubmittedAt        time.Time      `gorm:"index" json:"submitted_at"`
	User               User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// ParseTopicMastery decodes the per-topic mastery breakdown. A missing or
// malformed payload yields an error so callers can skip the record without
// aborting a larger aggregation.
func (s QuizSubmission) ParseTopicMastery() (map[string]float64, error) {
	if len(s.TopicMastery) == 0 {
		return nil, nil
	}
	var mastery map[string]float64
	if err := json.Unmarshal(s.TopicMastery, &mastery); err != nil {
		return nil, err
	}
	return mastery, nil
}

// ParseRecommendedCourses decodes the course names stored alongside the
// submission at grading time.
func (s QuizSubmission) ParseRecommendedCourses() ([]string, error) {
	if len(s.RecommendedCourses) == 0 {
		return nil, nil
	}
	var courses []string
	if err := json.Unmarshal(s.RecommendedCourses, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
