package ai

import "context"

// Question is a single multiple-choice quiz question.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Generator describes a provider capable of producing quiz questions.
type Generator interface {
	GenerateQuestions(ctx context.Context, count int) ([]Question, error)
}
