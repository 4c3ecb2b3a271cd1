package dto

// QuizSubmitRequest is the payload posted after a student completes a quiz.
// TypingMetrics is accepted for forward compatibility but not yet evaluated.
type QuizSubmitRequest struct {
	StudentID     string                 `json:"student_id" validate:"required"`
	Score         int                    `json:"score" validate:"gte=0"`
	Accuracy      *int                   `json:"accuracy" validate:"omitempty,gte=0,lte=100"`
	TypingSpeed   *int                   `json:"typing_speed" validate:"omitempty,gte=0"`
	TypingMetrics map[string]interface{} `json:"typing_metrics"`
	WrongAnswers  []string               `json:"wrong_answers"`
}

// QuizSubmissionResult summarises the graded submission.
type QuizSubmissionResult struct {
	StudentID          string   `json:"student_id"`
	Timestamp          string   `json:"timestamp"`
	Score              int      `json:"score"`
	RecommendedCourses []string `json:"recommended_courses"`
}

// QuizSubmitResponse wraps the result with a human-readable message.
type QuizSubmitResponse struct {
	Message string               `json:"message"`
	Result  QuizSubmissionResult `json:"result"`
}
