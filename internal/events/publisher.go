package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Publisher emits fire-and-forget domain events over NATS. A nil connection
// disables publishing, so callers never need to branch on configuration.
type Publisher struct {
	conn        *nats.Conn
	subjectBase string
	logger      zerolog.Logger
}

// LoginEvent is published whenever a user authenticates successfully.
type LoginEvent struct {
	UserID        uint      `json:"user_id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CurrentStreak int       `json:"current_streak"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// SubmissionEvent is published whenever a quiz submission is recorded.
type SubmissionEvent struct {
	SubmissionID       uint      `json:"submission_id"`
	UserID             uint      `json:"user_id"`
	Score              int       `json:"score"`
	RecommendedCourses []string  `json:"recommended_courses"`
	OccurredAt         time.Time `json:"occurred_at"`
}

// NewPublisher constructs a publisher bound to the given subject base.
func NewPublisher(conn *nats.Conn, subjectBase string, logger zerolog.Logger) *Publisher {
	if subjectBase == "" {
		subjectBase = "mentora"
	}

	return &Publisher{
		conn:        conn,
		subjectBase: subjectBase,
		logger:      logger.With().Str("component", "event_publisher").Logger(),
	}
}

// UserLoggedIn publishes a login event.
func (p *Publisher) UserLoggedIn(event LoginEvent) {
	p.publish(p.subjectBase+".user.login", event)
}

// QuizSubmitted publishes a quiz submission event.
func (p *Publisher) QuizSubmitted(event SubmissionEvent) {
	p.publish(p.subjectBase+".quiz.submitted", event)
}

func (p *Publisher) publish(subject string, event interface{}) {
	if p == nil || p.conn == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn().Err(err).Str("subject", subject).Msg("failed to encode event")
		return
	}

	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.Warn().Err(err).Str("subject", subject).Msg("failed to publish event")
	}
}
