package events

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPublisherNilConnectionIsSafe(t *testing.T) {
	publisher := NewPublisher(nil, "", zerolog.Nop())

	require.NotPanics(t, func() {
		publisher.UserLoggedIn(LoginEvent{UserID: 1, Email: "alex@example.com", OccurredAt: time.Now()})
		publisher.QuizSubmitted(SubmissionEvent{SubmissionID: 1, UserID: 1, Score: 8, OccurredAt: time.Now()})
	})
}

func TestPublisherNilReceiverIsSafe(t *testing.T) {
	var publisher *Publisher

	require.NotPanics(t, func() {
		publisher.UserLoggedIn(LoginEvent{UserID: 1})
	})
}

func TestNewPublisherDefaultsSubjectBase(t *testing.T) {
	publisher := NewPublisher(nil, "", zerolog.Nop())
	require.Equal(t, "mentora", publisher.subjectBase)

	custom := NewPublisher(nil, "campus", zerolog.Nop())
	require.Equal(t, "campus", custom.subjectBase)
}
