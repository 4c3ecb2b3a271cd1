package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mentora-labs/mentora-go-api/internal/models"
)

func TestAggregateMasteryAveragesPerTopic(t *testing.T) {
	submissions := []models.QuizSubmission{
		{TopicMastery: []byte(`{"Java": 80, "SQL": 90}`)},
		{TopicMastery: []byte(`{"Java": 90}`)},
		{TopicMastery: []byte(`{"Networking": 60}`)},
	}

	mastery, skipped := AggregateMastery(submissions)

	require.Zero(t, skipped)
	require.InDelta(t, 85.0, mastery["Java"], 0.001, "Java averaged over the two submissions reporting it")
	require.InDelta(t, 90.0, mastery["SQL"], 0.001)
	require.InDelta(t, 60.0, mastery["Networking"], 0.001)
}

func TestAggregateMasterySkipsMalformedRecords(t *testing.T) {
	submissions := []models.QuizSubmission{
		{TopicMastery: []byte(`{"Java": 70}`)},
		{TopicMastery: []byte(`not json at all`)},
		{TopicMastery: []byte(`{"Java": 90}`)},
	}

	mastery, skipped := AggregateMastery(submissions)

	require.Equal(t, 1, skipped)
	require.InDelta(t, 80.0, mastery["Java"], 0.001, "malformed record must not affect the average")
}

func TestAggregateMasteryEmptyInput(t *testing.T) {
	mastery, skipped := AggregateMastery(nil)

	require.Zero(t, skipped)
	require.Empty(t, mastery)
}

func TestAggregateMasteryIgnoresMissingPayloads(t *testing.T) {
	submissions := []models.QuizSubmission{
		{},
		{TopicMastery: []byte(`{"Go": 100}`)},
	}

	mastery, skipped := AggregateMastery(submissions)

	require.Zero(t, skipped, "an absent payload is not corruption")
	require.InDelta(t, 100.0, mastery["Go"], 0.001)
}
