package service

import "github.com/mentora-labs/mentora-go-api/internal/models"

// AggregateMastery folds the per-submission topic mastery breakdowns into a
// single averaged map. Each topic is averaged over only the submissions that
// reported it. A submission whose payload fails to parse is skipped on its
// own; one bad record never aborts the aggregation. The number of skipped
// records is returned so callers can log the corruption.
func AggregateMastery(submissions []models.QuizSubmission) (map[string]float64, int) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	skipped := 0

	for _, submission := range submissions {
		mastery, err := submission.ParseTopicMastery()
		if err != nil {
			skipped++
			continue
		}
		for topic, value := range mastery {
			sums[topic] += value
			counts[topic]++
		}
	}

	aggregated := make(map[string]float64, len(sums))
	for topic, sum := range sums {
		aggregated[topic] = sum / float64(counts[topic])
	}

	return aggregated, skipped
}
