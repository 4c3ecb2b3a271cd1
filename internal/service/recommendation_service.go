package service

import (
	"strings"

	"github.com/rs/zerolog"
)

// RecommendationEngine derives course suggestions from quiz outcomes. It owns
// an immutable keyword table mapping substrings of wrong-answer texts to
// course names; the score-band strategy acts as a fallback so that a
// submission always yields at least one recommendation.
type RecommendationEngine struct {
	keywords map[string]string
	logger   zerolog.Logger
}

// NewRecommendationEngine constructs the engine with the default keyword table.
func NewRecommendationEngine(logger zerolog.Logger) *RecommendationEngine {
	return &RecommendationEngine{
		keywords: map[string]string{
			"complexity": "Algorithms",
			"o(":         "Algorithms",
			"lifo":       "Data Structures",
			"stack":      "Data Structures",
			"queue":      "Data Structures",
			"tree":       "Data Structures",
			"html":       "Web Development",
			"css":        "Web Development",
			"react":      "Web Development",
			"http":       "Networking",
			"ip":         "Networking",
			"tcp":        "Networking",
			"protocol":   "Networking",
			"port":       "Networking",
			"sql":        "Database Management",
			"android":    "Mobile Development",
			"docker":     "DevOps",
			"git":        "DevOps",
			"python":     "Python Programming",
			"cpu":        "Computer Architecture",
			"binary":     "Digital Logic",
		},
		logger: logger.With().Str("component", "recommendation_engine").Logger(),
	}
}

// RecommendByScore maps a raw 0-10 quiz score onto a single remedial course.
// Bands are inclusive on their upper end.
func (e *RecommendationEngine) RecommendByScore(score int) string {
	switch {
	case score <= 4:
		return "Basic Programming"
	case score <= 6:
		return "Data Structures"
	case score <= 8:
		return "Cybersecurity"
	default:
		return "Advanced AI Systems"
	}
}

// RecommendByMistakes matches each wrong-answer text against the keyword
// table, case-insensitively, and returns the deduplicated set of course
// names. A text may match several keywords and contribute several courses.
// An empty or non-matching input yields an empty slice; callers fall back to
// RecommendByScore.
func (e *RecommendationEngine) RecommendByMistakes(wrongAnswers []string) []string {
	if len(wrongAnswers) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	courses := make([]string, 0, len(wrongAnswers))

	for _, answer := range wrongAnswers {
		lowered := strings.ToLower(answer)
		for keyword, course := range e.keywords {
			if !strings.Contains(lowered, keyword) {
				continue
			}
			if _, ok := seen[course]; ok {
				continue
			}
			seen[course] = struct{}{}
			courses = append(courses, course)
		}
	}

	return courses
}

// Recommend composes the two strategies: keyword matches first, score band
// as fallback. The result is never empty.
func (e *RecommendationEngine) Recommend(score int, wrongAnswers []string) []string {
	courses := e.RecommendByMistakes(wrongAnswers)
	if len(courses) == 0 {
		courses = append(courses, e.RecommendByScore(score))
		e.logger.Debug().Int("score", score).Msg("no keyword matches, using score band fallback")
	}
	return courses
}
