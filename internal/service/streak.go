package service

import (
	"time"

	"github.com/mentora-labs/mentora-go-api/internal/models"
)

// ApplyLogin advances the user's login streak for a login occurring on the
// given day and stamps the last login date. It is pure; persisting the
// returned user is the caller's responsibility. Repeated logins on the same
// day leave the streak untouched, a login on the day after the previous one
// extends it, and any other gap (including a stored date in the future)
// resets it to 1.
func ApplyLogin(user models.User, today time.Time) models.User {
	day := truncateToDay(today)

	switch {
	case user.LastLoginDate == nil:
		user.CurrentStreak = 1
	case sameDay(*user.LastLoginDate, day.AddDate(0, 0, -1)):
		user.CurrentStreak++
	case sameDay(*user.LastLoginDate, day):
		// same-day repeat login
	default:
		user.CurrentStreak = 1
	}

	user.LastLoginDate = &day
	return user
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
