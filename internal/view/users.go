package view

import (
	"sort"
	"strings"
	"time"

	"tikang-admin/internal/models"
)

// UserBuckets are the display views over the fetched user lists.
type UserBuckets struct {
	// All is every non-admin user, unverified before verified, stable.
	All []models.User
	// New is non-admin users created within the trailing 7 days, inclusive.
	New []models.User
	// Blocked is users whose blocked flag decoded true.
	Blocked []models.User
}

// BucketUsers derives the three views from the /all-users list.
func BucketUsers(users []models.User, now time.Time) UserBuckets {
	var buckets UserBuckets
	windowStart := now.AddDate(0, 0, -models.NewUserWindowDays)

	for _, u := range users {
		if u.Blocked.Bool() {
			buckets.Blocked = append(buckets.Blocked, u)
		}
		if u.IsAdmin() {
			continue
		}
		buckets.All = append(buckets.All, u)
		created := u.CreatedAt.Time
		if !created.Before(windowStart) && !created.After(now) {
			buckets.New = append(buckets.New, u)
		}
	}

	// Unverified accounts float to the top for review; the sort is stable so
	// ties keep their fetched order.
	sort.SliceStable(buckets.All, func(i, j int) bool {
		return !buckets.All[i].UserVerified.Bool() && buckets.All[j].UserVerified.Bool()
	})

	return buckets
}

// SortUsersByLastLogin orders a copy of the list by most recent login first.
func SortUsersByLastLogin(users []models.User) []models.User {
	sorted := append([]models.User(nil), users...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoginTime.After(sorted[j].LoginTime.Time)
	})
	return sorted
}

// SortReportsByNewest orders a copy of the reports descending by creation.
func SortReportsByNewest(reports []models.UserReport) []models.UserReport {
	sorted := append([]models.UserReport(nil), reports...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	return sorted
}

// SearchUsers filters by a case-insensitive substring match on name, email
// or phone.
func SearchUsers(users []models.User, query string) []models.User {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users
	}
	var matched []models.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FullName), query) ||
			strings.Contains(strings.ToLower(u.Email), query) ||
			strings.Contains(u.Phone, query) {
			matched = append(matched, u)
		}
	}
	return matched
}

// CountByType tallies users per user_type for the metric cards.
func CountByType(users []models.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.UserType]++
	}
	return counts
}
