package view

import (
	"sort"

	"tikang-admin/internal/models"
)

// PropertyBuckets split listings by verification state. Pending listings
// come first in review flows.
type PropertyBuckets struct {
	Verified []models.Property
	Pending  []models.Property
}

// SortPropertiesByNewest orders a copy descending by creation time.
func SortPropertiesByNewest(properties []models.Property) []models.Property {
	sorted := append([]models.Property(nil), properties...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	return sorted
}

// BucketProperties derives the verification views from a fetched list.
func BucketProperties(properties []models.Property) PropertyBuckets {
	var buckets PropertyBuckets
	for _, p := range properties {
		if p.Verified.Bool() {
			buckets.Verified = append(buckets.Verified, p)
		} else {
			buckets.Pending = append(buckets.Pending, p)
		}
	}
	return buckets
}
