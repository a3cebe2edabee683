// internal/report/report.go
package report

import (
	"encoding/json"
	"time"

	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/domain"
)

// Item is one cost entry as it appears inside a report bucket.
type Item struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// Bucket is a single-key object mapping one category name to its items.
type Bucket map[string][]Item

// Build groups the given cost entries into one bucket per fixed category,
// in domain.Categories order. The output always has exactly five buckets;
// categories without entries get an empty (non-nil) item list. Items keep
// the order in which the entries were passed in, so identical input yields
// identical output. Entries whose category is outside the fixed set are
// not placed in any bucket.
func Build(entries []domain.CostEntry) []Bucket {
	buckets := make([]Bucket, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		items := make([]Item, 0)
		for _, e := range entries {
			if e.Category != cat {
				continue
			}
			items = append(items, Item{
				Sum:         e.Sum,
				Description: e.Description,
				Day:         e.Date.Day(),
			})
		}
		buckets = append(buckets, Bucket{cat: items})
	}
	return buckets
}

// Marshal renders buckets to the canonical payload. Bucket order comes from
// the slice and each bucket has a single key, so the result is byte-stable:
// the stored-report equality check in the storage layer depends on that.
func Marshal(buckets []Bucket) ([]byte, error) {
	return json.Marshal(buckets)
}

// MonthRange returns the inclusive bounds of (year, month) in UTC: the
// first instant of day 1 through 23:59:59.999 of the last calendar day.
// Day 0 of the following month resolves the month length, so February and
// 30-day months never pick up entries from the next month.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 999_000_000, time.UTC)
	return start, end
}
