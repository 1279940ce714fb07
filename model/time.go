package model

import (
	"fmt"
	"time"
)

// TimeAgo renders the compact relative timestamp shown on post cards.
// Buckets follow the feed card convention: seconds collapse to "now",
// then minutes, hours, days and weeks.
func TimeAgo(t time.Time, now time.Time) string {
	diff := int(now.Sub(t).Seconds())
	if diff < 60 {
		return "now"
	}
	if diff < 3600 {
		return fmt.Sprintf("%dm", diff/60)
	}
	if diff < 86400 {
		return fmt.Sprintf("%dh", diff/3600)
	}
	if diff < 604800 {
		return fmt.Sprintf("%dd", diff/86400)
	}
	return fmt.Sprintf("%dw", diff/604800)
}
