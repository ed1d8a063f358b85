package repository

import (
	"strings"
	"time"
)

// Date-only fields are stored as ISO strings (2006-01-02) in every backend,
// so range checks reduce to lexicographic comparison.
const dateLayout = "2006-01-02"

func today() string {
	return time.Now().UTC().Format(dateLayout)
}

func dateIn(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(dateLayout)
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}
