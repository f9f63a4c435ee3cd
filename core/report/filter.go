package report

import (
	"strings"

	"reconciler/core/reconcile"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// Filter returns the results matching a status and a free-text search.
// An empty status or "all" keeps every status. The search is a case-insensitive
// substring match over the reference key, the reason and every A/B value.
func Filter(results []reconcile.Result, status, search string) []reconcile.Result {
	needle := strings.ToLower(search)
	filtered := make([]reconcile.Result, 0, len(results))
	for _, r := range results {
		if status != "" && status != StatusAll && string(r.Status) != status {
			continue
		}
		if needle != "" && !matchesSearch(r, needle) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func matchesSearch(r reconcile.Result, needle string) bool {
	if strings.Contains(strings.ToLower(r.ReferenceKey), needle) ||
		strings.Contains(strings.ToLower(r.Reason), needle) {
		return true
	}
	for _, row := range []reconcile.Row{r.DataA, r.DataB} {
		for _, v := range row {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
	}
	return false
}

// ValidStatus reports whether s is "all", empty, or a known result status.
func ValidStatus(s string) bool {
	if s == "" || s == StatusAll {
		return true
	}
	for _, st := range reconcile.Statuses {
		if string(st) == s {
			return true
		}
	}
	return false
}
