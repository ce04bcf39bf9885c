package widget

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// visibleRows returns the rows a popup shows for the given filter query.
// An empty query keeps every row including separators; a non-empty query
// keeps fuzzy matches only, falling back to substring matching when the
// fuzzy pass finds nothing.
func visibleRows(rows []row, query string) []row {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		out := make([]row, len(rows))
		copy(out, rows)
		return out
	}

	labels := make([]string, 0, len(rows))
	candidates := make([]row, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		labels = append(labels, r.rowLabel())
		candidates = append(candidates, r)
	}

	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		out := make([]row, 0, len(matched))
		for i, r := range candidates {
			if _, ok := matched[i]; ok {
				out = append(out, r)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	lower := strings.ToLower(trimmed)
	out := make([]row, 0, len(candidates))
	for _, r := range candidates {
		if strings.Contains(strings.ToLower(r.rowLabel()), lower) {
			out = append(out, r)
		}
	}
	return out
}

// bestMatchIndex picks the row the highlight should land on after a filter
// change: an exact label match first, then a prefix match, then the first
// row.
func bestMatchIndex(rows []row, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(rows) == 0 {
		return 0
	}
	for i, r := range rows {
		if strings.EqualFold(r.rowLabel(), trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, r := range rows {
		if strings.HasPrefix(strings.ToLower(r.rowLabel()), lower) {
			return i
		}
	}
	return 0
}
