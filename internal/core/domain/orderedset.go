package domain

// Dedup removes duplicates from items while preserving first-seen order.
// It always returns a non-nil slice and never mutates its input.
// Dedup is idempotent: applying it to its own output yields an equal slice.
func Dedup(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
