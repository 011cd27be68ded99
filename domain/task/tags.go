package task

import "strings"

// AddTag appends the trimmed tag unless it is empty or already present
// (exact, case-sensitive match). The second result reports whether it was added.
func AddTag(tags []string, tag string) ([]string, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" || HasTag(tags, tag) {
		return tags, false
	}
	return append(tags, tag), true
}

// RemoveTag drops the entry equal to tag.
func RemoveTag(tags []string, tag string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// HasTag reports whether tags contains tag exactly.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeTags trims entries and drops empty values and later duplicates,
// keeping first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out, _ = AddTag(out, t)
	}
	return out
}
