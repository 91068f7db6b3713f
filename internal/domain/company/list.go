package company

import "strings"

// Separator joins the items of a delimited text field.
const Separator = "|"

// SplitList decodes a delimited text field into its ordered items.
// Empty text yields an empty (non-nil) slice, never a single empty item.
func SplitList(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, Separator)
}

// JoinList encodes items into a delimited text field.
// Separator characters inside an item are replaced with "/" so the field round-trips.
func JoinList(items []string) string {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		clean = append(clean, strings.ReplaceAll(it, Separator, "/"))
	}
	return strings.Join(clean, Separator)
}
