package tracker

import "strings"

// BlockedLabel marks a story which cannot progress.
const BlockedLabel = "blocked"

// SplitLabels splits a comma-separated label list, dropping blank entries.
func SplitLabels(labels string) []string {
	var out []string
	for _, l := range strings.Split(labels, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// AppendLabel adds label to the end of the list.
func AppendLabel(labels, label string) string {
	return strings.Join(append(SplitLabels(labels), label), ",")
}

// RemoveLabel drops every occurrence of label from the list.
func RemoveLabel(labels, label string) string {
	var out []string
	for _, l := range SplitLabels(labels) {
		if l != label {
			out = append(out, l)
		}
	}
	return strings.Join(out, ",")
}

func HasLabel(labels, label string) bool {
	for _, l := range SplitLabels(labels) {
		if l == label {
			return true
		}
	}
	return false
}
