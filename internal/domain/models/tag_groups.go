package model

import "sort"

// TagGroups maps a tag group to the tag names it contains.
type TagGroups map[string][]string

// Flatten collects every tag name across all groups.
func (g TagGroups) Flatten() []string {
	var names []string
	for _, tags := range g {
		names = append(names, tags...)
	}
	return names
}

// SortValues orders each group's names alphabetically, in place.
func (g TagGroups) SortValues() {
	for _, tags := range g {
		sort.Strings(tags)
	}
}
