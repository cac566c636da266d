package library

import "strings"

// ParseEntry splits a catalog entry such as "Squat (Legs)" into the exercise
// name and its muscle group. The muscle group is empty if the entry has no
// parenthesised suffix.
func ParseEntry(entry string) (name, muscleGroup string) {
	entry = strings.TrimSpace(entry)

	before, after, found := strings.Cut(entry, " (")
	if !found {
		before, after, found = strings.Cut(entry, "(")
	}

	if !found {
		return entry, ""
	}

	return strings.TrimSpace(before), strings.TrimSpace(strings.TrimSuffix(after, ")"))
}

// FormatEntry is the inverse of ParseEntry.
func FormatEntry(name, muscleGroup string) string {
	if muscleGroup == "" {
		return name
	}

	return name + " (" + muscleGroup + ")"
}
