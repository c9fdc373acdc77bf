package models

import "fmt"

// FormatDuration renders a session duration in minutes as a short display
// string. A nil duration means the session never recorded one.
func FormatDuration(minutes *int) string {
	if minutes == nil {
		return "Duration not recorded"
	}
	mins := *minutes
	if mins < 1 {
		return "1 min"
	}
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}
	hours := mins / 60
	remainder := mins % 60
	if remainder > 0 {
		return fmt.Sprintf("%dh %dm", hours, remainder)
	}
	return fmt.Sprintf("%dh", hours)
}
