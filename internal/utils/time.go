package utils

import (
	"fmt"
	"time"
)

// HumanTimeFormat converts time into a human readable format.
func HumanTimeFormat(t time.Time) string {
	return humanDuration(time.Since(t))
}

func humanDuration(d time.Duration) string {
	switch {
	case d.Hours() >= 48:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	case d.Hours() >= 24:
		return "a day ago"
	case d.Hours() >= 2:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d.Hours() >= 1:
		return "an hour ago"
	case d.Minutes() >= 2:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d.Minutes() >= 1:
		return "a minute ago"
	case d.Seconds() >= 5:
		return fmt.Sprintf("%d seconds ago", int(d.Seconds()))
	}
	return "just now"
}
