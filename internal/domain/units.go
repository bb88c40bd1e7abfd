package domain

import "fmt"

const metersPerMile = 0.000621371

// MetersToMiles converts a distance in meters to miles.
func MetersToMiles(meters float64) float64 {
	return meters * metersPerMile
}

// MetersToKilometers converts a distance in meters to kilometers.
func MetersToKilometers(meters float64) float64 {
	return meters / 1000
}

// FormatDuration renders a duration in seconds as "H hour(s) M minute(s)",
// dropping the hour part when it is zero. English only; each unit is
// pluralized independently ("1 hour 0 minutes", "2 hours 1 minute").
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	if hours > 0 {
		hourWord := "hour"
		if hours > 1 {
			hourWord = "hours"
		}
		minuteWord := "minute"
		if minutes != 1 {
			minuteWord = "minutes"
		}
		return fmt.Sprintf("%d %s %d %s", hours, hourWord, minutes, minuteWord)
	}

	minuteWord := "minute"
	if minutes != 1 {
		minuteWord = "minutes"
	}
	return fmt.Sprintf("%d %s", minutes, minuteWord)
}
