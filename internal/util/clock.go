package util

import "fmt"

const MinutesPerHour = 60

// Clock renders a simulation time as HHH:MM.
func Clock(t int) string {
	return fmt.Sprintf("%03d:%02d", t/MinutesPerHour, t%MinutesPerHour)
}

// Stamp prefixes msg with the rendered clock of t.
func Stamp(t int, msg string) string {
	return Clock(t) + " " + msg
}
