package timer

import "fmt"

// FormatClock renders a second count as zero-padded MM:SS. Minutes are not
// wrapped at an hour.
func FormatClock(seconds uint) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
