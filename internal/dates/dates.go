package dates

import "time"

// displayLayout renders a medium date with a short 12-hour time,
// e.g. "9 Mar 2025, 2:05 pm". API responses never expose raw timestamps.
const displayLayout = "2 Jan 2006, 3:04 pm"

// Display formats a timestamp for API responses.
func Display(t time.Time) string {
	return t.Format(displayLayout)
}
