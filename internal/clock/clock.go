// Package clock is the portal's single source of "today". Every calendar
// comparison (the once-per-day challenge rule, streak counting, export
// dates) goes through the same fixed timezone so a student near midnight
// UTC never sees two different days in one request.
package clock

import "time"

const dateLayout = "2006-01-02"

var location *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		loc = time.FixedZone("JST", 9*60*60)
	}
	location = loc
}

// Location returns the canonical portal timezone.
func Location() *time.Location {
	return location
}

// Today returns the current calendar date as "2006-01-02".
func Today() string {
	return DateOf(time.Now())
}

// DateOf returns t's calendar date in the canonical timezone.
func DateOf(t time.Time) string {
	return t.In(location).Format(dateLayout)
}
