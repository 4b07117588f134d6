package calendar

import "time"

const dateLayout = "2006-01-02"

// monthGridStart returns the first cell of the 6x7 month grid: the
// Sunday on or before the first of the month.
func monthGridStart(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// weekStart returns the Sunday on or before the given day, at midnight.
func weekStart(day time.Time) time.Time {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}
