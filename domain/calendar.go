package domain

import "fmt"

// Weekdays are numbered 1..7 starting on Sunday.
const (
	Sunday   = 1
	Monday   = 2
	Saturday = 7
)

// Date is the state of the day-by-day calendar walk. DaysInMonth always
// matches Month and Year.
type Date struct {
	Day         int
	Month       int
	Year        int
	Weekday     int
	DaysInMonth int
}

// Epoch returns 1/1/1900, which was a Monday.
func Epoch() Date {
	return Date{Day: 1, Month: 1, Year: 1900, Weekday: Monday, DaysInMonth: 31}
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// MonthStartsOnSunday reports whether d is the first of a month falling on a Sunday.
func (d Date) MonthStartsOnSunday() bool {
	return d.Weekday == Sunday && d.Day == 1
}

type DayRecord struct {
	Date                Date
	MonthStartsOnSunday bool
}

type ScanResult struct {
	Days        []DayRecord
	SundayCount int
}
