package service

import "calcdrills/domain"

// IsLeapYear applies the Gregorian rule. && binds tighter than ||.
func IsLeapYear(year int) bool {
	return year%400 == 0 || year%4 == 0 && year%100 != 0
}

// DaysInMonth returns the length of month in year, or 0 if month is not 1..12.
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// Advance returns the day after d, with the weekday and month length
// moved along with it.
func Advance(d domain.Date) domain.Date {
	if d.Weekday < domain.Saturday {
		d.Weekday++
	} else {
		d.Weekday = domain.Sunday
	}

	if d.Day < d.DaysInMonth {
		d.Day++
		return d
	}

	d.Day = 1
	if d.Month == 12 {
		d.Month = 1
		d.Year++
	} else {
		d.Month++
	}
	d.DaysInMonth = DaysInMonth(d.Month, d.Year)
	return d
}

// ScanCentury walks from start one day at a time while the year is below
// endYear, handing every day to visit (which may be nil). It returns how
// many of those days were the first of a month falling on a Sunday.
func ScanCentury(start domain.Date, endYear int, visit func(domain.DayRecord)) int {
	sundays := 0
	for d := start; d.Year < endYear; d = Advance(d) {
		rec := domain.DayRecord{Date: d, MonthStartsOnSunday: d.MonthStartsOnSunday()}
		if rec.MonthStartsOnSunday {
			sundays++
		}
		if visit != nil {
			visit(rec)
		}
	}
	return sundays
}
