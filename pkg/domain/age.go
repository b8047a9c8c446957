package domain

import "time"

// AgeInYears returns the whole-year age of a person born on birthDate as of
// the reference time. Calendar-aware: the year difference is decremented when
// the birthday has not yet occurred in the reference year.
//
// Example:
//
//	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
//	AgeInYears(dob, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)) // 24
//	AgeInYears(dob, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) // 25
func AgeInYears(birthDate, now time.Time) int {
	birthDate = birthDate.UTC()
	now = now.UTC()
	years := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// IsAtLeast reports whether the person born on birthDate has reached the given
// age at the reference time. Uses calendar arithmetic (AddDate) for accurate
// birthday-boundary handling; someone is "at least 18" on their 18th birthday.
func IsAtLeast(years int, birthDate, now time.Time) bool {
	threshold := birthDate.UTC().AddDate(years, 0, 0)
	return !now.UTC().Before(threshold)
}

// WithinTrailingYears reports whether t falls inside the trailing window of
// the given number of years ending at now, inclusive at both bounds.
func WithinTrailingYears(years int, t, now time.Time) bool {
	start := now.UTC().AddDate(-years, 0, 0)
	t = t.UTC()
	return !t.Before(start) && !t.After(now.UTC())
}
