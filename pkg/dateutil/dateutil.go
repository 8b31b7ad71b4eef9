package dateutil

import (
	"time"
)

// Age calculates the age in whole years at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// YearsBetweenAges returns the accumulation horizon from the current age to the retirement age,
// or 0 when retirement is not after the current age.
func YearsBetweenAges(currentAge, retirementAge int) int {
	if retirementAge <= currentAge {
		return 0
	}
	return retirementAge - currentAge
}

// RetirementDate returns the date the investor reaches the retirement age
func RetirementDate(birthDate time.Time, retirementAge int) time.Time {
	return birthDate.AddDate(retirementAge, 0, 0)
}
