package models

import "time"

type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// SeasonForMonth is the northern hemisphere meteorological season.
func SeasonForMonth(month time.Month) Season {
	switch month {
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	case time.September, time.October, time.November:
		return Autumn
	}
	return Winter
}
