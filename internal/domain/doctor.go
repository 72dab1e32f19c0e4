package domain

import "time"

// Doctor a clinic staff member with an agenda
type Doctor struct {
	ID        string
	Name      string
	Email     string
	Specialty string
}

// InsurancePlan an insurance plan accepted by the clinic
type InsurancePlan struct {
	ID     string
	Name   string
	Active bool
}

// InsuranceDay a weekday reserved for a single insurance plan.
// A nil InsurancePlanID means the weekday is open to every plan.
type InsuranceDay struct {
	Weekday         time.Weekday
	InsurancePlanID *string
}

// InsurancePlanFor returns the exclusive plan of the weekday of date, if any
func InsurancePlanFor(days []InsuranceDay, date time.Time) *string {
	for _, d := range days {
		if d.Weekday == date.Weekday() {
			return d.InsurancePlanID
		}
	}
	return nil
}

// FullWeek returns one entry per weekday, Sunday first.
// Weekdays absent from days are open to every plan; for duplicates the last entry wins.
func FullWeek(days []InsuranceDay) []InsuranceDay {
	week := make([]InsuranceDay, 7)
	for i := range week {
		week[i].Weekday = time.Weekday(i)
	}
	for _, d := range days {
		if d.Weekday < time.Sunday || d.Weekday > time.Saturday {
			continue
		}
		week[d.Weekday].InsurancePlanID = d.InsurancePlanID
	}
	return week
}

// AllowsPlan reports whether a booking with planID is allowed on a day
// whose exclusive plan is exclusivePlan
func AllowsPlan(exclusivePlan, planID *string) bool {
	if exclusivePlan == nil {
		return true
	}
	return planID != nil && *planID == *exclusivePlan
}
