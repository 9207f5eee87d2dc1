package utils

import (
	"fmt"
	"time"
)

// PricingPolicy carries the shop's rate table and penalty rates. Base and
// late-fee formulas are configuration, not code; the calculator only
// combines resolved amounts.
type PricingPolicy struct {
	DailyRateCents        map[string]int32 // per-day rental rate by tool category
	DefaultDailyRateCents int32            // fallback for unlisted categories
	LateFeePerDayCents    int32
	RepairSurchargePct    int32 // percent of replacement value charged for a repairable damage
}

// DailyRateFor resolves the per-day rental rate for a tool category.
func (p PricingPolicy) DailyRateFor(category string) int32 {
	if rate, ok := p.DailyRateCents[category]; ok {
		return rate
	}
	return p.DefaultDailyRateCents
}

// ReturnCharges is the monetary outcome of processing a return.
type ReturnCharges struct {
	FineCents  int32
	TotalCents int32
}

// DaysBetween returns the whole-day difference between two dates,
// ignoring the time-of-day component. Negative when b precedes a.
func DaysBetween(a, b time.Time) int32 {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int32(bd.Sub(ad).Hours() / 24)
}

// RentalDays is the number of chargeable days for a rental period,
// never less than one.
func RentalDays(start, finish time.Time) int32 {
	days := DaysBetween(start, finish)
	if days < 1 {
		days = 1
	}
	return days
}

// CalculateBaseCharge computes the base rental charge for the agreed period.
func CalculateBaseCharge(start, finish time.Time, dailyRateCents int32) int32 {
	return RentalDays(start, finish) * dailyRateCents
}

// LateDays counts whole days past the agreed finish date. Returning on the
// finish date itself is not late; early returns clamp to zero.
func LateDays(finish, returned time.Time) int32 {
	days := DaysBetween(finish, returned)
	if days < 0 {
		return 0
	}
	return days
}

// ComputeReturnCharges derives the fine and total for a processed return.
//
// An irreparable loss is billed at the full replacement value and absorbs
// every other penalty: the shop loses the asset outright, so lateness and
// repair surcharges no longer apply. Otherwise the fine is the late fee
// plus, for a repairable damage, a surcharge proportional to the
// replacement value.
func ComputeReturnCharges(baseCents int32, finish, returned time.Time, replacementValueCents int32, damaged, irreparable bool, policy PricingPolicy) (ReturnCharges, error) {
	if irreparable && !damaged {
		return ReturnCharges{}, fmt.Errorf("irreparable return must also be damaged")
	}

	var fine int32
	if irreparable {
		fine = replacementValueCents
	} else {
		fine = LateDays(finish, returned) * policy.LateFeePerDayCents
		if damaged {
			fine += replacementValueCents * policy.RepairSurchargePct / 100
		}
	}

	return ReturnCharges{
		FineCents:  fine,
		TotalCents: baseCents + fine,
	}, nil
}
