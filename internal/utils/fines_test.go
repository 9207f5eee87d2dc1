package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testPolicy = PricingPolicy{
	DailyRateCents: map[string]int32{
		"drill": 3000,
	},
	DefaultDailyRateCents: 5000,
	LateFeePerDayCents:    2000,
	RepairSurchargePct:    20,
}

func TestDailyRateFor(t *testing.T) {
	assert.Equal(t, int32(3000), testPolicy.DailyRateFor("drill"))
	assert.Equal(t, int32(5000), testPolicy.DailyRateFor("ladder"))
}

func TestDaysBetween(t *testing.T) {
	t.Run("Same Day", func(t *testing.T) {
		assert.Equal(t, int32(0), DaysBetween(date(2026, 3, 10), date(2026, 3, 10)))
	})

	t.Run("Ignores Time Of Day", func(t *testing.T) {
		a := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
		b := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, int32(1), DaysBetween(a, b))
	})

	t.Run("Negative When Reversed", func(t *testing.T) {
		assert.Equal(t, int32(-3), DaysBetween(date(2026, 3, 13), date(2026, 3, 10)))
	})
}

func TestCalculateBaseCharge(t *testing.T) {
	t.Run("Multi Day", func(t *testing.T) {
		// 5 days at 3000/day
		got := CalculateBaseCharge(date(2026, 3, 10), date(2026, 3, 15), 3000)
		assert.Equal(t, int32(15000), got)
	})

	t.Run("Minimum One Day", func(t *testing.T) {
		got := CalculateBaseCharge(date(2026, 3, 10), date(2026, 3, 10), 3000)
		assert.Equal(t, int32(3000), got)
	})
}

func TestLateDays(t *testing.T) {
	finish := date(2026, 3, 15)

	t.Run("On Time Return Is Not Late", func(t *testing.T) {
		assert.Equal(t, int32(0), LateDays(finish, finish))
	})

	t.Run("Early Return Clamps To Zero", func(t *testing.T) {
		assert.Equal(t, int32(0), LateDays(finish, date(2026, 3, 12)))
	})

	t.Run("Counts Whole Days Past Finish", func(t *testing.T) {
		assert.Equal(t, int32(3), LateDays(finish, date(2026, 3, 18)))
	})
}

func TestComputeReturnCharges(t *testing.T) {
	finish := date(2026, 3, 15)
	base := int32(15000)
	replacement := int32(80000)

	t.Run("On Time Undamaged", func(t *testing.T) {
		charges, err := ComputeReturnCharges(base, finish, finish, replacement, false, false, testPolicy)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), charges.FineCents)
		assert.Equal(t, base, charges.TotalCents)
	})

	t.Run("Early Return No Fine", func(t *testing.T) {
		charges, err := ComputeReturnCharges(base, finish, date(2026, 3, 13), replacement, false, false, testPolicy)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), charges.FineCents)
	})

	t.Run("Late Return", func(t *testing.T) {
		// 3 days late at 2000/day
		charges, err := ComputeReturnCharges(base, finish, date(2026, 3, 18), replacement, false, false, testPolicy)
		assert.NoError(t, err)
		assert.Equal(t, int32(6000), charges.FineCents)
		assert.Equal(t, int32(21000), charges.TotalCents)
	})

	t.Run("Late Fee Grows With Lateness", func(t *testing.T) {
		var prev int32 = -1
		for days := 0; days <= 10; days++ {
			charges, err := ComputeReturnCharges(base, finish, finish.AddDate(0, 0, days), replacement, false, false, testPolicy)
			assert.NoError(t, err)
			assert.Greater(t, charges.FineCents, prev)
			prev = charges.FineCents
		}
	})

	t.Run("Repairable Damage Adds Surcharge", func(t *testing.T) {
		// 20% of 80000
		charges, err := ComputeReturnCharges(base, finish, finish, replacement, true, false, testPolicy)
		assert.NoError(t, err)
		assert.Equal(t, int32(16000), charges.FineCents)
		assert.Equal(t, int32(31000), charges.TotalCents)
	})

	t.Run("Late And Damaged Stack", func(t *testing.T) {
		charges, err := ComputeReturnCharges(base, finish, date(2026, 3, 18), replacement, true, false, testPolicy)
		assert.NoError(t, err)
		assert.Equal(t, int32(6000+16000), charges.FineCents)
	})

	t.Run("Irreparable Bills Replacement Value", func(t *testing.T) {
		charges, err := ComputeReturnCharges(base, finish, finish, replacement, true, true, testPolicy)
		assert.NoError(t, err)
		assert.Equal(t, replacement, charges.FineCents)
		assert.Equal(t, base+replacement, charges.TotalCents)
	})

	t.Run("Irreparable Absorbs Late Fee", func(t *testing.T) {
		// Even 10 days late the fine stays at replacement value.
		charges, err := ComputeReturnCharges(base, finish, date(2026, 3, 25), replacement, true, true, testPolicy)
		assert.NoError(t, err)
		assert.Equal(t, replacement, charges.FineCents)
	})

	t.Run("Irreparable Without Damaged Rejected", func(t *testing.T) {
		_, err := ComputeReturnCharges(base, finish, finish, replacement, false, true, testPolicy)
		assert.Error(t, err)
	})
}
