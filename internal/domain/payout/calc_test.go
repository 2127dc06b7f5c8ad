package payout

import (
	"testing"
	"time"
)

func TestComputeBreakdown(t *testing.T) {
	b := Compute(CalcInput{
		Month:          1,
		Year:           2025,
		WorkingDays:    20,
		TotalDelivered: 500,
		BaseRate:       15,
		Conveyance:     500,
		IncentiveRate:  2,
		TDSRate:        1,
		TotalAdvance:   200,
	})

	if b.Basic != 300 {
		t.Fatalf("basic = %v, want 300", b.Basic)
	}
	if b.Incentives != 1000 {
		t.Fatalf("incentives = %v, want 1000", b.Incentives)
	}
	if b.FinalBaseAmount != 1300 {
		t.Fatalf("finalBaseAmount = %v, want 1300", b.FinalBaseAmount)
	}
	if b.TDS != 13.00 {
		t.Fatalf("tds = %v, want 13.00", b.TDS)
	}
	if b.GrossEarnings != 1800 {
		t.Fatalf("grossEarnings = %v, want 1800", b.GrossEarnings)
	}
	if b.TotalDeductions != 213.00 {
		t.Fatalf("totalDeductions = %v, want 213.00", b.TotalDeductions)
	}
	if b.NetPayable != 1587.00 {
		t.Fatalf("netPayable = %v, want 1587.00", b.NetPayable)
	}
	if b.LOPDays != 11 {
		t.Fatalf("lopDays = %v, want 11", b.LOPDays)
	}
	if b.PaidDays != 20 {
		t.Fatalf("paidDays = %v, want 20", b.PaidDays)
	}
}

func TestComputeTDSBaseExcludesConveyance(t *testing.T) {
	b := Compute(CalcInput{
		Month:       6,
		Year:        2025,
		WorkingDays: 10,
		BaseRate:    100,
		Conveyance:  1000,
		TDSRate:     10,
	})

	// TDS on basic+incentives only; conveyance is taxed nowhere.
	if b.TDS != 100 {
		t.Fatalf("tds = %v, want 100", b.TDS)
	}
	if b.GrossEarnings != 2000 {
		t.Fatalf("grossEarnings = %v, want 2000", b.GrossEarnings)
	}
}

func TestComputeZeroWorkingDays(t *testing.T) {
	b := Compute(CalcInput{Month: 4, Year: 2025, BaseRate: 15, TDSRate: 1})

	if b.Basic != 0 || b.TDS != 0 || b.NetPayable != 0 {
		t.Fatalf("expected all-zero breakdown, got %+v", b)
	}
	if b.LOPDays != 30 {
		t.Fatalf("lopDays = %v, want 30", b.LOPDays)
	}
}

func TestDaysInMonthLeapYear(t *testing.T) {
	if got := DaysInMonth(2, 2024); got != 29 {
		t.Fatalf("feb 2024 = %v, want 29", got)
	}
	if got := DaysInMonth(2, 2025); got != 28 {
		t.Fatalf("feb 2025 = %v, want 28", got)
	}
	if got := DaysInMonth(12, 2025); got != 31 {
		t.Fatalf("dec 2025 = %v, want 31", got)
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2, 2024)

	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(13.126); got != 13.13 {
		t.Fatalf("round 13.126 = %v, want 13.13", got)
	}
	if got := Round2(1586.999); got != 1587.00 {
		t.Fatalf("round 1586.999 = %v, want 1587.00", got)
	}
}
