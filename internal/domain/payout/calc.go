package payout

import (
	"math"
	"time"
)

type CalcInput struct {
	Month          int
	Year           int
	WorkingDays    int
	TotalDelivered int
	TotalPicked    int
	TotalOFD       int
	BaseRate       float64
	Conveyance     float64
	IncentiveRate  float64
	TDSRate        float64
	TotalAdvance   float64
}

type Breakdown struct {
	WorkingDays     int
	PaidDays        int
	LOPDays         int
	TotalDelivered  int
	TotalPicked     int
	TotalOFD        int
	Basic           float64
	Conveyance      float64
	Incentives      float64
	FinalBaseAmount float64
	TDS             float64
	TotalAdvance    float64
	GrossEarnings   float64
	TotalDeductions float64
	NetPayable      float64
}

// MonthBounds returns the first and last instant of a calendar month. The
// end bound is 23:59:59 of the last day, so a BETWEEN-style query covers the
// whole month including leap-year Februaries.
func MonthBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func DaysInMonth(month, year int) int {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, 1, -1).Day()
}

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Compute derives the full payout breakdown for one employee and month.
// Days without a report are unworked: lopDays = calendar days - workingDays.
// The TDS base (finalBaseAmount) is basic + incentives and excludes
// conveyance, while grossEarnings includes it. That asymmetry is payroll
// policy, not an accident.
func Compute(in CalcInput) Breakdown {
	basic := float64(in.WorkingDays) * in.BaseRate
	incentives := float64(in.TotalDelivered) * in.IncentiveRate
	finalBase := basic + incentives
	tds := Round2(finalBase * in.TDSRate / 100)
	gross := basic + in.Conveyance + incentives
	deductions := tds + in.TotalAdvance

	return Breakdown{
		WorkingDays:     in.WorkingDays,
		PaidDays:        in.WorkingDays,
		LOPDays:         DaysInMonth(in.Month, in.Year) - in.WorkingDays,
		TotalDelivered:  in.TotalDelivered,
		TotalPicked:     in.TotalPicked,
		TotalOFD:        in.TotalOFD,
		Basic:           basic,
		Conveyance:      in.Conveyance,
		Incentives:      incentives,
		FinalBaseAmount: finalBase,
		TDS:             tds,
		TotalAdvance:    in.TotalAdvance,
		GrossEarnings:   gross,
		TotalDeductions: deductions,
		NetPayable:      Round2(gross - deductions),
	}
}
