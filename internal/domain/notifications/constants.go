package notifications

const (
	TitleDailyReport     = "New Daily Performance Report"
	TitlePayoutReady     = "Monthly Payout Generated"
	TitlePayslipReady    = "Salary Slip Generated"
	TitleAdvanceApproved = "Advance Request Approved"
	TitleAdvanceRejected = "Advance Request Rejected"
)
