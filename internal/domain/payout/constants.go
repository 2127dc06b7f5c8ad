package payout

const (
	StatusGenerated = "Generated"
	StatusApproved  = "Approved"
	StatusPaid      = "Paid"

	// Defaults applied when no salary structure exists for the employee.
	DefaultIncentiveRate = 0.0
	DefaultTDSRate       = 1.0
)
