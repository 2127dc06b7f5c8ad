package payslip

import "time"

// Payslip is the presentation-oriented counterpart to a payout report. The
// identity fields are snapshots taken at generation time so the document
// keeps saying what it said the month it was issued.
type Payslip struct {
	ID              string    `json:"id"`
	EmployeeRef     string    `json:"employeeRef"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	ProfileID       string    `json:"profileId"`
	EmployeeName    string    `json:"employeeName"`
	EmployeeID      string    `json:"employeeId,omitempty"`
	Hub             string    `json:"hub,omitempty"`
	Designation     string    `json:"designation,omitempty"`
	Department      string    `json:"department,omitempty"`
	BankAccount     string    `json:"bankAccount,omitempty"`
	PAN             string    `json:"pan,omitempty"`
	WorkingDays     int       `json:"workingDays"`
	LOPDays         int       `json:"lopDays"`
	Basic           float64   `json:"basic"`
	Conveyance      float64   `json:"conveyance"`
	Incentives      float64   `json:"incentives"`
	OtherAllowances float64   `json:"otherAllowances"`
	TDS             float64   `json:"tds"`
	Advance         float64   `json:"advance"`
	OtherDeductions float64   `json:"otherDeductions"`
	GrossEarnings   float64   `json:"grossEarnings"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetPayable      float64   `json:"netPayable"`
	PDFPath         string    `json:"pdfPath,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SlipSummary is the upload result for salary-slip sheets. It carries the
// same counters as the generic ingestion summary under the field names the
// admin tooling expects, plus per-row reason tags in SkippedIdentifiers.
type SlipSummary struct {
	TotalRows          int      `json:"totalRows"`
	SuccessCount       int      `json:"successCount"`
	FailedCount        int      `json:"failedCount"`
	SkippedIdentifiers []string `json:"skippedIdentifiers"`
}

func (s *SlipSummary) recordSuccess() {
	s.TotalRows++
	s.SuccessCount++
}

func (s *SlipSummary) recordFailure(identifier, tag string) {
	s.TotalRows++
	s.FailedCount++
	// A blank identifier counts as a failure but is never listed: there is
	// nothing useful to show the uploader.
	if identifier == "" {
		return
	}
	s.SkippedIdentifiers = append(s.SkippedIdentifiers, identifier+" "+tag)
}
