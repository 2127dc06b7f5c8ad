package payout

import "time"

// SalaryStructure is an optional per-employee override of compensation
// parameters. When absent the engine falls back to the employee's own
// baseline and the system defaults.
type SalaryStructure struct {
	EmployeeID      string  `json:"employeeId"`
	BaseRate        float64 `json:"baseRate"`
	Conveyance      float64 `json:"conveyance"`
	OtherAllowances float64 `json:"otherAllowances"`
	IncentiveRate   float64 `json:"incentiveRate"`
	TDSRate         float64 `json:"tdsRate"`
}

// Report is a persisted payout snapshot for one (employee, month, year).
// Identity fields are captured at computation time on purpose: a payout must
// keep showing the employee's name and hub as of that month even if the
// identity record is edited later.
type Report struct {
	ID              string    `json:"id,omitempty"`
	EmployeeRef     string    `json:"employeeRef"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	ProfileID       string    `json:"profileId"`
	Name            string    `json:"name"`
	Hub             string    `json:"hub"`
	EmployeeName    string    `json:"employeeName"`
	EmployeeID      string    `json:"employeeId"`
	Designation     string    `json:"designation"`
	Department      string    `json:"department"`
	WorkingDays     int       `json:"workingDays"`
	PaidDays        int       `json:"paidDays"`
	LOPDays         int       `json:"lopDays"`
	DeliveredCount  int       `json:"deliveredCount"`
	PickedCount     int       `json:"pickedCount"`
	OFDCount        int       `json:"ofdCount"`
	BaseRate        float64   `json:"baseRate"`
	Basic           float64   `json:"basic"`
	Conveyance      float64   `json:"conveyance"`
	Incentives      float64   `json:"incentives"`
	FinalBaseAmount float64   `json:"finalBaseAmount"`
	TDS             float64   `json:"tds"`
	Advance         float64   `json:"advance"`
	GrossEarnings   float64   `json:"grossEarnings"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetPayable      float64   `json:"netPayable"`
	Status          string    `json:"status"`
	Remark          string    `json:"remark,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// ReportAggregate is the summed view of one employee's daily reports inside
// a period.
type ReportAggregate struct {
	WorkingDays    int
	TotalDelivered int
	TotalPicked    int
	TotalOFD       int
}
