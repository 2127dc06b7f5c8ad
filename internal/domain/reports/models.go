package reports

import "time"

// DailyReport is one day's delivery and pickup counters for one employee.
// At most one exists per (employee, date); re-uploads overwrite.
type DailyReport struct {
	ID         string    `json:"id,omitempty"`
	EmployeeID string    `json:"employeeId"`
	ReportDate time.Time `json:"reportDate"`
	Delivered  int       `json:"delivered"`
	Picked     int       `json:"picked"`
	OFD        int       `json:"ofd"`
	OFP        int       `json:"ofp"`
	HubName    string    `json:"hubName,omitempty"`
}
