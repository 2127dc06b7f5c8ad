package advance

import "time"

type Request struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Amount     float64    `json:"amount"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
