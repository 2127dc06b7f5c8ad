package identity

import "time"

type Employee struct {
	ID                 string    `json:"id"`
	FHRID              string    `json:"fhrId"`
	EHRID              string    `json:"ehrId,omitempty"`
	EmployeeCode       string    `json:"employeeCode,omitempty"`
	FullName           string    `json:"fullName"`
	Mobile             string    `json:"mobile"`
	Email              string    `json:"email,omitempty"`
	Role               string    `json:"role"`
	Status             string    `json:"status"`
	IsAccountActivated bool      `json:"isAccountActivated"`
	IsApproved         bool      `json:"isApproved"`
	IsProfileCompleted bool      `json:"isProfileCompleted"`
	BaseRate           float64   `json:"baseRate"`
	Conveyance         float64   `json:"conveyance"`
	Hub                string    `json:"hub,omitempty"`
	Designation        string    `json:"designation,omitempty"`
	Department         string    `json:"department,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

type JoiningRequest struct {
	FHRID    string `json:"fhrId"`
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Hub      string `json:"hub"`
	Password string `json:"password"`
}
