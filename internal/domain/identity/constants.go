package identity

const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusPending   = "Pending"
	StatusSuspended = "Suspended"
	StatusRejected  = "Rejected"
)
