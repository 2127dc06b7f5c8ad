package advance

import "errors"

var (
	ErrRequestNotFound = errors.New("advance request not found")
	ErrAlreadyDecided  = errors.New("advance request already decided")
	ErrInvalidAmount   = errors.New("advance amount must be positive")
)
