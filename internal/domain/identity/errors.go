package identity

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMobileTaken      = errors.New("mobile number already registered")
	ErrFHRIDTaken       = errors.New("fhr id already registered")
	ErrLoginNotAllowed  = errors.New("account is not activated or not active")
	ErrBadCredentials   = errors.New("invalid mobile number or password")
	ErrOTPInvalid       = errors.New("otp code is invalid or expired")
)
