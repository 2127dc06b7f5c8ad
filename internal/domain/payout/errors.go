package payout

import "errors"

var (
	ErrReportNotFound    = errors.New("payout report not found")
	ErrInvalidPeriod     = errors.New("month must be 1-12 and year four digits")
	ErrInvalidTransition = errors.New("payout status can only move Generated -> Approved -> Paid")
)
