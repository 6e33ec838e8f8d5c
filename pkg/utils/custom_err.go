package utils

import "errors"

var (
	ErrInvalidDays      = errors.New("days must be greater than 0")
	ErrInvalidBudget    = errors.New("budget must be greater than 0")
	ErrLocationRequired = errors.New("location is required")
	ErrInvalidBody      = errors.New("invalid request body")
	ErrDatabaseError    = errors.New("database error")
)
