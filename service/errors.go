package service

import "errors"

var (
	ErrInvalidPeriods = errors.New("invalid argument: periods must be positive")
	ErrInvalidEpsilon = errors.New("invalid argument: epsilon must be positive")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidRate    = errors.New("invalid rate")
	ErrNoConvergence  = errors.New("payment search did not converge")
)
