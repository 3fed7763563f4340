package service

const (
	// Calendar walk bounds: 1/1/1900 up to, not including, 1/1/2000.
	EpochYear = 1900
	EndYear   = 2000

	// MaxScanDays caps how many days a century scan may take. Only tests
	// check it; the walk itself stops on the year.
	MaxScanDays = 365001

	DefaultEpsilon = 0.001

	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0 // percent per period
	MaxPeriods      = 600
)
