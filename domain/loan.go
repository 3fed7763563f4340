package domain

type Strategy string

const (
	BruteForce Strategy = "brute_force"
	Bisection  Strategy = "bisection"
)

// LoanTerms are the inputs of a payment search. Rate is a percentage per
// period, e.g. 12 for 12%.
type LoanTerms struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Periods   int     `json:"periods"`
}

type SolveResult struct {
	Strategy   Strategy `json:"strategy"`
	Payment    float64  `json:"payment"`
	Iterations int      `json:"iterations"`
}

type SolveReport struct {
	Terms      LoanTerms   `json:"terms"`
	Epsilon    float64     `json:"epsilon"`
	BruteForce SolveResult `json:"brute_force"`
	Bisection  SolveResult `json:"bisection"`
}
