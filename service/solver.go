package service

import (
	"context"
	"fmt"
	"math"

	"calcdrills/domain"
)

// SolverOptions tune the payment searches. A zero MaxIterations leaves the
// search unbounded.
type SolverOptions struct {
	Epsilon       float64
	MaxIterations int
}

func DefaultSolverOptions() SolverOptions {
	return SolverOptions{Epsilon: DefaultEpsilon}
}

func (o SolverOptions) validate(terms domain.LoanTerms) error {
	if terms.Periods <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPeriods, terms.Periods)
	}
	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) {
		return fmt.Errorf("%w: got %g", ErrInvalidEpsilon, o.Epsilon)
	}
	return nil
}

func (o SolverOptions) exhausted(iterations int) bool {
	return o.MaxIterations > 0 && iterations >= o.MaxIterations
}

// ctxCheckInterval is how many iterations run between context checks.
const ctxCheckInterval = 4096

func checkContext(ctx context.Context, iterations int) error {
	if iterations%ctxCheckInterval != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("payment search stopped after %d iterations: %w", iterations, err)
	}
	return nil
}

// SolveBruteForce starts from principal/n and raises the payment by
// epsilon/10 until the ending balance is within epsilon of zero or turns
// negative. Once the balance goes negative the search stops, even when it
// is still further than epsilon from zero.
func SolveBruteForce(ctx context.Context, terms domain.LoanTerms, opts SolverOptions) (domain.SolveResult, error) {
	if err := opts.validate(terms); err != nil {
		return domain.SolveResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.SolveResult{}, err
	}

	payment := terms.Principal / float64(terms.Periods)
	balance := EndBalance(terms.Principal, terms.Rate, terms.Periods, payment)
	iterations := 1

	for math.Abs(balance) >= opts.Epsilon && balance >= 0 {
		if opts.exhausted(iterations) {
			return domain.SolveResult{}, fmt.Errorf("%w: brute force after %d iterations", ErrNoConvergence, iterations)
		}
		if err := checkContext(ctx, iterations); err != nil {
			return domain.SolveResult{}, err
		}
		payment += opts.Epsilon / 10
		balance = EndBalance(terms.Principal, terms.Rate, terms.Periods, payment)
		iterations++
	}

	return domain.SolveResult{Strategy: domain.BruteForce, Payment: payment, Iterations: iterations}, nil
}

// SolveBisection halves the bracket [principal/n, principal] on the sign of
// the ending balance until its magnitude drops under epsilon. The bracket
// is assumed to hold the answer and is not re-checked. Both searches stop
// early with the context's error once ctx is done.
func SolveBisection(ctx context.Context, terms domain.LoanTerms, opts SolverOptions) (domain.SolveResult, error) {
	if err := opts.validate(terms); err != nil {
		return domain.SolveResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.SolveResult{}, err
	}

	low, high := terms.Principal/float64(terms.Periods), terms.Principal
	mid := (low + high) / 2
	balance := EndBalance(terms.Principal, terms.Rate, terms.Periods, mid)
	iterations := 1

	for math.Abs(balance) >= opts.Epsilon {
		if opts.exhausted(iterations) {
			return domain.SolveResult{}, fmt.Errorf("%w: bisection after %d iterations", ErrNoConvergence, iterations)
		}
		if err := checkContext(ctx, iterations); err != nil {
			return domain.SolveResult{}, err
		}
		if balance > 0 {
			low = mid
		} else {
			high = mid
		}
		mid = (low + high) / 2
		balance = EndBalance(terms.Principal, terms.Rate, terms.Periods, mid)
		iterations++
	}

	return domain.SolveResult{Strategy: domain.Bisection, Payment: mid, Iterations: iterations}, nil
}
