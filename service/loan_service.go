package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"calcdrills/domain"
	"calcdrills/repository"
)

// FormatPayment renders a payment with two decimals.
func FormatPayment(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

// RoundPayment rounds a payment to two decimals.
func RoundPayment(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

type LoanService struct {
	repo  repository.LoanRepository
	cache repository.CacheRepository
	opts  SolverOptions
	log   *logrus.Logger
}

// NewLoanService creates a new LoanService with the given repository and cache.
// cache may be nil.
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
	opts SolverOptions,
	log *logrus.Logger,
) *LoanService {
	if opts.Epsilon == 0 {
		opts.Epsilon = DefaultEpsilon
	}
	return &LoanService{repo: repo, cache: cache, opts: opts, log: log}
}

// Epsilon is the tolerance used when a request does not carry its own.
func (s *LoanService) Epsilon() float64 {
	return s.opts.Epsilon
}

func validateTerms(terms domain.LoanTerms) error {
	if terms.Principal <= 0 {
		return ErrInvalidAmount
	}
	if terms.Principal > MaxLoanAmount {
		return fmt.Errorf("%w: exceeds the maximum of %.2f", ErrInvalidAmount, MaxLoanAmount)
	}
	if terms.Rate < 0 {
		return ErrInvalidRate
	}
	if terms.Rate > MaxInterestRate {
		return fmt.Errorf("%w: exceeds the maximum of %.2f%%", ErrInvalidRate, MaxInterestRate)
	}
	if terms.Periods <= 0 {
		return ErrInvalidPeriods
	}
	if terms.Periods > MaxPeriods {
		return fmt.Errorf("%w: exceeds the maximum of %d", ErrInvalidPeriods, MaxPeriods)
	}
	// With no payment the balance only grows; if even that overflows, no
	// search can bring it within epsilon of zero.
	if b := EndBalance(terms.Principal, terms.Rate, terms.Periods, 0); math.IsInf(b, 0) || math.IsNaN(b) {
		return fmt.Errorf("%w: balance overflows over %d periods", ErrInvalidRate, terms.Periods)
	}
	return nil
}

func reportCacheKey(terms domain.LoanTerms, epsilon float64) string {
	return fmt.Sprintf("loan:solve:%g:%g:%d:%g", terms.Principal, terms.Rate, terms.Periods, epsilon)
}

// Solve runs both payment searches for terms. A zero epsilon falls back
// to the service default.
func (s *LoanService) Solve(
	ctx context.Context,
	terms domain.LoanTerms,
	epsilon float64,
) (domain.SolveReport, error) {

	if err := validateTerms(terms); err != nil {
		return domain.SolveReport{}, err
	}

	opts := s.opts
	if epsilon != 0 {
		opts.Epsilon = epsilon
	}

	fields := logrus.Fields{
		"principal": terms.Principal,
		"rate":      terms.Rate,
		"periods":   terms.Periods,
		"epsilon":   opts.Epsilon,
	}

	key := reportCacheKey(terms, opts.Epsilon)
	if s.cache != nil {
		if val, ok := s.cache.Get(ctx, key); ok {
			var cached domain.SolveReport
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				s.log.WithFields(fields).Debug("solve report served from cache")
				s.save(ctx, cached)
				return cached, nil
			}
		}
	}

	bruteForce, err := SolveBruteForce(ctx, terms, opts)
	if err != nil {
		return domain.SolveReport{}, err
	}
	bisection, err := SolveBisection(ctx, terms, opts)
	if err != nil {
		return domain.SolveReport{}, err
	}

	report := domain.SolveReport{
		Terms:      terms,
		Epsilon:    opts.Epsilon,
		BruteForce: bruteForce,
		Bisection:  bisection,
	}

	s.log.WithFields(fields).WithFields(logrus.Fields{
		"brute_force_iterations": bruteForce.Iterations,
		"bisection_iterations":   bisection.Iterations,
	}).Info("payment solved")

	if s.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := s.cache.Set(ctx, key, string(data)); err != nil {
				s.log.WithError(err).Warn("failed to cache solve report")
			}
		}
	}

	s.save(ctx, report)
	return report, nil
}

// save records report in the history. Storing history is not critical.
func (s *LoanService) save(ctx context.Context, report domain.SolveReport) {
	if err := s.repo.Save(ctx, report); err != nil {
		s.log.WithError(err).Warn("failed to save solve report")
	}
}

// History returns every report solved so far.
func (s *LoanService) History(ctx context.Context) ([]domain.SolveReport, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list solve reports: %w", err)
	}
	return reports, nil
}
