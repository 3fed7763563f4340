package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"calcdrills/domain"
	"calcdrills/repository"
)

type MockLoanRepository struct {
	SaveCalled bool
	ForceError bool
	Saved      []domain.SolveReport
}

func (m *MockLoanRepository) Save(
	_ context.Context,
	report domain.SolveReport,
) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, report)
	return nil
}

func (m *MockLoanRepository) List(_ context.Context) ([]domain.SolveReport, error) {
	return m.Saved, nil
}

func TestSolve_BothStrategies(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, DefaultSolverOptions(), logger)

	input := domain.LoanTerms{
		Principal: 1200,
		Rate:      12,
		Periods:   12,
	}

	report, err := service.Solve(context.Background(), input, 0)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Epsilon != DefaultEpsilon {
		t.Errorf("expected default epsilon, got %g", report.Epsilon)
	}
	if report.BruteForce.Strategy != domain.BruteForce || report.Bisection.Strategy != domain.Bisection {
		t.Errorf("unexpected strategies %q and %q", report.BruteForce.Strategy, report.Bisection.Strategy)
	}
	if FormatPayment(report.Bisection.Payment) != "172.97" {
		t.Errorf("expected payment 172.97, got %s", FormatPayment(report.Bisection.Payment))
	}

	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
}

func TestSolve_UsesRequestEpsilon(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, DefaultSolverOptions(), logger)

	input := domain.LoanTerms{Principal: 1200, Rate: 12, Periods: 12}

	coarse, err := service.Solve(context.Background(), input, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fine, err := service.Solve(context.Background(), input, 0.001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if coarse.Epsilon != 0.1 {
		t.Errorf("expected epsilon 0.1, got %g", coarse.Epsilon)
	}
	if coarse.BruteForce.Iterations >= fine.BruteForce.Iterations {
		t.Errorf("coarse search should take fewer steps: %d vs %d",
			coarse.BruteForce.Iterations, fine.BruteForce.Iterations)
	}
}

func TestSolve_ZeroInterest(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, DefaultSolverOptions(), logger)

	input := domain.LoanTerms{
		Principal: 1200,
		Rate:      0,
		Periods:   12,
	}

	report, err := service.Solve(context.Background(), input, 0)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 100.0
	if report.BruteForce.Payment != expected {
		t.Errorf("expected %.2f, got %.2f", expected, report.BruteForce.Payment)
	}
	if report.BruteForce.Iterations != 1 {
		t.Errorf("expected a single iteration, got %d", report.BruteForce.Iterations)
	}
}

func TestSolve_InvalidAmount(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, DefaultSolverOptions(), logger)

	input := domain.LoanTerms{
		Principal: 0,
		Rate:      10,
		Periods:   12,
	}

	_, err := service.Solve(context.Background(), input, 0)

	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}

	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestSolve_InvalidPeriods(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, DefaultSolverOptions(), logger)

	input := domain.LoanTerms{
		Principal: 1000,
		Rate:      10,
		Periods:   0,
	}

	_, err := service.Solve(context.Background(), input, 0)

	if !errors.Is(err, ErrInvalidPeriods) {
		t.Errorf("expected ErrInvalidPeriods, got %v", err)
	}
}

func TestSolve_IterationLimit(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, SolverOptions{Epsilon: DefaultEpsilon, MaxIterations: 1000}, logger)

	_, err := service.Solve(context.Background(), domain.LoanTerms{Principal: 1200, Rate: 12, Periods: 12}, 0)

	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("expected ErrNoConvergence, got %v", err)
	}
	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestSolve_BalanceOverflowRejected(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, DefaultSolverOptions(), logger)

	input := domain.LoanTerms{Principal: 1e9, Rate: 1000, Periods: 600}

	_, err := service.Solve(context.Background(), input, 0)

	if !errors.Is(err, ErrInvalidRate) {
		t.Errorf("expected ErrInvalidRate, got %v", err)
	}
	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestSolve_CancelledContext(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, DefaultSolverOptions(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Solve(ctx, domain.LoanTerms{Principal: 1200, Rate: 12, Periods: 12}, 0)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestSolve_SaveErrorIsLogged(t *testing.T) {

	mockRepo := &MockLoanRepository{ForceError: true}
	logger, hook := test.NewNullLogger()
	service := NewLoanService(mockRepo, nil, DefaultSolverOptions(), logger)

	_, err := service.Solve(context.Background(), domain.LoanTerms{Principal: 1000, Rate: 5, Periods: 3}, 0)

	if err != nil {
		t.Fatalf("save failure should not be returned: %v", err)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning, got %+v", entry)
	}
}

func TestSolve_ServedFromCache(t *testing.T) {

	mockRepo := &MockLoanRepository{}
	cache := repository.NewMemoryCache()
	logger, _ := test.NewNullLogger()
	service := NewLoanService(mockRepo, cache, DefaultSolverOptions(), logger)

	input := domain.LoanTerms{Principal: 5000, Rate: 2, Periods: 10}

	first, err := service.Solve(context.Background(), input, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected one cache entry, got %d", cache.Len())
	}

	second, err := service.Solve(context.Background(), input, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("cached report differs: %+v vs %+v", first, second)
	}
	if len(mockRepo.Saved) != 2 {
		t.Errorf("expected both solves in the history, got %d", len(mockRepo.Saved))
	}
}

func TestHistory(t *testing.T) {

	repo := repository.NewLoanRepositoryMemory()
	logger, _ := test.NewNullLogger()
	service := NewLoanService(repo, nil, DefaultSolverOptions(), logger)

	for _, periods := range []int{2, 4} {
		if _, err := service.Solve(context.Background(), domain.LoanTerms{Principal: 100, Rate: 1, Periods: periods}, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	reports, err := service.History(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 || reports[1].Terms.Periods != 4 {
		t.Errorf("unexpected history %+v", reports)
	}
}

func TestFormatPayment(t *testing.T) {
	if got := FormatPayment(172.96800017356873); got != "172.97" {
		t.Errorf("expected 172.97, got %s", got)
	}
	if got := RoundPayment(12333.769109100103); got != 12333.77 {
		t.Errorf("expected 12333.77, got %v", got)
	}
}
