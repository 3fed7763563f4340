package repository

import (
	"context"
	"sync"

	"calcdrills/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.SolveReport
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data: []domain.SolveReport{},
	}
}

// Save stores the solve report in memory.
func (r *LoanRepositoryMemory) Save(
	_ context.Context,
	report domain.SolveReport,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, report)
	return nil
}

// List returns the stored reports, oldest first.
func (r *LoanRepositoryMemory) List(_ context.Context) ([]domain.SolveReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SolveReport, len(r.data))
	copy(out, r.data)
	return out, nil
}
