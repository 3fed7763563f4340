package repository

import (
	"context"

	"calcdrills/domain"
)

type LoanRepository interface {
	Save(ctx context.Context, report domain.SolveReport) error
	List(ctx context.Context) ([]domain.SolveReport, error)
}
