package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"calcdrills/domain"
	"calcdrills/service"
)

func newLoanCmd(a *app) *cobra.Command {
	var epsilon float64

	loanCmd := &cobra.Command{
		Use:   "loan <principal> <rate> <periods>",
		Short: "Find the periodical payment that pays off a loan",
		Long: `Searches for the fixed payment that brings the ending balance of a loan
within epsilon of zero, first by stepping the payment up from principal/periods
and then by bisection. The rate is a percentage per period, e.g. 12 for 12%.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := parseTerms(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("epsilon") {
				epsilon = a.cfg.Epsilon
			}
			opts := service.SolverOptions{Epsilon: epsilon}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loan sum = %s, interest rate = %s%%, periods = %d\n",
				strconv.FormatFloat(terms.Principal, 'f', -1, 64),
				strconv.FormatFloat(terms.Rate, 'f', -1, 64),
				terms.Periods)

			bruteForce, err := service.SolveBruteForce(cmd.Context(), terms, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Periodical payment, using brute force: %s\n", service.FormatPayment(bruteForce.Payment))
			fmt.Fprintf(out, "number of iterations: %d\n", bruteForce.Iterations)

			bisection, err := service.SolveBisection(cmd.Context(), terms, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Periodical payment, using bi-section search: %s\n", service.FormatPayment(bisection.Payment))
			fmt.Fprintf(out, "number of iterations: %d\n", bisection.Iterations)
			return nil
		},
	}

	loanCmd.Flags().Float64Var(&epsilon, "epsilon", service.DefaultEpsilon, "tolerance on the ending balance")
	return loanCmd
}

func parseTerms(args []string) (domain.LoanTerms, error) {
	principal, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return domain.LoanTerms{}, fmt.Errorf("invalid principal %q: %w", args[0], err)
	}
	rate, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return domain.LoanTerms{}, fmt.Errorf("invalid rate %q: %w", args[1], err)
	}
	periods, err := strconv.Atoi(args[2])
	if err != nil {
		return domain.LoanTerms{}, fmt.Errorf("invalid periods %q: %w", args[2], err)
	}
	return domain.LoanTerms{Principal: principal, Rate: rate, Periods: periods}, nil
}
