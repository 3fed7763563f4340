package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"calcdrills/service"
)

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REDIS_ADDR", "")

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestCalendarCmd(t *testing.T) {
	out, err := run(t, context.Background(), "calendar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 36525 {
		t.Fatalf("expected 36524 days plus a summary, got %d lines", len(lines))
	}
	if lines[0] != "1/1/1900" || lines[90] != "1/4/1900 Sunday" || lines[36523] != "31/12/1999" {
		t.Errorf("unexpected lines %q %q %q", lines[0], lines[90], lines[36523])
	}
	if lines[36524] != "During the 20th century, 172 fell on the first day of the month" {
		t.Errorf("unexpected summary %q", lines[36524])
	}
}

func TestLoanCmd(t *testing.T) {
	out, err := run(t, context.Background(), "loan", "1200", "12", "12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Loan sum = 1200, interest rate = 12%, periods = 12",
		"Periodical payment, using brute force: 172.97",
		"number of iterations: 729681",
		"Periodical payment, using bi-section search: 172.97",
		"number of iterations: 24",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestLoanCmd_EpsilonFlag(t *testing.T) {
	out, err := run(t, context.Background(), "loan", "1200", "12", "12", "--epsilon", "0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "number of iterations: 729681") {
		t.Errorf("epsilon flag was ignored:\n%s", out)
	}
}

func TestLoanCmd_ZeroPeriods(t *testing.T) {
	_, err := run(t, context.Background(), "loan", "1000", "5", "0")
	if !errors.Is(err, service.ErrInvalidPeriods) {
		t.Errorf("expected ErrInvalidPeriods, got %v", err)
	}
}

func TestLoanCmd_BadArguments(t *testing.T) {
	if _, err := run(t, context.Background(), "loan", "abc", "5", "12"); err == nil {
		t.Errorf("expected error for a non-numeric principal")
	}
	if _, err := run(t, context.Background(), "loan", "1000", "5"); err == nil {
		t.Errorf("expected error for missing periods")
	}
	if _, err := run(t, context.Background(), "loan", "1000", "5", "1.5"); err == nil {
		t.Errorf("expected error for fractional periods")
	}
}

func TestServeCmd_StopsOnCancelledContext(t *testing.T) {
	t.Setenv("PORT", "0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := run(t, ctx, "serve"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoanCmd_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := run(t, ctx, "loan", "1200", "12", "12"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
