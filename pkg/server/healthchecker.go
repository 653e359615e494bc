package server

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// NamedHealthChecker labels a checker in a health report.
type NamedHealthChecker struct {
	Name    string
	Checker HealthChecker
}

// CompositeHealthChecker is healthy only when every checker is.
type CompositeHealthChecker struct {
	checkers []NamedHealthChecker
}

func NewCompositeHealthChecker(checkers ...NamedHealthChecker) *CompositeHealthChecker {
	return &CompositeHealthChecker{checkers: checkers}
}

// Check runs all checkers concurrently and reports each by name.
func (hc *CompositeHealthChecker) Check(ctx context.Context) map[string]bool {
	results := make([]bool, len(hc.checkers))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range hc.checkers {
		i, c := i, c
		g.Go(func() error {
			results[i] = c.Checker.Healthy(gctx)
			return nil
		})
	}
	_ = g.Wait()

	report := make(map[string]bool, len(hc.checkers))
	for i, c := range hc.checkers {
		report[c.Name] = results[i]
	}
	return report
}

func (hc *CompositeHealthChecker) Healthy(ctx context.Context) bool {
	for _, ok := range hc.Check(ctx) {
		if !ok {
			return false
		}
	}
	return true
}
