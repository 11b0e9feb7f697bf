package observability

import (
	"context"
	"testing"
	"time"
)

type recordingSolverHooks struct {
	builds, starts, completes int
}

func (h *recordingSolverHooks) OnBuildComplete(context.Context, int, int, time.Duration) {
	h.builds++
}
func (h *recordingSolverHooks) OnSolveStart(context.Context, int, int) { h.starts++ }
func (h *recordingSolverHooks) OnSolveComplete(context.Context, int, time.Duration, error) {
	h.completes++
}

func TestSolverHookRegistration(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingSolverHooks{}
	SetSolverHooks(rec)

	ctx := context.Background()
	Solver().OnBuildComplete(ctx, 4, 5, time.Millisecond)
	Solver().OnSolveStart(ctx, 4, 5)
	Solver().OnSolveComplete(ctx, 2, time.Millisecond, nil)

	if rec.builds != 1 || rec.starts != 1 || rec.completes != 1 {
		t.Errorf("recorded = %+v, want one of each", rec)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingSolverHooks{}
	SetSolverHooks(rec)
	SetSolverHooks(nil)

	Solver().OnSolveStart(context.Background(), 1, 0)
	if rec.starts != 1 {
		t.Errorf("starts = %d, want 1", rec.starts)
	}
}

func TestReset(t *testing.T) {
	rec := &recordingSolverHooks{}
	SetSolverHooks(rec)
	Reset()

	Solver().OnSolveStart(context.Background(), 1, 0)
	if rec.starts != 0 {
		t.Errorf("hooks still registered after Reset")
	}
}
