package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/leantos/docgen/internal/model"
)

// fakeStep is a minimal Step for executor tests.
type fakeStep struct {
	name   string
	err    error
	called *bool
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) Do(_ context.Context, _ *model.RunReport) error {
	if s.called != nil {
		*s.called = true
	}
	return s.err
}

// TestPipelineExecute verifies step sequencing and error policy.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("steps run in order", func(t *testing.T) {
		t.Parallel()
		p := New()
		p.AddSteps(&fakeStep{name: "one"}, &fakeStep{name: "two"})

		report := model.NewRunReport("src", "out")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(report.PerformedSteps) != 2 ||
			report.PerformedSteps[0] != "one" || report.PerformedSteps[1] != "two" {
			t.Errorf("unexpected performed steps: %v", report.PerformedSteps)
		}
	})

	t.Run("stops on first fatal error by default", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		var secondRan bool

		p := New()
		p.AddSteps(
			&fakeStep{name: "fails", err: boom},
			&fakeStep{name: "after", called: &secondRan},
		)

		report := model.NewRunReport("src", "out")
		if err := p.Execute(context.Background(), report); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if secondRan {
			t.Error("expected pipeline to stop after fatal step")
		}
		if report.ErrorMessage != "boom" {
			t.Errorf("expected error recorded in report, got %q", report.ErrorMessage)
		}
	})

	t.Run("continue on error runs remaining steps", func(t *testing.T) {
		t.Parallel()
		var secondRan bool

		p := New(WithContinueOnError(true))
		p.AddSteps(
			&fakeStep{name: "fails", err: errors.New("boom")},
			&fakeStep{name: "after", called: &secondRan},
		)

		report := model.NewRunReport("src", "out")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !secondRan {
			t.Error("expected second step to run")
		}
	})

	t.Run("cancelled context stops execution", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var ran bool
		p := New()
		p.AddStep(&fakeStep{name: "never", called: &ran})

		report := model.NewRunReport("src", "out")
		if err := p.Execute(ctx, report); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if ran {
			t.Error("expected no step to run after cancellation")
		}
		if !report.Cancelled {
			t.Error("expected report marked cancelled")
		}
	})

	t.Run("elapsed time is stamped", func(t *testing.T) {
		t.Parallel()
		p := New()
		p.AddStep(&fakeStep{name: "noop"})

		report := model.NewRunReport("src", "out")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatal(err)
		}
		if report.Elapsed <= 0 {
			t.Error("expected positive elapsed duration")
		}
	})
}

// TestStepNames verifies the introspection helpers.
func TestStepNames(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddSteps(&fakeStep{name: "a"}, &fakeStep{name: "b"})

	if p.StepCount() != 2 {
		t.Errorf("expected 2 steps, got %d", p.StepCount())
	}
	names := p.StepNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names: %v", names)
	}
}
