package pipeline

import (
	"errors"
	"testing"
)

func TestRunThreadsValueThroughStages(t *testing.T) {
	p := New[int](
		ProcessorFunc[int](func(ctx *PipelineContext[int]) *PipelineContext[int] {
			ctx.Value++
			return ctx
		}),
		ProcessorFunc[int](func(ctx *PipelineContext[int]) *PipelineContext[int] {
			ctx.Value *= 2
			return ctx
		}),
	)
	out := p.Run(&PipelineContext[int]{Value: 1})
	if out.Err != nil {
		t.Fatalf("Run: %v", out.Err)
	}
	if out.Value != 4 {
		t.Errorf("Value = %d, want 4", out.Value)
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	wantErr := errors.New("boom")
	ran := false
	p := New[int](
		ProcessorFunc[int](func(ctx *PipelineContext[int]) *PipelineContext[int] {
			ctx.Err = wantErr
			return ctx
		}),
		ProcessorFunc[int](func(ctx *PipelineContext[int]) *PipelineContext[int] {
			ran = true
			return ctx
		}),
	)
	out := p.Run(&PipelineContext[int]{Value: 1})
	if !errors.Is(out.Err, wantErr) {
		t.Errorf("Err = %v, want %v", out.Err, wantErr)
	}
	if ran {
		t.Errorf("second stage ran after first stage's error")
	}
}
