// Package pipeline runs a fixed sequence of stages over one in-flight
// value, stopping at the first stage that reports an error.
package pipeline

// PipelineContext carries the in-flight value through a Pipeline, plus
// whatever error (if any) a prior stage has already produced.
type PipelineContext[T any] struct {
	Value T
	Err   error
}

// Processor is a single pipeline stage.
type Processor[T any] interface {
	Process(ctx *PipelineContext[T]) *PipelineContext[T]
}

// ProcessorFunc adapts a plain function to a Processor.
type ProcessorFunc[T any] func(*PipelineContext[T]) *PipelineContext[T]

func (f ProcessorFunc[T]) Process(ctx *PipelineContext[T]) *PipelineContext[T] { return f(ctx) }

// Pipeline is a sequence of processing stages.
type Pipeline[T any] struct {
	processors []Processor[T]
}

func New[T any](processors ...Processor[T]) *Pipeline[T] {
	return &Pipeline[T]{processors: processors}
}

// Run executes the pipeline, stopping at the first stage whose context
// carries an error. Unlike a pipeline that collects diagnostics from every
// stage (e.g. one feeding an editor that wants parse errors and semantic
// errors together), a lowering run reports a single error and aborts: later
// stages operate on an Env built from earlier stages' output, so running them
// after a failure would mean resolving names against incomplete data.
func (p *Pipeline[T]) Run(initial *PipelineContext[T]) *PipelineContext[T] {
	ctx := initial
	for _, processor := range p.processors {
		if ctx.Err != nil {
			break
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}
