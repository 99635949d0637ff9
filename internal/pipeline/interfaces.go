package pipeline

// Processor is any component that can process a PipelineContext and return
// a modified context.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
