package anatomy

import (
	"context"
	"time"
)

// PipelineOption configures a Pipeline during creation.
//
// Example:
//
//	p := anatomy.NewPipeline(host,
//	    anatomy.WithOnResult(func(r *anatomy.Result) { draw(r) }),
//	)
type PipelineOption func(*pipelineOptions)

// pipelineOptions holds optional configuration for a Pipeline.
type pipelineOptions struct {
	ctx           context.Context
	baseline      float64
	onResult      func(*Result)
	retryInterval time.Duration
	maxRetries    int
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		ctx:           context.Background(),
		baseline:      Baseline,
		retryInterval: 16 * time.Millisecond, // one frame at 60Hz
		maxRetries:    8,
	}
}

// WithContext sets the parent context of every pass. Cancelling it stops
// all pending and future passes.
func WithContext(ctx context.Context) PipelineOption {
	return func(o *pipelineOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithBaseline moves the baseline row. The default is Baseline.
func WithBaseline(y float64) PipelineOption {
	return func(o *pipelineOptions) {
		o.baseline = y
	}
}

// WithOnResult registers a callback invoked with every published result.
// Callbacks are serialized and never see a result older than one already
// delivered.
func WithOnResult(fn func(*Result)) PipelineOption {
	return func(o *pipelineOptions) {
		o.onResult = fn
	}
}

// WithLayoutRetry sets how often and how many times a pass re-queries the
// host when the layout it returned does not yet cover the text.
func WithLayoutRetry(interval time.Duration, maxRetries int) PipelineOption {
	return func(o *pipelineOptions) {
		o.retryInterval = interval
		o.maxRetries = maxRetries
	}
}
