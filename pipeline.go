package anatomy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// LayoutHost lays text out on a rendering surface so that it can be measured.
type LayoutHost interface {
	// Layout lays out text at fontSize and returns a Measurer once the
	// layout has been committed. It blocks until then or until ctx is done.
	Layout(ctx context.Context, text string, fontSize float64) (Measurer, error)
}

// LayoutHostFunc adapts a function to the LayoutHost interface.
type LayoutHostFunc func(ctx context.Context, text string, fontSize float64) (Measurer, error)

// Layout implements LayoutHost.
func (f LayoutHostFunc) Layout(ctx context.Context, text string, fontSize float64) (Measurer, error) {
	return f(ctx, text, fontSize)
}

// Result is the outcome of one pass of the pipeline: everything a renderer
// needs to draw the diagram.
type Result struct {
	// Generation orders results published by a Pipeline. Results returned
	// by Evaluate have generation 0.
	Generation uint64

	Text        string
	FontSize    float64
	Lines       ReferenceLines
	Records     []CharacterRecord
	Metrics     *Metrics
	Annotations []Annotation
}

// Width returns the diagram width for the result.
func (r *Result) Width() float64 { return DiagramWidth(r.Metrics) }

// Height returns the diagram height.
func (r *Result) Height() float64 { return DiagramHeight }

// GuideEndX returns where the guide lines end.
func (r *Result) GuideEndX() float64 { return GuideEndX(r.Metrics) }

// Empty reports whether there is nothing to annotate.
func (r *Result) Empty() bool { return len(r.Records) == 0 }

// Pipeline measures and annotates text as it changes.
//
// Each call to Update starts a new pass and supersedes any pass still
// waiting for its layout: the superseded pass is cancelled and, should it
// finish anyway, its result is dropped. Only the latest text is ever
// published.
//
// Pipeline is safe for concurrent use.
type Pipeline struct {
	host LayoutHost
	opts pipelineOptions

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	latest *Result

	// deliverMu orders callbacks so a stale result can never be delivered
	// after a newer one.
	deliverMu sync.Mutex

	wg sync.WaitGroup
}

// NewPipeline creates a Pipeline measuring text with host.
func NewPipeline(host LayoutHost, opts ...PipelineOption) *Pipeline {
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{host: host, opts: o}
}

// Update schedules a pass for text, superseding any pending pass.
// It returns the generation of the new pass.
func (p *Pipeline) Update(text string) uint64 {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(p.opts.ctx)
	p.cancel = cancel
	p.mu.Unlock()

	Logger().Debug("anatomy: pass scheduled", "generation", gen, "text", text)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()
		res, err := p.run(ctx, text)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				Logger().Debug("anatomy: pass cancelled", "generation", gen)
			} else {
				Logger().Warn("anatomy: pass dropped", "generation", gen, "err", err)
			}
			return
		}
		res.Generation = gen
		p.publish(res)
	}()
	return gen
}

// publish stores res and notifies the subscriber if res is still current.
func (p *Pipeline) publish(res *Result) {
	p.deliverMu.Lock()
	defer p.deliverMu.Unlock()

	p.mu.Lock()
	if res.Generation != p.gen {
		p.mu.Unlock()
		Logger().Debug("anatomy: stale result dropped",
			"generation", res.Generation, "current", p.gen)
		return
	}
	p.latest = res
	p.mu.Unlock()

	if p.opts.onResult != nil {
		p.opts.onResult(res)
	}
}

// Latest returns the most recently published result, or nil.
func (p *Pipeline) Latest() *Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// Wait blocks until every scheduled pass has finished or been dropped.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Close cancels the pending pass and waits for all passes to finish.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Evaluate runs one pass for text synchronously and returns its result
// without publishing it.
func (p *Pipeline) Evaluate(ctx context.Context, text string) (*Result, error) {
	return p.run(ctx, text)
}

// run measures text, waiting for the host's layout, then selects the
// annotations.
func (p *Pipeline) run(ctx context.Context, text string) (*Result, error) {
	size := FontSize(text)
	res := &Result{
		Text:     text,
		FontSize: size,
		Lines:    NewReferenceLines(size, p.opts.baseline),
	}
	if text == "" {
		return res, nil
	}
	if p.host == nil {
		return nil, ErrNoHost
	}

	for attempt := 0; ; attempt++ {
		m, err := p.host.Layout(ctx, text, size)
		if err != nil {
			return nil, fmt.Errorf("anatomy: layout %q: %w", text, err)
		}
		records, metrics, err := Extract(text, m)
		if err == nil {
			res.Records = records
			res.Metrics = metrics
			break
		}
		if !errors.Is(err, ErrLayoutPending) || attempt >= p.opts.maxRetries {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.opts.retryInterval):
		}
	}

	res.Annotations = Select(res.Records, res.Metrics, res.Lines)
	Logger().Debug("anatomy: pass complete",
		"text", text, "records", len(res.Records), "annotations", len(res.Annotations))
	return res, nil
}
