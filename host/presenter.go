// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/gogpu/surface"
	"github.com/gogpu/surface/layout"
	"github.com/gogpu/surface/view"
)

// ErrUnknownSurface is returned by Measure for a root tag the presenter is
// not currently driving.
var ErrUnknownSurface = errors.New("host: unknown surface")

func init() {
	surface.Register("host", 10, func(opts surface.PresenterOptions) (surface.Presenter, error) {
		engine, _ := opts.Custom["engine"].(layout.Engine)
		return New(engine), nil
	}, nil)
}

// Presenter drives surfaces with an in-process runtime.
//
// Each started surface gets one runtime goroutine which advances the stage
// flags asynchronously, re-runs layout when constraints or properties
// change, and mounts content into the view. A nil engine falls back to
// layout.FixedEngine.
//
// Presenter is safe for concurrent use and can drive any number of
// surfaces.
type Presenter struct {
	engine layout.Engine

	mu      sync.Mutex
	runners map[surface.Tag]*runner

	viewCreations atomic.Uint64
}

// New creates a host presenter measuring through the given engine.
func New(engine layout.Engine) *Presenter {
	if engine == nil {
		engine = layout.NewFixedEngine()
	}
	return &Presenter{
		engine:  engine,
		runners: make(map[surface.Tag]*runner),
	}
}

// Engine returns the layout engine the presenter measures with.
func (p *Presenter) Engine() layout.Engine {
	return p.engine
}

// ViewCreations returns how many view handles the presenter has created.
func (p *Presenter) ViewCreations() uint64 {
	return p.viewCreations.Load()
}

// StartSurface implements surface.Presenter.
func (p *Presenter) StartSurface(s *surface.Surface) error {
	r := &runner{
		presenter: p,
		s:         s,
		relayout:  make(chan struct{}, 1),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	p.mu.Lock()
	if _, exists := p.runners[s.RootTag()]; exists {
		p.mu.Unlock()
		return nil
	}
	p.runners[s.RootTag()] = r
	p.mu.Unlock()

	surface.Logger().Info("host: surface started",
		"module", s.ModuleName(), "tag", int64(s.RootTag()))
	go r.run()
	return nil
}

// StopSurface implements surface.Presenter. It signals the runtime
// goroutine and waits for it to exit, so no stage mutation from this
// presenter can trail the stop.
func (p *Presenter) StopSurface(s *surface.Surface) error {
	p.mu.Lock()
	r, ok := p.runners[s.RootTag()]
	if ok {
		delete(p.runners, s.RootTag())
	}
	p.mu.Unlock()
	if !ok {
		return nil
	}

	close(r.stop)
	<-r.done
	surface.Logger().Info("host: surface stopped",
		"module", s.ModuleName(), "tag", int64(s.RootTag()))
	return nil
}

// Measure implements surface.Presenter. It measures the surface's current
// paragraph content under the given constraints without touching any
// surface state.
func (p *Presenter) Measure(tag surface.Tag, minimum, maximum surface.Size) (surface.Size, error) {
	p.mu.Lock()
	r, ok := p.runners[tag]
	p.mu.Unlock()
	if !ok {
		return surface.Size{}, ErrUnknownSurface
	}

	ext, err := p.engine.Measure(paragraphFromProperties(r.s.Properties()), layout.Constraints{
		MinWidth:  minimum.Width,
		MinHeight: minimum.Height,
		MaxWidth:  maximum.Width,
		MaxHeight: maximum.Height,
	})
	if err != nil {
		return surface.Size{}, err
	}
	return surface.Sz(ext.Width, ext.Height), nil
}

// CreateView implements surface.ViewFactory. The handle is sized from the
// applied constraints; ownership stays with the surface.
func (p *Presenter) CreateView(s *surface.Surface) view.View {
	p.viewCreations.Add(1)
	c := s.Constraints()
	w, h := c.Maximum.Width, c.Maximum.Height
	if w >= surface.Unbounded {
		w = c.Minimum.Width
	}
	if h >= surface.Unbounded {
		h = c.Minimum.Height
	}
	return view.NewImage(int(w), int(h))
}

// SurfaceDidUpdateConstraints implements surface.ConstraintsObserver.
func (p *Presenter) SurfaceDidUpdateConstraints(s *surface.Surface, _, _ surface.Size) {
	p.requestRelayout(s.RootTag())
}

// SurfaceDidUpdateProperties implements surface.PropertiesObserver.
func (p *Presenter) SurfaceDidUpdateProperties(s *surface.Surface, _ map[string]any) {
	p.requestRelayout(s.RootTag())
}

// Close stops all runtime goroutines. Surfaces themselves are not stopped;
// stopping a surface through its own Stop is the normal path.
func (p *Presenter) Close() error {
	p.mu.Lock()
	runners := p.runners
	p.runners = make(map[surface.Tag]*runner)
	p.mu.Unlock()

	for _, r := range runners {
		close(r.stop)
		<-r.done
	}
	return nil
}

func (p *Presenter) requestRelayout(tag surface.Tag) {
	p.mu.Lock()
	r, ok := p.runners[tag]
	p.mu.Unlock()
	if !ok {
		return
	}
	select {
	case r.relayout <- struct{}{}:
	default:
		// A relayout is already pending; passes coalesce.
	}
}

// runner is the per-surface runtime goroutine state.
type runner struct {
	presenter *Presenter
	s         *surface.Surface
	relayout  chan struct{}
	stop      chan struct{}
	done      chan struct{}
}

// run advances the surface through its stages and services relayout
// requests until stopped.
func (r *runner) run() {
	defer close(r.done)

	// Forward progression mirrors the runtime bring-up order. Each step is
	// observable by delegates and by WaitForStage.
	for _, st := range []surface.Stage{
		surface.StageInitialized,
		surface.StageRootNodeCreated,
		surface.StageContextReady,
		surface.StageLaunched,
	} {
		select {
		case <-r.stop:
			return
		default:
		}
		r.s.SetStage(st)
	}

	r.layoutPass()

	for {
		select {
		case <-r.stop:
			return
		case <-r.relayout:
			r.layoutPass()
		}
	}
}

// layoutPass measures the content at the applied constraints, records the
// intrinsic size and mounts into the view.
func (r *runner) layoutPass() {
	c := r.s.Constraints()
	ext, err := r.presenter.engine.Measure(paragraphFromProperties(r.s.Properties()), layout.Constraints{
		MinWidth:  c.Minimum.Width,
		MinHeight: c.Minimum.Height,
		MaxWidth:  c.Maximum.Width,
		MaxHeight: c.Maximum.Height,
	})
	if err != nil {
		surface.Logger().Debug("host: layout pass failed",
			"module", r.s.ModuleName(), "tag", int64(r.s.RootTag()), "error", err)
		return
	}

	r.s.UpdateIntrinsicSize(surface.Sz(ext.Width, ext.Height))
	r.s.SetStage(surface.StageLayoutComputed)

	r.mount()
	r.s.SetStage(surface.StageMounted)
}

// mount populates the view container. The runtime owns the content, not
// the container's size or placement.
func (r *runner) mount() {
	v := r.s.View()
	iv, ok := v.(*view.ImageView)
	if !ok {
		return
	}
	bg, ok := r.s.Properties()["background"].(color.Color)
	if !ok {
		bg = color.White
	}
	iv.Clear(bg)
}

// paragraphFromProperties maps the surface property bag onto the layout
// content unit.
func paragraphFromProperties(props map[string]any) layout.Paragraph {
	p := layout.Paragraph{}
	if text, ok := props["text"].(string); ok {
		p.Text = text
	}
	if size, ok := props["fontSize"].(float64); ok {
		p.FontSize = size
	}
	if lh, ok := props["lineHeight"].(float64); ok {
		p.LineHeight = lh
	}
	switch props["direction"] {
	case "ltr":
		p.Direction = layout.DirectionLTR
	case "rtl":
		p.Direction = layout.DirectionRTL
	}
	return p
}
