// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/surface/view"
)

// Tag is an opaque, stable integer identifier for a surface's root content.
type Tag int64

// rootTagCounter allocates root tags. Root tags are odd and grow in steps of
// ten, keeping the rest of the tag space free for non-root content nodes.
var rootTagCounter atomic.Int64

func allocateRootTag() Tag {
	return Tag(rootTagCounter.Add(10) - 9)
}

// Surface represents one independently addressable piece of rendered UI.
//
// A Surface can be a full-screen app, a modal, or a small widget. It tracks
// the lifecycle stage of its content, negotiates its size against
// caller-supplied constraints, and exposes an on-demand platform view handle
// without owning the rendering pipeline itself: the actual work is done by
// an external Presenter.
//
// Surface is thread-safe by design. It can be created on any goroutine and
// every method can be called from any goroutine, unless documented
// otherwise (View is affine to the surface's Scheduler context). Each
// independent field group (stage flags, constraint pair, view handle,
// property bag) is synchronized on its own, so a slow Measure never blocks
// a concurrent stage update from the runtime.
type Surface struct {
	presenter  Presenter
	moduleName string
	rootTag    Tag
	scheduler  Scheduler

	stage Machine

	propsMu    sync.RWMutex
	properties map[string]any

	constraintsMu sync.RWMutex
	constraints   SizeConstraints

	intrinsicMu sync.RWMutex
	intrinsic   Size

	viewMu sync.Mutex
	view   view.View

	delegateMu sync.RWMutex
	delegate   Delegate

	lifecycleMu sync.Mutex
	running     bool
	closed      bool
}

// Options configures optional Surface behavior.
type Options struct {
	// Scheduler dispatches view creation. Defaults to ImmediateScheduler.
	Scheduler Scheduler

	// Delegate is the initial stage observer. May be nil.
	Delegate Delegate
}

// New creates a Surface bound to a presenter and module name, and starts it.
// There is no need to call Start explicitly on a new surface.
func New(presenter Presenter, moduleName string, initialProperties map[string]any) *Surface {
	return NewWithOptions(presenter, moduleName, initialProperties, Options{})
}

// NewWithOptions is New with explicit scheduler and delegate configuration.
func NewWithOptions(presenter Presenter, moduleName string, initialProperties map[string]any, opts Options) *Surface {
	s := &Surface{
		presenter:   presenter,
		moduleName:  moduleName,
		rootTag:     allocateRootTag(),
		scheduler:   opts.Scheduler,
		properties:  maps.Clone(initialProperties),
		constraints: Unconstrained(),
		delegate:    opts.Delegate,
	}
	if s.scheduler == nil {
		s.scheduler = ImmediateScheduler{}
	}
	if s.properties == nil {
		s.properties = map[string]any{}
	}
	s.Start()
	return s
}

// ModuleName returns the module name the surface was created with.
func (s *Surface) ModuleName() string {
	return s.moduleName
}

// RootTag returns the surface's root tag.
func (s *Surface) RootTag() Tag {
	return s.rootTag
}

// Stage returns the current stage mask.
func (s *Surface) Stage() Stage {
	return s.stage.Current()
}

// Running reports whether the surface is currently started.
func (s *Surface) Running() bool {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()
	return s.running
}

// SetDelegate replaces the delegate slot. Pass nil to revoke observation.
func (s *Surface) SetDelegate(d Delegate) {
	s.delegateMu.Lock()
	s.delegate = d
	s.delegateMu.Unlock()
}

// Delegate returns the current delegate, which may be nil.
func (s *Surface) Delegate() Delegate {
	s.delegateMu.RLock()
	defer s.delegateMu.RUnlock()
	return s.delegate
}

// Properties returns a copy of the current property bag.
func (s *Surface) Properties() map[string]any {
	s.propsMu.RLock()
	defer s.propsMu.RUnlock()
	return maps.Clone(s.properties)
}

// SetProperties replaces the property bag passed to the underlying app.
// If the surface is running and the presenter observes property updates,
// the new bag is re-driven through it.
func (s *Surface) SetProperties(properties map[string]any) {
	props := maps.Clone(properties)
	if props == nil {
		props = map[string]any{}
	}
	s.propsMu.Lock()
	s.properties = props
	s.propsMu.Unlock()

	if o, ok := s.presenter.(PropertiesObserver); ok && s.Running() {
		o.SurfaceDidUpdateProperties(s, maps.Clone(props))
	}
}

// Start transitions the surface from stopped (or never started) to running:
// it resets the stage mask to Started and initializes runtime resources via
// the presenter. Returns false without side effects if the surface is
// already running or closed. A stopped surface can be restarted.
//
// The running flag flips under lifecycleMu; the presenter and delegate are
// called after the lock is released, so both may call back into the surface
// (Running, Stop, ...) without deadlocking.
func (s *Surface) Start() bool {
	s.lifecycleMu.Lock()
	if s.running || s.closed {
		s.lifecycleMu.Unlock()
		return false
	}
	s.running = true
	s.lifecycleMu.Unlock()

	s.replaceStage(StageStarted)
	if err := s.presenter.StartSurface(s); err != nil {
		Logger().Warn("surface: presenter start failed",
			"module", s.moduleName, "tag", int64(s.rootTag), "error", err)
	}
	return true
}

// Stop tears down runtime resources via the presenter and replaces the
// stage mask with the terminal StageStopped. Returns false if the surface
// is already stopped. Repeated calls are no-ops, not errors.
//
// Like Start, the presenter and delegate run outside lifecycleMu: the
// presenter may join goroutines that themselves call back into the surface.
func (s *Surface) Stop() bool {
	s.lifecycleMu.Lock()
	if !s.running {
		s.lifecycleMu.Unlock()
		return false
	}
	s.running = false
	s.lifecycleMu.Unlock()

	s.teardown()
	return true
}

// teardown runs the post-Stop presenter call and stage replacement. The
// caller has already flipped running to false.
func (s *Surface) teardown() {
	if err := s.presenter.StopSurface(s); err != nil {
		Logger().Warn("surface: presenter stop failed",
			"module", s.moduleName, "tag", int64(s.rootTag), "error", err)
	}
	s.replaceStage(StageStopped)
}

// Close stops the surface if it is still running and releases the cached
// view handle. The surface must not be restarted after Close.
// Close is idempotent; multiple calls are safe.
func (s *Surface) Close() error {
	s.lifecycleMu.Lock()
	if s.closed {
		s.lifecycleMu.Unlock()
		return nil
	}
	s.closed = true
	wasRunning := s.running
	s.running = false
	s.lifecycleMu.Unlock()

	if wasRunning {
		s.teardown()
	}

	s.viewMu.Lock()
	if s.view != nil {
		s.view.Release()
		s.view = nil
	}
	s.viewMu.Unlock()
	return nil
}

// View returns the platform view handle representing the surface, creating
// it on first call. The handle is cached and retained for the surface's
// lifetime: repeated calls return the same handle.
//
// Returning the handle does not mean the surface is ready to render; it is
// a container the runtime will later populate. The surface exercises no
// control over the handle's size or position — that is the caller's
// responsibility.
//
// View must be called from the context that owns platform views; creation
// is routed through the surface's Scheduler to enforce that convention.
func (s *Surface) View() view.View {
	s.viewMu.Lock()
	if s.view != nil {
		v := s.view
		s.viewMu.Unlock()
		return v
	}
	var v view.View
	s.scheduler.RunSync(func() {
		v = s.createView()
	})
	if v == nil {
		// The scheduler dropped the task (closed loop). Nothing was
		// created: leave the cache empty and the stage untouched.
		s.viewMu.Unlock()
		return nil
	}
	s.view = v
	s.viewMu.Unlock()

	// Notify outside viewMu so a delegate may call View re-entrantly.
	s.SetStage(StageRootViewCreated)
	return v
}

// createView runs on the scheduler context.
func (s *Surface) createView() view.View {
	if f, ok := s.presenter.(ViewFactory); ok {
		if v := f.CreateView(s); v != nil {
			return v
		}
	}
	w, h := s.defaultViewExtent()
	return view.NewImage(w, h)
}

// defaultViewExtent derives a plausible initial pixel extent for the
// default view from the applied constraints.
func (s *Surface) defaultViewExtent() (int, int) {
	c := s.Constraints()
	w, h := c.Maximum.Width, c.Maximum.Height
	if w >= Unbounded {
		w = c.Minimum.Width
	}
	if h >= Unbounded {
		h = c.Minimum.Height
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return int(w), int(h)
}

// SetSizeConstraints atomically replaces both layout bounds as one unit.
// It has no immediate layout side effect: the new pair only affects
// subsequent measurement and mounting. A maximum below the minimum is
// clamped up to the minimum.
func (s *Surface) SetSizeConstraints(minimum, maximum Size) {
	c := SizeConstraints{Minimum: minimum, Maximum: maximum}.Normalize()
	s.constraintsMu.Lock()
	changed := c != s.constraints
	s.constraints = c
	s.constraintsMu.Unlock()
	if !changed {
		return
	}
	if o, ok := s.presenter.(ConstraintsObserver); ok && s.Running() {
		o.SurfaceDidUpdateConstraints(s, c.Minimum, c.Maximum)
	}
}

// SetSize pins both bounds to size, fixing the surface's size.
func (s *Surface) SetSize(size Size) {
	s.SetSizeConstraints(size, size)
}

// MinimumSize returns the applied minimum size constraint.
// Defaults to {0, 0}.
func (s *Surface) MinimumSize() Size {
	return s.Constraints().Minimum
}

// MaximumSize returns the applied maximum size constraint.
// Defaults to {Unbounded, Unbounded}.
func (s *Surface) MaximumSize() Size {
	return s.Constraints().Maximum
}

// Constraints returns the applied constraint pair as one consistent unit.
func (s *Surface) Constraints() SizeConstraints {
	s.constraintsMu.RLock()
	defer s.constraintsMu.RUnlock()
	return s.constraints
}

// Measure computes the size the surface's content would occupy under the
// given constraints by delegating to the presenter's layout engine.
//
// Measure is exploratory: it does not mutate the stored constraints, the
// stage, or the cached intrinsic size. A maximum below the minimum is
// clamped up to the minimum. If the surface is stopped, or stops while the
// measurement is in flight, or the presenter fails, Measure degrades to the
// last intrinsic size instead of propagating the fault.
func (s *Surface) Measure(minimum, maximum Size) Size {
	c := SizeConstraints{Minimum: minimum, Maximum: maximum}.Normalize()
	if !s.Running() {
		return s.IntrinsicSize()
	}
	size, err := s.presenter.Measure(s.rootTag, c.Minimum, c.Maximum)
	if err != nil {
		Logger().Debug("surface: measure failed",
			"module", s.moduleName, "tag", int64(s.rootTag), "error", err)
		return s.IntrinsicSize()
	}
	if !s.Running() {
		return s.IntrinsicSize()
	}
	return size
}

// IntrinsicSize returns the size last computed by an internal layout pass
// at the applied constraints. Unlike Measure it never runs layout itself.
func (s *Surface) IntrinsicSize() Size {
	s.intrinsicMu.RLock()
	defer s.intrinsicMu.RUnlock()
	return s.intrinsic
}

// UpdateIntrinsicSize records the result of an internal layout pass and
// notifies the delegate if the size changed. Intended for presenter
// implementations.
func (s *Surface) UpdateIntrinsicSize(size Size) {
	s.intrinsicMu.Lock()
	changed := size != s.intrinsic
	s.intrinsic = size
	s.intrinsicMu.Unlock()
	if !changed {
		return
	}
	if o, ok := s.Delegate().(IntrinsicSizeObserver); ok {
		o.SurfaceDidChangeIntrinsicSize(s, size)
	}
}

// WaitForStage blocks the calling goroutine until the surface reaches the
// given stage or the timeout elapses, and reports whether the stage was
// reached. A non-positive timeout checks once without blocking.
func (s *Surface) WaitForStage(stage Stage, timeout time.Duration) bool {
	return s.stage.Wait(stage, timeout)
}

// SetStage ORs flags into the current stage and returns whether any new bit
// was set. The delegate is notified after the flags are visible, so reading
// Stage from inside the callback observes the new value. Intended for
// presenter implementations.
func (s *Surface) SetStage(flags Stage) bool {
	if !s.stage.Set(flags) {
		return false
	}
	s.notifyStage(s.stage.Current())
	return true
}

// UnsetStage clears flags from the current stage and returns whether any
// bit was cleared. Intended for presenter implementations.
func (s *Surface) UnsetStage(flags Stage) bool {
	if !s.stage.Unset(flags) {
		return false
	}
	s.notifyStage(s.stage.Current())
	return true
}

// replaceStage resets the whole mask. Only Start and Stop do this.
func (s *Surface) replaceStage(flags Stage) {
	if s.stage.Replace(flags) != flags {
		s.notifyStage(flags)
	}
}

func (s *Surface) notifyStage(stage Stage) {
	if d := s.Delegate(); d != nil {
		d.SurfaceDidChangeStage(s, stage)
	}
}
