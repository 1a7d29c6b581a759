// Package surface coordinates the lifecycle and layout of independently
// addressable pieces of rendered UI.
//
// # Overview
//
// A Surface represents one unit of UI content — a full-screen app, a modal,
// or a small widget — that can be started, stopped, measured and mounted
// independently of the rest of the application. The Surface itself owns no
// rendering pipeline: an external Presenter drives the underlying runtime,
// a layout engine measures content, and a platform view handle is created
// on demand and cached.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/surface"
//	    "github.com/gogpu/surface/host"
//	    "github.com/gogpu/surface/layout"
//	)
//
//	p := host.New(layout.NewFixedEngine())
//	s := surface.New(p, "Greeting", map[string]any{"text": "hello"})
//	defer s.Close()
//
//	s.SetSize(surface.Sz(320, 240))
//	v := s.View() // main/UI context only
//	s.WaitForStage(surface.StageMounted, time.Second)
//
// # Thread Safety
//
// Surface is completely thread-safe by design: it can be created on any
// goroutine and any method can be called from any goroutine, unless the
// opposite is documented explicitly (View is affine to the surface's
// Scheduler context). Independent field groups — stage flags, the
// constraint pair, the cached view handle, the property bag — are each
// synchronized on their own, so unrelated operations never serialize.
//
// # Stages
//
// A surface communicates its progress through a Stage bitmask. Flags
// accumulate as the runtime advances (Started, Initialized, ContextReady,
// Launched, LayoutComputed, Mounted, ...); a composite stage is reached
// when all of its bits are present. Stop replaces the mask with the
// terminal StageStopped; a stopped surface can be restarted.
//
// # Architecture
//
// The library is organized into:
//   - Root package: Surface coordinator, Stage machine, geometry,
//     presenter/delegate/scheduler boundaries, presenter registry
//   - layout/: measurement engines (text shaping via go-text/typesetting)
//   - view/: platform view handles (CPU image, GPU texture)
//   - host/: in-process presenter driving the full stage progression
package surface
