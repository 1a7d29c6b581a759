// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host provides an in-process presenter for surfaces.
//
// The host presenter drives each started surface with one background
// runtime goroutine that advances the stage flags, runs layout passes at
// the applied constraints through a layout.Engine, and mounts the content
// into the surface's view handle. It is the presenter of choice when no
// platform-native runtime is available, and registers itself with the
// presenter registry at priority 10 under the name "host".
//
// Property bag keys understood by the host runtime:
//
//	"text"       string      paragraph content
//	"fontSize"   float64     font size in logical pixels
//	"lineHeight" float64     line height override
//	"direction"  string      "ltr" or "rtl"; empty means auto-detect
//	"background" color.Color mount background fill
package host
