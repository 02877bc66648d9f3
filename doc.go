// Package phaseport renders 2D grids of complex numbers as phase
// portraits — images in which every pixel's hue encodes the argument
// (phase) of the corresponding sample, and, for some variants, its
// brightness encodes the modulus.
//
// 🚀 What is phaseport?
//
//	A small, pure-Go rendering pipeline that brings together:
//		• Periodic mappers: cyclic bucketing (StepIndex) & periodic ramps (Sawtooth)
//		• Colormaps: a 600-entry uniform hue wheel + a perceptually re-indexed layout
//		• Four portrait variants: Proper, ConformalGrid, SteppedModulus, SteppedPhase
//		• A vertical-flip compositor producing a ready-to-display pixel buffer
//
// ✨ Why choose phaseport?
//
//   - Deterministic – pure functions end to end, identical inputs ⇒ identical images
//   - Caller-owned data – the input grid is never mutated, the output never aliases it
//   - Per-pixel degradation – degenerate samples (zero modulus) taint one pixel, never the render
//   - Explicit configuration – all tunables travel through Options, no hidden globals
//
// Everything is organized under three subpackages:
//
//	periodic/ — step-index bucketing and sawtooth ramps over arbitrary periods
//	colormap/ — cyclic hue-wheel construction (Standard and Reference layouts)
//	portrait/ — phase/modulus encoding, compositing and the Render entry point
//
// Quick sketch of the data flow:
//
//	[][]complex128 ──► encoder (phase index + brightness mask)
//	                       │
//	   colormap ───────────┤
//	                       ▼
//	                  compositor ──► portrait.Image (row 0 = top)
//
// Dive into portrait.Render for the single entry point, and examples/
// for runnable scenarios.
//
//	go get github.com/katalvlaran/phaseport/portrait
package phaseport
