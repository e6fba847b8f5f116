// Package tween drives timed interpolation of item transforms toward layout
// targets. An [Engine] keeps at most one active transition per item and
// attribute (position or rotation); starting a new one atomically cancels
// the old, reading the new start value from the item's live transform so
// motion stays continuous across formation switches.
//
// The engine never schedules itself: an external frame loop calls
// [Engine.Tick] with a timestamp, and every active transition advances
// against that same timestamp. Progress is wall-clock based, so a slow frame
// rate delays motion but never changes the total duration.
package tween
