// Package buffer provides reusable sample buffers and pools for scratch
// arrays that live for exactly one processing call.
//
// A caller acquires scratch with [Pool.Get] and releases it with a deferred
// [Pool.Put], so the memory goes back to the pool on every exit path:
//
//	re := buffer.Floats.Get(n)
//	defer buffer.Floats.Put(re)
//
// All DSP functions accept raw slices; use [Buffer.Samples] to bridge.
package buffer
