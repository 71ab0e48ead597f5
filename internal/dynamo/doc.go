// Package dynamo provides the coupled-oscillator kernel.
//
// A [Grid] owns a rectangle of [Oscillator] values ("clocks"). Every step
// each unlocked oscillator relaxes its angular speed toward the mean speed
// of its Moore neighborhood while two speed-locked pacemakers drive the
// grid at opposite fixed speeds:
//
//   - [Oscillator]: phase pair, signed speed and the per-step update rule
//   - [Grid]: construction, neighbor accumulation and the two-pass step
//   - [View]: read-only access to cell state for renderers and metrics
//   - [ParallelFor]: row-chunked worker helper used by both passes
//
// # Example
//
//	g, _ := dynamo.New(dynamo.DefaultParams(31, 17))
//	for i := 0; i < 600; i++ {
//		if err := g.Step(1.0 / 60); err != nil {
//			return err
//		}
//	}
//
// # Update ordering
//
// Step runs [Grid.Accumulate] over the whole grid before any call to
// [Oscillator.Advance]. Accumulation only reads speeds and only writes
// neighbor sums, so every cell sees the pre-step speeds of its neighbors
// regardless of visiting order or worker count.
//
// # Thread Safety
//
// Grid instances are NOT thread-safe. Callers interleave reads (rendering)
// and Step from a single goroutine.
package dynamo
