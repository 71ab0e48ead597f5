// Package analysis provides spectral tools for probe traces.
//
//   - [PowerSpectrum]: magnitude spectrum of a mean-removed, zero-padded trace
//   - [DominantFrequency]: strongest non-DC frequency in Hz
//
// A probe's hand projection cos(phase) oscillates at speed/(2π) Hz, so the
// dominant frequency of a recorded trace is the probe's settled speed in
// turns per second.
//
//	hz, err := analysis.DominantFrequency(rec.Signal(), 1.0/60)
package analysis
