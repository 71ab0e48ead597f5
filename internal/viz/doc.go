// Package viz renders the clock grid in a terminal.
//
// Each clock is one arrow glyph pointing along its primary hand, coloured
// by the sign and magnitude of its speed. Pacemakers are drawn as filled
// dots. A side panel shows the phase order parameter over time.
//
// Keys: space pauses, t cycles colour themes, q quits.
package viz
