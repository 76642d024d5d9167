// Package balance converts a declared exchange into whole-number card counts.
//
// A spell trades some count of an input unit for some count of an output
// unit. The input side is valued from its unit multiplier, adjusted by how far
// the unit's tier sits from the spell's tier, amplified by the power boost and
// surcharged by the spell tier. The output side is valued the same way with
// the adjustments mirrored and a per-tier spell scale applied. The exact
// input/output ratio is then approximated to a small fraction within
// DefaultTolerancePercent, and its denominator and numerator become the input
// and output counts.
//
// Tier adjustments read fixed tables. A tier gap that falls outside a table is
// a domain error rather than a silent default.
package balance
