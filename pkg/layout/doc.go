// Package layout implements a single-pass flexbox solver over pixel
// geometry.
//
// The solver is a pure function: given an ordered list of items (each
// carrying a main-axis sizing constraint and an intrinsic content size)
// and a set of container rules, Solve produces one rectangle per item in
// input order. It holds no state between calls and is safe to invoke
// from independent containers concurrently.
package layout
