// Package cms provides a count-min sketch, a fixed-memory probabilistic
// structure for approximate per-key frequency counts.
//
// A sketch is a depth x width matrix of saturating signed 32-bit counters.
// Every increment hashes the key once per row and bumps one bin per row;
// a query reads the same bins and returns their minimum. The estimate never
// undercounts a true non-negative count but may overcount on hash
// collisions. Memory is fixed at construction regardless of how many
// distinct keys are observed.
//
// Sizing can be given directly (width and depth) or derived from a target
// error rate and confidence:
//
//	sketch, _ := cms.NewByProb(0.001, 0.999)
//	sketch.Add("key")
//	estimate := sketch.Count("key")
//
// A Sketch is not safe for concurrent use.
package cms
