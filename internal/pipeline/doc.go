// Package pipeline orchestrates the documentation build as an ordered
// sequence of steps: prepare, backup, discover, render, rewrite, orphan
// scan, and link check.
//
// Each step implements the Step interface and accumulates its results in a
// shared model.RunReport. Per-file problems are recorded in the report and
// never abort the run; a step error is reserved for conditions that make the
// rest of the run meaningless (a missing source directory, an unwritable
// output directory).
//
// The build is sequential by design. Page rendering may optionally fan out
// across goroutines, but the step boundaries are hard barriers: the
// cross-reference rewrite never starts before every page is written, because
// it operates over the complete output set.
package pipeline
