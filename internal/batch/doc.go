// Package batch parses every dialogue line of a script concurrently.
//
// A run fans lines out to a bounded errgroup, consults the parse cache before
// invoking the parser, and returns results in script order. Per-line parse
// failures are reported on the result and never abort the run; only context
// cancellation does.
package batch
