// Package parser turns the text field of an ASS/SSA dialogue line into typed
// parts.
//
// Every grammar rule extends an explicit backtracking tree. A rule that cannot
// complete pops the node it created from its parent, which rewinds the cursor
// to where the attempt began; this is the only backtracking primitive and it
// composes across nested alternatives. Inside a {...} block each backslash is
// offered to a fixed, ordered list of tag rules and anything none of them
// accept degrades to comment text, so malformed tags never abort a line.
//
// Parse runs a named rule from a fresh tree and succeeds only when the rule
// consumes the whole input. Parses share no state and are safe to run
// concurrently.
package parser
