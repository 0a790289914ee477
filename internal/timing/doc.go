// Package timing applies a dialogue's duration to parsed parts.
//
// The parser never invents times: a \move or \t without explicit times comes
// back with nil fields. Resolve fills those in from the line duration, and
// Karaoke accumulates karaoke tag durations into per-syllable start times.
package timing
