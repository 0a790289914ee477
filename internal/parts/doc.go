// Package parts defines the typed values produced by the override-tag parser.
//
// A dialogue line decomposes into an ordered sequence of Part values: literal
// text runs, comments, line breaks, and one variant per supported override
// tag. Every variant is an immutable value type. Nullable payloads are
// pointers; nil means "reset to the style default" and is resolved by the
// consumer, never by this package.
//
// The Envelope helpers give each part a stable kind name so the CLI, the HTTP
// API and the parse cache can encode sequences as JSON or YAML without losing
// the variant.
package parts
