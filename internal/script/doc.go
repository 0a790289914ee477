// Package script reads the [Events] section of an ASS/SSA script and hands
// each dialogue line's text to the parser. Styles and other sections are
// skipped.
package script
