// Package main hosts the assparse CLI entrypoint and command graph.
//
// The Cobra command tree parses single lines and whole scripts, lists the
// grammar rules, runs the HTTP parse server, and maintains the parse cache and
// configuration file. It centralizes .env loading, configuration resolution,
// and logger setup so subcommands only deal with their own flags and output.
//
// Keep this package lean: parsing, timing, caching and serving live in
// internal packages; commands here only translate flags into calls and render
// the results as tables, JSON, or YAML.
package main
