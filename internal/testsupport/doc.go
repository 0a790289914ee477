// Package testsupport provides shared helpers for assparse tests: per-test
// configuration with temp directories, script fixtures, and an opened parse
// cache with cleanup registered.
package testsupport
