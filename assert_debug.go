//go:build vectordebug

package vector

// debugAssertions enables precondition checks on the unchecked paths.
// Build with -tags vectordebug.
const debugAssertions = true
