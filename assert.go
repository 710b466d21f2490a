//go:build !vectordebug

package vector

// debugAssertions is false in regular builds: unchecked accessors rely on
// the caller and on Go's own bounds checks.
const debugAssertions = false
