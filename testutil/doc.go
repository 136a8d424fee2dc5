// Package testutil provides seeded random workloads shared by the tests
// of tuplemap and its subpackages.
package testutil
