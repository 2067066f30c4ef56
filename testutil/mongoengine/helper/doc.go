// Package helper provides test doubles for the leanshape observability
// interfaces: a logger spy capturing plain and contextual log records, a
// metrics collector spy capturing metric calls, and a tracing collector spy
// capturing span lifecycles.
package helper
