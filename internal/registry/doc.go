// Package registry provides the central "glue" for the monitor model system.
//
// The Registry is responsible for storing mappings between the handler names
// used in manifests (e.g., "StateComparisonMonitor") and the compiled Go
// types that declare the implementation's callable signature. It also holds
// the parsed manifests discovered on disk for the current run.
//
// A Registry is built fresh for every invocation and discarded when the
// run's report has been emitted; no state persists between runs.
package registry
