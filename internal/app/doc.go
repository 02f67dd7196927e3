// Package app wires the registry, validator, and entrypoint checker into
// the two phases the CLI exposes. An App owns an isolated logger and a
// per-run registry; nothing it builds survives past the run's report.
package app
