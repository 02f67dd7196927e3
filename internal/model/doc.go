// SPDX-License-Identifier: MIT
//
// Package model provides the Go struct representation of monitor model
// manifests. Its core purpose is to create a strongly-typed, in-memory model
// of the declared monitor interfaces by parsing the raw HCL manifest files.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - ModelManifest: the declarative contract of one monitor model. It names
//     the model, its category, the input and output ports it exposes to a
//     simulation space, the visualizations it promises to emit, and the
//     implementation artifact expected to honor that contract.
//
//   - Port: a single named input or output slot with an enumerated data type
//     tag (state, scalar, series).
//
//   - VisualizationSpec: a promised visualization, identified by kind, with
//     opaque rendering hints passed through untouched.
//
//   - Diagnostic: a single validation finding (severity, manifest, message,
//     optional field path). Diagnostics are accumulated across a whole run and
//     never thrown away; they are the validator's output artifact.
//
//   - FSInfo: metadata linking every manifest back to its source file, so
//     findings can point at the exact file that declared the problem.
//
// Why a separate model package?
//
// This package acts as a critical intermediate layer. It organizes raw HCL
// bodies into a predictable structure, validated field by field before the
// typed entity is constructed. Shape errors are therefore caught at the edge
// with precise field paths, instead of surfacing deep inside the schema
// validator or the entrypoint checker.
//
// Manifests are constructed fresh on every run and never mutated afterwards;
// validation only reads them. Per-manifest processing state lives outside the
// manifest, in the run's result records.
package model
