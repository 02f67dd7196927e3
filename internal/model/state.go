package model

// Status tracks a manifest through a single run.
//
// The lifecycle is Pending -> SchemaValid -> {EntrypointValid | EntrypointInvalid},
// or Pending -> SchemaInvalid. SchemaInvalid manifests never reach the
// entrypoint checker. Status is run-scoped and lives in result records, not
// on the manifest itself.
type Status int

const (
	StatusPending Status = iota
	StatusSchemaValid
	StatusSchemaInvalid
	StatusEntrypointValid
	StatusEntrypointInvalid
)

// String returns the human-readable form used in reports and logs.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSchemaValid:
		return "schema-valid"
	case StatusSchemaInvalid:
		return "schema-invalid"
	case StatusEntrypointValid:
		return "entrypoint-valid"
	case StatusEntrypointInvalid:
		return "entrypoint-invalid"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends a manifest's lifecycle for the run.
func (s Status) Terminal() bool {
	switch s {
	case StatusSchemaInvalid, StatusEntrypointValid, StatusEntrypointInvalid:
		return true
	default:
		return false
	}
}
