package section

// Section is implemented by every configuration sub-block (server, database,
// logging, secrets, cors, storage). The loader drives sections polymorphically,
// so new sections can be added without touching the merge algorithm.
type Section interface {
	// Name returns the section key used in config files, env var names and
	// diagnostics (e.g. "cors").
	Name() string

	// LoadFromValue merges a generic decoded value (nested maps, slices,
	// scalars) into the section. The merge is lenient: unknown keys are
	// ignored, and missing or type-mismatched keys preserve the value the
	// section already holds. It is never an error to pass a value that is
	// not a table at all.
	LoadFromValue(value any) error

	// Validate runs semantic checks. It must only be called once merging is
	// complete; sections are never validated on partial state.
	Validate() error
}
