// Package section defines the capability every configuration sub-block
// implements, plus the coercion helpers sections use to merge generic values.
//
// A section owns its defaults, merges leniently (unknown or mismatched keys
// never error, they just keep the previous value) and validates itself only
// after all merge passes have run. The same LoadFromValue path handles both
// decoded config-file tables and the flat string maps built from the
// environment overlay.
package section
