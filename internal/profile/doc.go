// Package profile flattens the layered style configuration into one
// immutable resolved profile per rendered entity.
//
// Resolution is a plain merge over optional-field records: hardcoded
// baseline, then type defaults, then per-speaker or per-alias overrides.
// The model is built once at load time and is read-only afterwards, so the
// rest of the pipeline can share resolved profiles by reference.
package profile
