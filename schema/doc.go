// Package schema is a concrete, struct-tag/reflect-driven implementation
// of the der.Schema adapter surface. The core der package never imports
// this package; it only ever speaks through der.Schema. This keeps the
// strict-DER decoder honest about the separation spec.md draws in §1
// between the core parser and "the schema object model itself ...
// external collaborator".
//
// Schema nodes are either built directly (Boolean(), Integer(), ...) for
// leaf types, or derived from a Go struct's exported fields and their
// `asn1:"..."` tags via FromStruct, the same way the teacher repository
// (github.com/JesseCoretta/go-asn1plus) derives wire layout from struct
// tags in its own runtime.go/opts.go.
package schema
