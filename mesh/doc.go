// Package mesh converts flattened vector paths into triangle meshes
// for an external GPU renderer to upload.
//
// This package produces a pure data structure ([]Triangle) and links
// no graphics API: GPU backends are out of scope for the core (see
// spec.md §1), but the tessellation step that would feed one is a
// useful, self-contained boundary to expose.
package mesh
