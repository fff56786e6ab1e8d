// Package data implements the dynamically-typed value algebra ("data")
// that mirrors pkg/vtype's type algebra: none, the scalar kinds, and the
// container/record kinds built from them. A Data is an immutable value
// (copy it freely); DataView is a non-owning read accessor bound to an
// owning Data's lifetime, cheap enough to hand to a value index without
// copying the underlying payload.
package data
