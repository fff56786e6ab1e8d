// Package vtype implements the VAST type algebra: a recursive,
// reference-stable schema language covering primitive, container, record,
// enumeration and alias types, with structural traversal, flattening,
// offset/key resolution, congruence, canonical printed forms, textual
// parsing and stable hashing.
//
// A Type is an immutable value (copy it freely). Two anonymous Types of the
// same variant with equal sub-structure and attributes are Equal; named
// Types are Equal only when their names also match. The zero Type{} is a
// distinguished invalid value that is never Equal to any constructed Type,
// including None().
package vtype
