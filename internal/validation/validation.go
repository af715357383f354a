// Package validation binds and validates request payloads.
//
// It uses the `validator` library to enforce rules defined in struct tags
// (like required fields) and turns failures into field-level errors the
// client can understand.
package validation
