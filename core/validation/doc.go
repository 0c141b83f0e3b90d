// Package validation validates request DTOs with go-playground/validator, reporting
// failures under the fields' JSON names.
package validation
