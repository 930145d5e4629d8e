// Package domain contains shared domain types used across entity sub-packages.
// The to-do entity lives in domain/todo. This root package holds sentinel
// errors and the field-level validation error type.
package domain
