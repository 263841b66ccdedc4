// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

// Package fault defines the StructuredError shape every failure of the
// client converges into, and the classifier that maps transport outcomes
// and SOAP Faults onto it.
//
// Callers branch on Code and HTTPStatus, never on transport-specific
// exception types. The classifier is total: any input, including garbage
// bodies, yields a StructuredError rather than a panic or a raw parser
// error.
package fault

import "fmt"

// Stable symbolic error codes. These never change between releases;
// callers are expected to switch on them.
const (
	CodeConfiguration      = "CONFIGURATION_ERROR"
	CodeValidation         = "VALIDATION_ERROR"
	CodeNetwork            = "NETWORK_ERROR"
	CodeProtocol           = "PROTOCOL_ERROR"
	CodeAuthentication     = "AUTHENTICATION_FAILED"
	CodeBusinessRules      = "BUSINESS_RULES_VALIDATION"
	CodeUnknownServerError = "UNKNOWN_SERVER_ERROR"
)

// Validation rule codes reported before any network call.
const (
	CodeNetMassEmpty                 = "NET_MASS_EMPTY"
	CodeNetMassOrSupplementaryUnit   = "NET_MASS_OR_SUPPLEMENTARY_UNIT_REQUIRED"
	CodeSupplementaryUnitMissing     = "SUPPLEMENTARY_UNIT_MISSING"
	CodeSupplementaryUnitForbidden   = "SUPPLEMENTARY_UNIT_FORBIDDEN"
	CodeSupplementaryQualifierPaired = "SUPPLEMENTARY_UNIT_QUALIFIER_PAIRED"
	CodeSupplementaryQualifierValue  = "SUPPLEMENTARY_UNIT_QUALIFIER_INVALID"
	CodePercentageEstimationInvalid  = "PERCENTAGE_ESTIMATION_INVALID"
	CodePercentageEstimationIllegal  = "PERCENTAGE_ESTIMATION_FORBIDDEN"
	CodeActivityTypeInvalid          = "ACTIVITY_TYPE_INVALID"
)

// StructuredError is the single error shape surfaced to callers.
type StructuredError struct {
	// HTTPStatus is the effective status after reclassification
	// (a 500 Fault with an authentication marker becomes 401).
	// Zero when no HTTP response was received.
	HTTPStatus int
	// Code is a stable symbolic error code.
	Code string
	// Message is human-readable context.
	Message string
	// Field names the offending statement field for validation errors.
	Field string
	// Retryable reports whether a fresh attempt can plausibly succeed.
	// Retrying is the caller's job; nonces are single-use so the client
	// never retries internally.
	Retryable bool
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validation builds a validation StructuredError for a statement field.
func Validation(code, field, message string) *StructuredError {
	return &StructuredError{
		HTTPStatus: 0,
		Code:       code,
		Message:    message,
		Field:      field,
	}
}

// Configuration builds a configuration StructuredError raised before any
// call is attempted.
func Configuration(message string) *StructuredError {
	return &StructuredError{Code: CodeConfiguration, Message: message}
}

// Protocol builds a protocol StructuredError for malformed or
// unexpectedly shaped XML.
func Protocol(message string) *StructuredError {
	return &StructuredError{Code: CodeProtocol, Message: message}
}
