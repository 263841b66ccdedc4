// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package fault

import (
	"net/http"
	"strings"
)

// TransportOutcome is what the transport layer hands to the classifier:
// either an error with no response, or a status plus the Fault content
// extracted from the body.
type TransportOutcome struct {
	// Err is the network-level failure, nil when a response arrived.
	Err error
	// Status is the HTTP status of the response, when one arrived.
	Status int
	// FaultCode and FaultString come from the SOAP Fault element.
	FaultCode   string
	FaultString string
	// DetailCodes are structured application error codes found in the
	// Fault detail, in document order.
	DetailCodes []string
}

// Substrings that mark an authentication failure inside a Fault. TRACES
// answers every Fault with HTTP 500, so the text is the only signal.
var authenticationMarkers = []string{
	"FailedAuthentication",
	"Authentication of the message failed",
	"UnauthenticatedException",
	"security token could not be authenticated",
	"Invalid username or password",
}

// Substrings that mark a server-side schema or business-rule rejection.
var businessRuleMarkers = []string{
	"cvc-",
	"BusinessRulesValidationException",
	"Unmarshalling Error",
}

// knownDetailCodes maps structured application codes carried in Fault
// details to their documented messages. The table is immutable; first
// recognized code wins, unrecognized codes pass through verbatim.
var knownDetailCodes = map[string]string{
	"EUDR_WEBSERVICE_USER_ROLE_INVALID":               "web service user does not have the role required for this operation",
	"EUDR_COMMODITIES_HS_CODE_INVALID":                "HS heading is not covered by the EUDR commodity scope",
	"EUDR_COMMODITIES_DESCRIPTOR_NET_MASS_EMPTY":      "net mass is required for this commodity",
	"EUDR_COMMODITIES_PRODUCER_GEOMETRY_INVALID":      "producer geolocation is not a valid GeoJSON document",
	"EUDR_STATEMENT_REFERENCE_NUMBER_UNKNOWN":         "referenced statement does not exist",
	"EUDR_STATEMENT_VERIFICATION_NUMBER_MISMATCH":     "verification number does not match the referenced statement",
	"EUDR_STATEMENT_NOT_RETRACTABLE":                  "statement can no longer be retracted",
	"EUDR_STATEMENT_INTERNAL_REFERENCE_NUMBER_ABSENT": "internal reference number is required",
	"EUDR_API_AVAILABILITY_EXCEPTION":                 "the EUDR service is temporarily unavailable",
}

// Classify maps a transport outcome onto a StructuredError. It is total:
// it never returns nil for a failed outcome and never panics.
func Classify(outcome TransportOutcome) *StructuredError {
	if outcome.Err != nil {
		return &StructuredError{
			Code:      CodeNetwork,
			Message:   outcome.Err.Error(),
			Retryable: true,
		}
	}

	// A recognized structured application code takes priority over
	// faultstring pattern matching; first recognized code wins.
	for _, code := range outcome.DetailCodes {
		if msg, ok := knownDetailCodes[code]; ok {
			return &StructuredError{
				HTTPStatus: http.StatusBadRequest,
				Code:       code,
				Message:    msg,
			}
		}
	}

	text := outcome.FaultString
	if text == "" {
		text = outcome.FaultCode
	}

	if containsAny(text, authenticationMarkers) || containsAny(outcome.FaultCode, authenticationMarkers) {
		return &StructuredError{
			HTTPStatus: http.StatusUnauthorized,
			Code:       CodeAuthentication,
			Message:    text,
		}
	}

	if containsAny(text, businessRuleMarkers) {
		return &StructuredError{
			HTTPStatus: http.StatusBadRequest,
			Code:       CodeBusinessRules,
			Message:    text,
		}
	}

	// Unrecognized structured codes pass through verbatim rather than
	// being dropped.
	if len(outcome.DetailCodes) > 0 {
		return &StructuredError{
			HTTPStatus: outcome.Status,
			Code:       outcome.DetailCodes[0],
			Message:    text,
		}
	}

	status := outcome.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &StructuredError{
		HTTPStatus: status,
		Code:       CodeUnknownServerError,
		Message:    text,
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
