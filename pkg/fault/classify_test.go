package fault

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_NetworkError(t *testing.T) {
	se := Classify(TransportOutcome{Err: errors.New("dial tcp: connection refused")})

	require.NotNil(t, se)
	assert.Equal(t, CodeNetwork, se.Code)
	assert.True(t, se.Retryable)
	assert.Zero(t, se.HTTPStatus)
	assert.Contains(t, se.Message, "connection refused")
}

func TestClassify_AuthenticationFaultBecomes401(t *testing.T) {
	se := Classify(TransportOutcome{
		Status:      http.StatusInternalServerError,
		FaultCode:   "wsse:FailedAuthentication",
		FaultString: "Authentication of the message failed",
	})

	assert.Equal(t, http.StatusUnauthorized, se.HTTPStatus)
	assert.Equal(t, CodeAuthentication, se.Code)
}

func TestClassify_SchemaValidationBecomes400(t *testing.T) {
	se := Classify(TransportOutcome{
		Status:      http.StatusInternalServerError,
		FaultCode:   "soap:Client",
		FaultString: "cvc-complex-type.2.4.a: Invalid content was found starting with element 'hsHeading'",
	})

	assert.Equal(t, http.StatusBadRequest, se.HTTPStatus)
	assert.Equal(t, CodeBusinessRules, se.Code)
}

func TestClassify_BusinessRulesException(t *testing.T) {
	se := Classify(TransportOutcome{
		Status:      http.StatusInternalServerError,
		FaultString: "eu.europa.ec.traces.BusinessRulesValidationException: statement rejected",
	})

	assert.Equal(t, http.StatusBadRequest, se.HTTPStatus)
	assert.Equal(t, CodeBusinessRules, se.Code)
}

func TestClassify_KnownDetailCodeWins(t *testing.T) {
	se := Classify(TransportOutcome{
		Status:      http.StatusInternalServerError,
		FaultString: "BusinessRulesValidationException",
		DetailCodes: []string{"EUDR_COMMODITIES_HS_CODE_INVALID", "EUDR_STATEMENT_REFERENCE_NUMBER_UNKNOWN"},
	})

	assert.Equal(t, http.StatusBadRequest, se.HTTPStatus)
	assert.Equal(t, "EUDR_COMMODITIES_HS_CODE_INVALID", se.Code)
	assert.Contains(t, se.Message, "HS heading")
}

func TestClassify_FirstRecognizedDetailCodeWins(t *testing.T) {
	se := Classify(TransportOutcome{
		Status:      http.StatusInternalServerError,
		DetailCodes: []string{"SOMETHING_LOCAL", "EUDR_STATEMENT_NOT_RETRACTABLE"},
	})

	assert.Equal(t, "EUDR_STATEMENT_NOT_RETRACTABLE", se.Code)
}

func TestClassify_UnrecognizedDetailCodePassesThrough(t *testing.T) {
	se := Classify(TransportOutcome{
		Status:      http.StatusInternalServerError,
		FaultString: "some new server failure",
		DetailCodes: []string{"EUDR_SOMETHING_NEW"},
	})

	assert.Equal(t, "EUDR_SOMETHING_NEW", se.Code)
	assert.Equal(t, http.StatusInternalServerError, se.HTTPStatus)
	assert.Equal(t, "some new server failure", se.Message)
}

func TestClassify_UnknownFaultKeepsStatus(t *testing.T) {
	se := Classify(TransportOutcome{
		Status:      http.StatusInternalServerError,
		FaultCode:   "soap:Server",
		FaultString: "java.lang.NullPointerException",
	})

	assert.Equal(t, http.StatusInternalServerError, se.HTTPStatus)
	assert.Equal(t, CodeUnknownServerError, se.Code)
	assert.Equal(t, "java.lang.NullPointerException", se.Message)
}

func TestClassify_EmptyOutcomeStillStructured(t *testing.T) {
	se := Classify(TransportOutcome{})

	require.NotNil(t, se)
	assert.Equal(t, CodeUnknownServerError, se.Code)
	assert.Equal(t, http.StatusInternalServerError, se.HTTPStatus)
}

func TestStructuredError_Error(t *testing.T) {
	assert.Equal(t, "NET_MASS_EMPTY (commodities[0].goodsMeasure.netWeight): net mass is required",
		Validation(CodeNetMassEmpty, "commodities[0].goodsMeasure.netWeight", "net mass is required").Error())
	assert.Equal(t, "NETWORK_ERROR: timeout", (&StructuredError{Code: CodeNetwork, Message: "timeout"}).Error())
}
