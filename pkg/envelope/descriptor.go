// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

// Package envelope builds SOAP 1.1 request envelopes for the TRACES EUDR
// services.
//
// One generic engine serves every operation; the per-operation schema
// facts (namespaces, request root element, SOAPAction, service path) live
// in Descriptor values. Element order inside the body follows the remote
// XML Schema sequences exactly, because schema-sequence violations are
// rejected outright by the server.
package envelope

// Namespace URIs used across the EUDR services. These are externally
// defined schema facts, not configuration.
const (
	NSSoapEnv      = "http://schemas.xmlsoap.org/soap/envelope/"
	NSEchoV1       = "http://ec.europa.eu/tracesnt/certificate/eudr/echo/v1"
	NSRetrievalV1  = "http://ec.europa.eu/tracesnt/certificate/eudr/retrieval/v1"
	NSSubmissionV1 = "http://ec.europa.eu/tracesnt/certificate/eudr/submission/v1"
	NSModelV1      = "http://ec.europa.eu/tracesnt/certificate/eudr/model/v1"
	NSBaseV4       = "http://ec.europa.eu/sanco/tracesnt/base/v4"
)

// Descriptor fixes the schema facts of one SOAP operation. Descriptors
// are immutable package data; nothing is discovered at runtime.
type Descriptor struct {
	// Operation is the local operation name; the response element is
	// expected as <Operation>Response.
	Operation string
	// RequestElement is the local name of the body root element.
	RequestElement string
	// SOAPAction is sent verbatim in the SOAPAction HTTP header.
	SOAPAction string
	// ServicePath is the path of the service under the TRACES base URL.
	ServicePath string
	// ServiceNS is the namespace of the request root element.
	ServiceNS string
	// ModelNS is the namespace for statement model elements, empty for
	// operations that carry no statement.
	ModelNS string
}

// Operation descriptors for the EUDR service family.
var (
	Echo = &Descriptor{
		Operation:      "Echo",
		RequestElement: "EchoRequest",
		SOAPAction:     "http://ec.europa.eu/tracesnt/certificate/eudr/echo/testEcho",
		ServicePath:    "/tracesnt/ws/EudrEchoService",
		ServiceNS:      NSEchoV1,
	}

	GetDdsInfo = &Descriptor{
		Operation:      "GetDdsInfo",
		RequestElement: "GetDdsInfoRequest",
		SOAPAction:     "http://ec.europa.eu/tracesnt/certificate/eudr/retrieval/getDdsInfo",
		ServicePath:    "/tracesnt/ws/EUDRRetrievalServiceV1",
		ServiceNS:      NSRetrievalV1,
	}

	GetDdsInfoByInternalReferenceNumber = &Descriptor{
		Operation:      "GetDdsInfoByInternalReferenceNumber",
		RequestElement: "GetDdsInfoByInternalReferenceNumberRequest",
		SOAPAction:     "http://ec.europa.eu/tracesnt/certificate/eudr/retrieval/getDdsInfoByInternalReferenceNumber",
		ServicePath:    "/tracesnt/ws/EUDRRetrievalServiceV1",
		ServiceNS:      NSRetrievalV1,
	}

	GetStatementByIdentifiers = &Descriptor{
		Operation:      "GetStatementByIdentifiers",
		RequestElement: "GetStatementByIdentifiersRequest",
		SOAPAction:     "http://ec.europa.eu/tracesnt/certificate/eudr/retrieval/getStatementByIdentifiers",
		ServicePath:    "/tracesnt/ws/EUDRRetrievalServiceV1",
		ServiceNS:      NSRetrievalV1,
		ModelNS:        NSModelV1,
	}

	SubmitStatement = &Descriptor{
		Operation:      "SubmitStatement",
		RequestElement: "SubmitStatementRequest",
		SOAPAction:     "http://ec.europa.eu/tracesnt/certificate/eudr/submission/submitDds",
		ServicePath:    "/tracesnt/ws/EUDRSubmissionServiceV1",
		ServiceNS:      NSSubmissionV1,
		ModelNS:        NSModelV1,
	}

	AmendStatement = &Descriptor{
		Operation:      "AmendStatement",
		RequestElement: "AmendStatementRequest",
		SOAPAction:     "http://ec.europa.eu/tracesnt/certificate/eudr/submission/amendDds",
		ServicePath:    "/tracesnt/ws/EUDRSubmissionServiceV1",
		ServiceNS:      NSSubmissionV1,
		ModelNS:        NSModelV1,
	}

	RetractStatement = &Descriptor{
		Operation:      "RetractStatement",
		RequestElement: "RetractStatementRequest",
		SOAPAction:     "http://ec.europa.eu/tracesnt/certificate/eudr/submission/retractDds",
		ServicePath:    "/tracesnt/ws/EUDRSubmissionServiceV1",
		ServiceNS:      NSSubmissionV1,
	}
)
