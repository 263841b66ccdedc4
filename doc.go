// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package eudrclient implements a SOAP client for the European Commission's
TRACES EUDR web services: Due Diligence Statement submission, amendment,
retraction and retrieval, plus the availability echo service.

# Overview

The TRACES EUDR endpoints are classic SOAP 1.1 services protected with
WS-Security UsernameToken authentication (OASIS Web Services Security
UsernameToken Profile 1.0). Every request carries a fresh security header
with a random nonce, a millisecond-precision creation timestamp and a
password digest computed as base64(SHA1(nonce || created || password)).
Nonces are single-use, so the client never retries on its own; callers that
retry get a freshly generated header.

# Package Structure

	github.com/mfrntic/eudr-api-client-sub000/pkg/client     - Operation facade (submit, amend, retract, retrieve, echo)
	github.com/mfrntic/eudr-api-client-sub000/pkg/statement  - Due Diligence Statement domain model
	github.com/mfrntic/eudr-api-client-sub000/pkg/validation - Business-rule validation before any network call
	github.com/mfrntic/eudr-api-client-sub000/pkg/envelope   - SOAP 1.1 envelope construction per operation descriptor
	github.com/mfrntic/eudr-api-client-sub000/pkg/wsse       - WS-Security UsernameToken header material
	github.com/mfrntic/eudr-api-client-sub000/pkg/response   - Namespace-agnostic response parsing and array normalization
	github.com/mfrntic/eudr-api-client-sub000/pkg/fault      - StructuredError taxonomy and SOAP Fault classification
	github.com/mfrntic/eudr-api-client-sub000/pkg/transport  - HTTPS POST transport with TLS 1.2/1.3

# Quick Start

	import (
	    "github.com/mfrntic/eudr-api-client-sub000/pkg/client"
	    "github.com/mfrntic/eudr-api-client-sub000/pkg/statement"
	)

	c, err := client.New(client.ServiceConfig{
	    Username:           "n00xxxxx",
	    Password:           "apikey",
	    WebServiceClientID: "eudr-test",
	})
	if err != nil {
	    // configuration error
	}

	result, err := c.SubmitDds(ctx, statement.OperatorTypeOperator, stmt)

Validation always runs before serialization, so statements violating the
activity-type / HS-heading / unit-of-measure rule table never reach the
network. All failures surface as *fault.StructuredError with a stable
symbolic code; callers branch on the code, never on transport exceptions.

# Specifications

  - OASIS WSS UsernameToken Profile 1.0:
    https://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-username-token-profile-1.0.pdf
  - SOAP 1.1: https://www.w3.org/TR/2000/NOTE-SOAP-20000508/
  - EUDR: Regulation (EU) 2023/1115

# License

BSD-2-Clause License
*/
package eudrclient
