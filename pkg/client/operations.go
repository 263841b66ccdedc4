// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package client

import (
	"context"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/envelope"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/fault"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/response"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/statement"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/validation"
)

// Echo verifies connectivity and credentials. It returns the status text
// the service echoes back.
func (c *Client) Echo(ctx context.Context, query string) (string, error) {
	elem, se := c.call(ctx, envelope.Echo, envelope.EchoPayload{Query: query})
	if se != nil {
		return "", se
	}
	return response.Text(tree(elem), "status"), nil
}

// SubmitDds validates and submits a new due diligence statement. The
// statement is validated locally first; nothing is sent when validation
// fails.
func (c *Client) SubmitDds(ctx context.Context, operatorType string, stmt *statement.Statement) (*SubmitResult, error) {
	if se := validation.Validate(stmt); se != nil {
		c.logger.Warn("statement rejected before submission", "code", se.Code, "field", se.Field)
		return nil, se
	}

	elem, se := c.call(ctx, envelope.SubmitStatement,
		envelope.SubmitPayload{OperatorType: operatorType, Statement: stmt})
	if se != nil {
		return nil, se
	}

	result := &SubmitResult{DdsIdentifier: response.Text(tree(elem), "ddsIdentifier")}
	if result.DdsIdentifier == "" {
		return nil, fault.Protocol("submission response carries no ddsIdentifier")
	}
	c.logger.Info("statement submitted", "ddsIdentifier", result.DdsIdentifier)
	return result, nil
}

// AmendDds replaces the content of a previously submitted statement. The
// identifier is the ddsIdentifier returned by SubmitDds. Only statements
// in AVAILABLE status can be amended; other states come back as business
// rule rejections from the service.
func (c *Client) AmendDds(ctx context.Context, ddsIdentifier string, stmt *statement.Statement) error {
	if ddsIdentifier == "" {
		return fault.Validation(fault.CodeValidation, "ddsIdentifier", "ddsIdentifier is required")
	}
	if se := validation.Validate(stmt); se != nil {
		c.logger.Warn("statement rejected before amendment", "code", se.Code, "field", se.Field)
		return se
	}

	_, se := c.call(ctx, envelope.AmendStatement,
		envelope.AmendPayload{DdsIdentifier: ddsIdentifier, Statement: stmt})
	if se != nil {
		return se
	}
	c.logger.Info("statement amended", "ddsIdentifier", ddsIdentifier)
	return nil
}

// RetractDds withdraws a previously submitted statement and returns the
// status text reported by the service.
func (c *Client) RetractDds(ctx context.Context, ddsIdentifier string) (string, error) {
	if ddsIdentifier == "" {
		return "", fault.Validation(fault.CodeValidation, "ddsIdentifier", "ddsIdentifier is required")
	}

	elem, se := c.call(ctx, envelope.RetractStatement, envelope.RetractPayload{DdsIdentifier: ddsIdentifier})
	if se != nil {
		return "", se
	}
	c.logger.Info("statement retracted", "ddsIdentifier", ddsIdentifier)
	return response.Text(tree(elem), "status"), nil
}

// GetDdsInfo returns the registration info for the given DDS identifiers.
func (c *Client) GetDdsInfo(ctx context.Context, identifiers ...string) ([]DdsInfo, error) {
	elem, se := c.call(ctx, envelope.GetDdsInfo, envelope.DdsIdentifiersPayload{Identifiers: identifiers})
	if se != nil {
		return nil, se
	}
	return decodeDdsInfoList(tree(elem)), nil
}

// GetDdsInfoByInternalReferenceNumber returns the registration info for
// every statement submitted under the given internal reference number.
func (c *Client) GetDdsInfoByInternalReferenceNumber(ctx context.Context, internalReferenceNumber string) ([]DdsInfo, error) {
	if internalReferenceNumber == "" {
		return nil, fault.Validation(fault.CodeValidation, "internalReferenceNumber", "internalReferenceNumber is required")
	}

	elem, se := c.call(ctx, envelope.GetDdsInfoByInternalReferenceNumber,
		envelope.InternalReferencePayload{InternalReferenceNumber: internalReferenceNumber})
	if se != nil {
		return nil, se
	}
	return decodeDdsInfoList(tree(elem)), nil
}

// GetStatementByIdentifiers retrieves the full content of a statement by
// its public reference and verification numbers. The result is the
// normalized response tree: maps keyed by local element name, with
// repeatable fields (commodities, producers, speciesInfo and the rest)
// always present as arrays.
func (c *Client) GetStatementByIdentifiers(ctx context.Context, referenceNumber, verificationNumber string) (map[string]any, error) {
	if referenceNumber == "" || verificationNumber == "" {
		return nil, fault.Validation(fault.CodeValidation, "referenceNumber",
			"referenceNumber and verificationNumber are required")
	}

	elem, se := c.call(ctx, envelope.GetStatementByIdentifiers,
		envelope.StatementIdentifiersPayload{ReferenceNumber: referenceNumber, VerificationNumber: verificationNumber})
	if se != nil {
		return nil, se
	}

	result, ok := tree(elem).(map[string]any)
	if !ok {
		return nil, fault.Protocol("statement response carries no content")
	}
	return result, nil
}
