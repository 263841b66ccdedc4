// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package envelope

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/statement"
)

// EchoPayload carries the echo query string.
type EchoPayload struct {
	Query string
}

func (p EchoPayload) writeBody(req *etree.Element, _ *warnings) error {
	req.CreateElement("v1:query").SetText(p.Query)
	return nil
}

// DdsIdentifiersPayload requests statement info for one or more DDS
// identifiers. Identifiers are always emitted as repeated siblings.
type DdsIdentifiersPayload struct {
	Identifiers []string
}

func (p DdsIdentifiersPayload) writeBody(req *etree.Element, _ *warnings) error {
	if len(p.Identifiers) == 0 {
		return fmt.Errorf("at least one DDS identifier is required")
	}
	for _, id := range p.Identifiers {
		req.CreateElement("v1:identifier").SetText(id)
	}
	return nil
}

// InternalReferencePayload requests statement info by the submitter's own
// internal reference number.
type InternalReferencePayload struct {
	InternalReferenceNumber string
}

func (p InternalReferencePayload) writeBody(req *etree.Element, _ *warnings) error {
	req.CreateElement("v1:internalReferenceNumber").SetText(p.InternalReferenceNumber)
	return nil
}

// StatementIdentifiersPayload requests a statement by its public
// reference and verification numbers.
type StatementIdentifiersPayload struct {
	ReferenceNumber    string
	VerificationNumber string
}

func (p StatementIdentifiersPayload) writeBody(req *etree.Element, _ *warnings) error {
	req.CreateElement("v1:referenceNumber").SetText(p.ReferenceNumber)
	req.CreateElement("v1:verificationNumber").SetText(p.VerificationNumber)
	return nil
}

// SubmitPayload carries a new statement submission.
type SubmitPayload struct {
	OperatorType string
	Statement    *statement.Statement
}

func (p SubmitPayload) writeBody(req *etree.Element, w *warnings) error {
	if p.Statement == nil {
		return fmt.Errorf("statement is required")
	}
	req.CreateElement("v1:operatorType").SetText(p.OperatorType)
	writeStatement(req.CreateElement("v1:statement"), p.Statement, w)
	return nil
}

// AmendPayload replaces the content of a previously submitted statement.
type AmendPayload struct {
	DdsIdentifier string
	Statement     *statement.Statement
}

func (p AmendPayload) writeBody(req *etree.Element, w *warnings) error {
	if p.Statement == nil {
		return fmt.Errorf("statement is required")
	}
	req.CreateElement("v1:ddsIdentifier").SetText(p.DdsIdentifier)
	writeStatement(req.CreateElement("v1:statement"), p.Statement, w)
	return nil
}

// RetractPayload withdraws a previously submitted statement.
type RetractPayload struct {
	DdsIdentifier string
}

func (p RetractPayload) writeBody(req *etree.Element, _ *warnings) error {
	req.CreateElement("v1:ddsIdentifier").SetText(p.DdsIdentifier)
	return nil
}
