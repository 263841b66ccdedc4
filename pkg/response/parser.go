// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

// Package response parses SOAP responses from the TRACES EUDR services and
// normalizes them into a stable tree shape.
//
// Different TRACES deployments prefix the same elements differently (ns3,
// ns4, ns5 or a default namespace), so every lookup here matches on local
// element names and never on prefixes. Fields the schema marks repeatable
// are coerced to arrays even when a single occurrence collapsed into a
// bare object during tree-ization.
package response

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/fault"
)

// Fault is the extracted shape of a SOAP Fault body.
type Fault struct {
	Code   string
	String string
	// DetailCodes are structured application error codes found inside
	// the detail element, in document order.
	DetailCodes []string
}

// Parse reads raw response bytes into an XML document. Malformed XML is
// reported as a protocol StructuredError, never as a raw parser error.
func Parse(data []byte) (*etree.Document, *fault.StructuredError) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fault.Protocol("malformed XML response: " + err.Error())
	}
	if doc.Root() == nil {
		return nil, fault.Protocol("empty XML response")
	}
	return doc, nil
}

// ExtractOperationResult locates the Body child whose local name is
// <operationName>Response. When no response element exists the Body is
// checked for a Fault, which is returned as a shape instead of an error.
// A missing Envelope or Body is a protocol StructuredError.
func ExtractOperationResult(doc *etree.Document, operationName string) (*etree.Element, *Fault, *fault.StructuredError) {
	root := doc.Root()
	if root == nil || root.Tag != "Envelope" {
		return nil, nil, fault.Protocol("response is not a SOAP envelope")
	}

	body := childByLocalName(root, "Body")
	if body == nil {
		return nil, nil, fault.Protocol("SOAP envelope has no Body")
	}

	want := operationName + "Response"
	for _, child := range body.ChildElements() {
		// Local-name match keeps the lookup independent of whatever
		// prefix the deployment chose.
		if child.Tag == want || strings.HasSuffix(child.Tag, want) {
			return child, nil, nil
		}
	}

	if f := childByLocalName(body, "Fault"); f != nil {
		return nil, extractFault(f), nil
	}

	return nil, nil, fault.Protocol("Body contains neither " + want + " nor a Fault")
}

func childByLocalName(e *etree.Element, local string) *etree.Element {
	for _, child := range e.ChildElements() {
		if child.Tag == local {
			return child
		}
	}
	return nil
}

// extractFault pulls faultcode, faultstring and any structured error codes
// out of a Fault element.
func extractFault(f *etree.Element) *Fault {
	out := &Fault{}
	if e := childByLocalName(f, "faultcode"); e != nil {
		out.Code = strings.TrimSpace(e.Text())
	}
	if e := childByLocalName(f, "faultstring"); e != nil {
		out.String = strings.TrimSpace(e.Text())
	}
	if detail := childByLocalName(f, "detail"); detail != nil {
		collectDetailCodes(detail, &out.DetailCodes)
	}
	return out
}

// collectDetailCodes walks a detail subtree gathering the text of every
// element that carries an application error code.
func collectDetailCodes(e *etree.Element, codes *[]string) {
	for _, child := range e.ChildElements() {
		switch child.Tag {
		case "code", "errorCode", "messageCode":
			if text := strings.TrimSpace(child.Text()); text != "" {
				*codes = append(*codes, text)
			}
		}
		collectDetailCodes(child, codes)
	}
}
