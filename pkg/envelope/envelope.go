// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package envelope

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/wsse"
)

// Warning is a non-fatal serialization note surfaced to the caller, e.g.
// a producer geometry that could not be recognized as JSON and was sent
// unchanged.
type Warning struct {
	Field   string
	Message string
}

// Payload writes the operation-specific content of a request body.
// Implementations append children to the request root element in the
// order the remote schema mandates.
type Payload interface {
	writeBody(req *etree.Element, w *warnings) error
}

type warnings struct {
	list []Warning
}

func (w *warnings) add(field, message string) {
	w.list = append(w.list, Warning{Field: field, Message: message})
}

// Build composes a complete SOAP 1.1 envelope: WS-Security header from
// the security context, the client-identifier header element and the
// descriptor-driven body. All text content passes through etree, which
// escapes user-supplied values.
func Build(desc *Descriptor, sc *wsse.SecurityContext, username, clientID string, payload Payload) (string, []Warning, error) {
	if desc == nil {
		return "", nil, fmt.Errorf("operation descriptor is required")
	}
	if sc == nil {
		return "", nil, fmt.Errorf("security context is required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	env := doc.CreateElement("soapenv:Envelope")
	env.CreateAttr("xmlns:soapenv", NSSoapEnv)
	env.CreateAttr("xmlns:v1", desc.ServiceNS)
	if desc.ModelNS != "" {
		env.CreateAttr("xmlns:v11", desc.ModelNS)
	}

	header := env.CreateElement("soapenv:Header")
	writeSecurityHeader(header, sc, username)

	clientHeader := header.CreateElement("v4:WebServiceClientId")
	clientHeader.CreateAttr("xmlns:v4", NSBaseV4)
	clientHeader.SetText(clientID)

	body := env.CreateElement("soapenv:Body")
	req := body.CreateElement("v1:" + desc.RequestElement)

	w := &warnings{}
	if payload != nil {
		if err := payload.writeBody(req, w); err != nil {
			return "", nil, err
		}
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize envelope: %w", err)
	}
	return out, w.list, nil
}

// writeSecurityHeader emits the WS-Security block: Timestamp first, then
// the UsernameToken with digest password and base64 nonce, exactly as the
// OASIS UsernameToken Profile 1.0 prescribes.
func writeSecurityHeader(header *etree.Element, sc *wsse.SecurityContext, username string) {
	sec := header.CreateElement("wsse:Security")
	sec.CreateAttr("xmlns:wsse", wsse.NSSecurityExt)
	sec.CreateAttr("xmlns:wsu", wsse.NSSecurityUtil)

	ts := sec.CreateElement("wsu:Timestamp")
	ts.CreateAttr("wsu:Id", sc.TimestampID)
	ts.CreateElement("wsu:Created").SetText(sc.CreatedString())
	ts.CreateElement("wsu:Expires").SetText(sc.ExpiresString())

	token := sec.CreateElement("wsse:UsernameToken")
	token.CreateAttr("wsu:Id", sc.TokenID)
	token.CreateElement("wsse:Username").SetText(username)

	password := token.CreateElement("wsse:Password")
	password.CreateAttr("Type", wsse.PasswordDigestType)
	password.SetText(sc.PasswordDigest)

	nonce := token.CreateElement("wsse:Nonce")
	nonce.CreateAttr("EncodingType", wsse.NonceEncodingType)
	nonce.SetText(sc.NonceB64)

	token.CreateElement("wsu:Created").SetText(sc.CreatedString())
}
