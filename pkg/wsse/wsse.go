// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

// Package wsse produces WS-Security UsernameToken header material per the
// OASIS Web Services Security UsernameToken Profile 1.0.
//
// Each call to Generate yields a fresh SecurityContext: a 16-byte random
// nonce, a millisecond-precision creation timestamp, an expiry derived from
// the configured validity window and the password digest
//
//	base64(SHA1(nonce || created || password))
//
// The concatenation order is fixed by the profile; servers recompute the
// digest with exactly this order and reject anything else. Contexts are
// single-use: reusing a nonce trips server-side replay detection.
package wsse

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WS-Security namespace and attribute URIs
const (
	NSSecurityExt  = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
	NSSecurityUtil = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd"

	// PasswordDigestType is the Type attribute of the Password element.
	PasswordDigestType = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-username-token-profile-1.0#PasswordDigest"
	// NonceEncodingType is the EncodingType attribute of the Nonce element.
	NonceEncodingType = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-soap-message-security-1.0#Base64Binary"
)

// nonceSize is fixed by convention at 16 random bytes.
const nonceSize = 16

// timestampLayout renders UTC instants with millisecond precision, the
// format TRACES expects in Created/Expires.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// SecurityContext holds the material for one WS-Security header. It is
// created fresh for every outgoing request and discarded after use.
type SecurityContext struct {
	Nonce          []byte    // 16 raw random bytes
	NonceB64       string    // base64 form emitted in the Nonce element
	Created        time.Time // UTC creation instant
	Expires        time.Time // Created + validity window
	PasswordDigest string    // base64(SHA1(nonce || created || password))

	// Correlation identifiers used only as wsu:Id attribute values.
	// They must be unique within the document and carry no security weight.
	TokenID     string
	TimestampID string
}

// CreatedString returns Created formatted as ISO-8601 UTC with milliseconds.
func (sc *SecurityContext) CreatedString() string {
	return sc.Created.UTC().Format(timestampLayout)
}

// ExpiresString returns Expires formatted as ISO-8601 UTC with milliseconds.
func (sc *SecurityContext) ExpiresString() string {
	return sc.Expires.UTC().Format(timestampLayout)
}

// Generate creates a fresh SecurityContext for one request.
//
// The only failure mode is the system random source; an empty password is
// accepted and produces a digest the server will reject, which is a
// configuration problem on the caller's side rather than a local error.
func Generate(password string, validity time.Duration) (*SecurityContext, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	created := time.Now().UTC().Truncate(time.Millisecond)

	sc := &SecurityContext{
		Nonce:       nonce,
		NonceB64:    base64.StdEncoding.EncodeToString(nonce),
		Created:     created,
		Expires:     created.Add(validity),
		TokenID:     "UsernameToken-" + uuid.New().String(),
		TimestampID: "TS-" + uuid.New().String(),
	}
	sc.PasswordDigest = Digest(nonce, sc.CreatedString(), password)

	return sc, nil
}

// Digest computes the UsernameToken password digest for the given inputs.
// The input order nonce, created, password is mandated by the profile.
func Digest(nonce []byte, created, password string) string {
	h := sha1.New()
	h.Write(nonce)
	h.Write([]byte(created))
	h.Write([]byte(password))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
