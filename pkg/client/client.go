// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

// Package client is the operation facade for the TRACES EUDR services.
//
// Every call follows the same linear flow: validate the statement, build
// a fresh WS-Security context, compose the envelope, POST it, parse and
// normalize the response, and classify any failure into a
// *fault.StructuredError. The client keeps no state between calls and
// performs no retries; nonces are single-use, so retrying is the
// caller's decision and always gets a fresh security header.
package client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/envelope"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/fault"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/response"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/transport"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/wsse"
)

// Base URLs derived from recognized web service client identifiers.
const (
	productionBaseURL = "https://eudr.webcloud.ec.europa.eu"
	acceptanceBaseURL = "https://acceptance.eudr.webcloud.ec.europa.eu"
)

// ServiceConfig configures one Client. It is immutable after New.
type ServiceConfig struct {
	// Endpoint is the TRACES base URL. When empty it is derived from
	// WebServiceClientID: "eudr" means production, "eudr-test" means
	// acceptance.
	Endpoint string
	// Username and Password are the web service credentials.
	Username string
	Password string
	// WebServiceClientID is sent in the WebServiceClientId SOAP header.
	WebServiceClientID string
	// TimestampValidity is the WS-Security timestamp window.
	// Defaults to 60 seconds.
	TimestampValidity time.Duration
	// RequestTimeout bounds each HTTP exchange. Defaults to 10 seconds.
	RequestTimeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
}

// Client calls the EUDR SOAP operations. Safe for concurrent use: every
// call computes its own security context and no state is shared.
type Client struct {
	cfg     ServiceConfig
	baseURL string
	http    *transport.HTTPSClient
	logger  *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the structured logger. Without it the client logs via
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPSConfig replaces the transport configuration, e.g. to tune TLS
// versions or connection pooling.
func WithHTTPSConfig(hc *transport.HTTPSConfig) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = transport.NewHTTPSClient(hc)
		}
	}
}

// New validates the configuration and builds a Client. Missing required
// settings are configuration errors raised here, before any call.
func New(cfg ServiceConfig, opts ...Option) (*Client, error) {
	if cfg.Username == "" {
		return nil, fault.Configuration("username is required")
	}
	if cfg.Password == "" {
		return nil, fault.Configuration("password is required")
	}
	if cfg.WebServiceClientID == "" {
		return nil, fault.Configuration("web service client id is required")
	}

	if cfg.TimestampValidity == 0 {
		cfg.TimestampValidity = 60 * time.Second
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(cfg.Endpoint, "/")
	if baseURL == "" {
		switch cfg.WebServiceClientID {
		case "eudr":
			baseURL = productionBaseURL
		case "eudr-test":
			baseURL = acceptanceBaseURL
		default:
			return nil, fault.Configuration(
				"endpoint is required for unrecognized client id " + cfg.WebServiceClientID)
		}
	}

	hc := transport.DefaultHTTPSConfig()
	hc.Timeout = cfg.RequestTimeout
	hc.InsecureSkipVerify = cfg.InsecureSkipVerify

	c := &Client{
		cfg:     cfg,
		baseURL: baseURL,
		http:    transport.NewHTTPSClient(hc),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// call runs the shared flow of every operation and returns the
// <operation>Response element.
func (c *Client) call(ctx context.Context, desc *envelope.Descriptor, payload envelope.Payload) (*etree.Element, *fault.StructuredError) {
	sc, err := wsse.Generate(c.cfg.Password, c.cfg.TimestampValidity)
	if err != nil {
		return nil, fault.Configuration("security context generation failed: " + err.Error())
	}

	body, warns, err := envelope.Build(desc, sc, c.cfg.Username, c.cfg.WebServiceClientID, payload)
	if err != nil {
		return nil, fault.Validation(fault.CodeValidation, "", err.Error())
	}
	for _, warn := range warns {
		c.logger.Warn("request field passed through unmodified",
			"operation", desc.Operation, "field", warn.Field, "reason", warn.Message)
	}

	endpoint := c.baseURL + desc.ServicePath
	resp, err := c.http.Post(ctx, endpoint, []byte(body), map[string]string{
		"SOAPAction": desc.SOAPAction,
	})
	if err != nil {
		se := fault.Classify(fault.TransportOutcome{Err: err})
		c.logger.Error("request failed", "operation", desc.Operation, "code", se.Code, "error", err)
		return nil, se
	}

	doc, se := response.Parse(resp.Body)
	if se != nil {
		if resp.StatusCode == http.StatusOK {
			return nil, se
		}
		// Non-XML error body: keep the transport status, surface the
		// body as the message.
		return nil, fault.Classify(fault.TransportOutcome{
			Status:      resp.StatusCode,
			FaultString: snippet(resp.Body),
		})
	}

	elem, soapFault, se := response.ExtractOperationResult(doc, desc.Operation)
	if se != nil {
		return nil, se
	}
	if soapFault != nil {
		out := fault.Classify(fault.TransportOutcome{
			Status:      resp.StatusCode,
			FaultCode:   soapFault.Code,
			FaultString: soapFault.String,
			DetailCodes: soapFault.DetailCodes,
		})
		c.logger.Warn("operation rejected", "operation", desc.Operation, "code", out.Code, "status", out.HTTPStatus)
		return nil, out
	}

	c.logger.Debug("operation completed", "operation", desc.Operation)
	return elem, nil
}

// tree normalizes a response element into the generic tree shape with
// repeatable fields coerced to arrays.
func tree(elem *etree.Element) any {
	return response.NormalizeArrays(response.ToTree(elem), response.DefaultRepeatable)
}

func snippet(body []byte) string {
	const max = 256
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max]
	}
	return s
}
