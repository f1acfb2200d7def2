// SPDX-License-Identifier: AGPL-3.0-or-later

// Package httpclient builds the single HTTP client used for registry and
// spreadsheet calls. Every call is one GET; nothing is retried.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// Config holds transport timeouts.
type Config struct {
	// Timeout bounds the whole request, body included. A context deadline
	// can still cut it shorter.
	Timeout time.Duration

	DialTimeout     time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration
}

// DefaultConfig matches the 30s request timeout the curation scripts used.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		DialTimeout:     5 * time.Second,
		TLSHandshake:    5 * time.Second,
		ResponseHeader:  20 * time.Second,
		IdleConnTimeout: 90 * time.Second,
	}
}

// New returns an *http.Client configured from cfg.
func New(cfg Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,
		IdleConnTimeout:   cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
