// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when there is no HTTP
	// handler or no listen address to serve it on.
	errNoServersAreCreated = errors.New("no servers are created")

	// errServerFailed wraps the listener error that stopped the HTTP server
	// before any shutdown signal arrived.
	errServerFailed = errors.New("http server failed")
)
