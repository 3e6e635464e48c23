// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs one userctl invocation. cmd/userctl depends on this rather
// than on *App.
type Client interface {
	// Run executes the command named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}
