// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrIdentityResolverNotInstalled is logged by restrict when a request
	// reaches a guarded handler without passing through withIdentity.
	ErrIdentityResolverNotInstalled = errors.New("identity resolver did not run for this request")

	// ErrIdentityWithoutEmail is logged when a resolved identity carries an
	// empty email and /userinfo cannot answer.
	ErrIdentityWithoutEmail = errors.New("identity has no email")
)
