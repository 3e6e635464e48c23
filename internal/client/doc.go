// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the userctl command-line application.
//
// userctl manages the accounts that the server authenticates. It creates
// users, issues session tokens, and checks a token against a running server:
//
//	userctl create -email a@b.com -password secret
//	userctl token  -email a@b.com -password secret
//	userctl whoami -server http://localhost:3001 -token <jwt>
package client
