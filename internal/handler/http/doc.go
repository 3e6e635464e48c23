// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every request passes through tracing, access logging, CORS and the
// identity resolver before it reaches a route. Routes that need an
// authenticated caller are registered through restrict, which is the only
// way to turn an identity-aware handler into an [net/http.HandlerFunc].
package http
