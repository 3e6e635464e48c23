// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (fills only variables missing from the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetEnvConfig] for tools that own their command line. The result is validated
// once and passed down explicitly; no package reads the environment later.
package config
