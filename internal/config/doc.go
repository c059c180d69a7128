// Package config provides configuration loading, merging, and validation
// facilities for the vault engine and its local collaborators.
//
// Configuration is assembled from multiple sources in the following order;
// a field keeps the first non-zero value it receives:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
