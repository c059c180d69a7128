// Package utils provides general-purpose helper utilities used across
// different parts of the application: ownership-proof and identity-token
// JWT handling and id generation.
package utils
